// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-user-tags/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They name struct fields, not their JSON keys.
const (
	// FieldName targets the label of a term.
	FieldName = "Name"

	// FieldSearch targets the partial label of a search request.
	FieldSearch = "Search"

	// FieldPage targets the 1-based page of a search request.
	FieldPage = "Page"

	// FieldLogin targets the login name of a user.
	FieldLogin = "Login"

	// FieldEmail targets the contact address of a user.
	FieldEmail = "Email"
)

// knownFields lists, per validated type, the fields callers may scope to.
var knownFields = map[reflect.Type][]string{
	reflect.TypeFor[models.Term]():          {FieldName},
	reflect.TypeFor[models.SearchRequest](): {FieldSearch, FieldPage},
	reflect.TypeFor[models.User]():         {FieldLogin, FieldEmail},
}

// StructValidator validates the request models of the service through their
// `validate` struct tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] that reports violations using JSON
// field names.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &StructValidator{validate: v}
}

// Validate implements [Validator]. It accepts models.Term, models.SearchRequest
// and models.User, by value or by pointer.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Term, models.SearchRequest, models.User:
		return v.validateStruct(ctx, value, fields...)
	case *models.Term:
		return v.validateStruct(ctx, *value, fields...)
	case *models.SearchRequest:
		return v.validateStruct(ctx, *value, fields...)
	case *models.User:
		return v.validateStruct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StructValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		allowed := knownFields[reflect.TypeOf(obj)]
		for _, f := range fields {
			if !slices.Contains(allowed, f) {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describe(fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
	}

	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email address"
	}
	return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
}
