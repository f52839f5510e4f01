// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/crypto"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/internal/validators"
)

// Services is every server-side component wired once at process start.
type Services struct {
	Registrar     Registrar
	TagRepository TagRepository
	ProfileEditor ProfileEditor
	ListFilter    ListFilter
	SearchService SearchService
	TermService   TermService
	AuthService   AuthService
	UserService   UserService
	Authorizer    Authorizer
	NonceService  NonceService

	// Hooks carries the list filter and the profile editor to the admin
	// screens.
	Hooks *Hooks
}

// NewServices builds the services over storages. The taxonomy is the user
// tag declaration; Registrar.Register still has to run to grant its
// capabilities.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	taxonomy := UserTagTaxonomy()
	validator := validators.NewStructValidator()
	hasher := crypto.NewPasswordHasher()
	authorizer := NewAuthorizer()
	nonces := NewNonceService(cfg.App, logger)

	tags := NewTagRepository(taxonomy, storages.MetaRepository, storages.TermStore, logger)
	profileEditor := NewProfileEditor(taxonomy, tags, storages.TermStore, authorizer, nonces, logger)
	listFilter := NewListFilter(taxonomy, tags, storages.TermStore, logger)

	hooks := NewHooks()
	hooks.OnUserListQuery(listFilter.ApplyFilter)
	hooks.OnProfileSave(profileEditor.OnSubmit)

	return &Services{
		Registrar:     NewRegistrar(storages.RoleRepository, logger),
		TagRepository: tags,
		ProfileEditor: profileEditor,
		ListFilter:    listFilter,
		SearchService: NewSearchService(taxonomy, storages.TermStore, validator, logger),
		TermService:   NewTermService(taxonomy, storages.TermStore, authorizer, validator, logger),
		AuthService:   NewAuthService(storages.UserRepository, storages.RoleRepository, hasher, cfg.App, logger),
		UserService:   NewUserService(storages.UserRepository, hasher, validator, logger),
		Authorizer:    authorizer,
		NonceService:  nonces,
		Hooks:         hooks,
	}
}
