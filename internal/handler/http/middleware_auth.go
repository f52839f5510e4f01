// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
)

// sessionCookieName is the cookie browsers carry the session token in.
const sessionCookieName = "usertags_session"

// auth rejects requests without a valid session with 401 Unauthorized. The
// resolved actor is stored in the request context under [utils.ActorCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		actor, err := h.authenticate(r)
		if err != nil {
			log.Err(err).Msg("request is not authenticated")
			status := statusFromError(err)
			if status != http.StatusInternalServerError {
				status = http.StatusUnauthorized
			}
			http.Error(w, http.StatusText(status), status)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithActor(r.Context(), actor)))
	})
}

// authPage is auth for the admin screens: unauthenticated browsers are sent
// to the login form instead of getting a 401.
func (h *Handler) authPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		actor, err := h.authenticate(r)
		if err != nil {
			if statusFromError(err) == http.StatusInternalServerError {
				log.Err(err).Msg("session lookup failed")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			log.Debug().Err(err).Msg("redirecting to login")
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithActor(r.Context(), actor)))
	})
}

// authenticate resolves the actor of r from the bearer token or, when no
// "Authorization" header is sent, from the session cookie.
func (h *Handler) authenticate(r *http.Request) (*models.Actor, error) {
	tokenString, err := tokenFromRequest(r)
	if err != nil {
		return nil, err
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	return h.services.AuthService.ResolveActor(ctx, token)
}

func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}

	cookie, err := r.Cookie(sessionCookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
		return "", ErrNoCredentials
	}
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// getTokenFromAuthHeader extracts the token of a "Bearer <token>" header.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	return strings.TrimSpace(tokenString), nil
}

// actorFromRequest returns the actor stored by auth or authPage.
func actorFromRequest(r *http.Request) *models.Actor {
	actor, _ := utils.GetActorFromContext(r.Context())
	return actor
}
