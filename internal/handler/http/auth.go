// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-tags/internal/app"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
)

const loginPath = "/login"

// apiLogin authenticates JSON credentials. The session token is returned in
// the "Authorization" header and as the session cookie; the body is the user.
func (h *Handler) apiLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.User
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, token, err := h.startSession(r, credentials.Login, credentials.Password)
	if err != nil {
		log.Err(err).Str("login", credentials.Login).Msg("login failed")
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, "invalid data provided", http.StatusBadRequest)
		case errors.Is(err, service.ErrWrongPassword):
			http.Error(w, "invalid login/password", http.StatusUnauthorized)
		default:
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	http.SetCookie(w, h.sessionCookie(token))
	utils.WriteJSON(w, user, http.StatusOK)
}

// loginPage renders the login form.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", loginView{})
}

// loginSubmit authenticates the login form and redirects to the user list.
func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	login := r.PostForm.Get("log")
	user, token, err := h.startSession(r, login, r.PostForm.Get("pwd"))
	if errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, service.ErrWrongPassword) {
		log.Warn().Str("login", login).Msg("login form rejected")
		h.render(w, r, http.StatusUnauthorized, "login.html", loginView{
			Login: login,
			Error: app.MsgLoginFailed,
		})
		return
	}
	if err != nil {
		log.Err(err).Str("login", login).Msg("login failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user logged in through the form")

	http.SetCookie(w, h.sessionCookie(token))
	http.Redirect(w, r, usersPath, http.StatusFound)
}

// logout clears the session cookie. The token itself stays valid until it
// expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, loginPath, http.StatusFound)
}

func (h *Handler) startSession(r *http.Request, login, password string) (models.User, models.Token, error) {
	ctx := r.Context()

	user, err := h.services.AuthService.Login(ctx, login, password)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

func (h *Handler) sessionCookie(token models.Token) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	return cookie
}
