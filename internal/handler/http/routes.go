// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every route of the server.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/assets/usertags.js", h.script)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/login", h.apiLogin)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.loginSubmit)
		r.Post("/logout", h.logout)
	})

	// JSON API
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/taxonomies/{name}", h.getTaxonomy)
		r.Get("/api/terms", h.listTerms)
		r.Post("/api/terms", h.createTerm)
		r.Get("/api/terms/{id}", h.getTerm)
		r.Put("/api/terms/{id}", h.updateTerm)
		r.Delete("/api/terms/{id}", h.deleteTerm)
		r.Get("/api/users/{id}/terms", h.getUserTerms)
		r.Put("/api/users/{id}/terms", h.putUserTerms)
		r.Get("/api/nonces/search", h.searchNonce)
	})

	// AJAX dispatcher
	router.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Use(h.auth)
		r.Get("/ajax", h.ajax)
		r.Post("/ajax", h.ajax)
	})

	// admin screens
	router.Group(func(r chi.Router) {
		r.Use(h.authPage)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, usersPath, http.StatusFound)
		})
		r.Get(usersPath, h.usersPage)
		r.Get(usersPath+"/{id}", h.profilePage)
		r.Post(usersPath+"/{id}", h.profileSubmit)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
