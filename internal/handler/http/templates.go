// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets/usertags.js
var widgetScript []byte

// pageHeader is the data of the shared page header.
type pageHeader struct {
	Title       string
	BodyClass   string
	Actor       *models.Actor
	Action      string
	SearchNonce string
}

func newPageHeader(title, bodyClass string, actor *models.Actor, action, searchNonce string) pageHeader {
	return pageHeader{
		Title:       title,
		BodyClass:   bodyClass,
		Actor:       actor,
		Action:      action,
		SearchNonce: searchNonce,
	}
}

// parsePages parses the embedded admin screens. Every page is addressed by
// its file name.
func parsePages() *template.Template {
	return template.Must(template.New("pages").
		Funcs(template.FuncMap{"pageData": newPageHeader}).
		ParseFS(templatesFS, "templates/*.html"))
}

// render executes the page into a buffer first so that a template error
// still produces a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("rendering page failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// script serves the type-ahead widget.
func (h *Handler) script(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(widgetScript)
}
