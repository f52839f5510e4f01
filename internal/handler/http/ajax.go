// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
)

// ActionSearchTerms is the AJAX action of the type-ahead search.
const ActionSearchTerms = "aut_search_terms"

// ajax dispatches /ajax requests by their "action" parameter. Unknown actions
// answer 400 with the body "0".
func (h *Handler) ajax(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid ajax request")
		writeAjaxZero(w)
		return
	}

	action := r.Form.Get("action")
	switch action {
	case ActionSearchTerms:
		h.searchTerms(w, r)
	default:
		log.Warn().Str("action", action).Msg("unknown ajax action")
		writeAjaxZero(w)
	}
}

// searchTerms answers one page of the type-ahead search. Nonce and
// capability failures are reported in the payload with status 200.
func (h *Handler) searchTerms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	actor := actorFromRequest(r)

	if !h.services.NonceService.Verify(actor, service.NonceActionSearch, r.Form.Get("nonce")) {
		log.Warn().Str("func", "*Handler.searchTerms").Msg("nonce check failed")
		writeAjaxError(w, securityCheckFailedMessage)
		return
	}

	if !h.services.Authorizer.Can(actor, models.CapEditUsers) {
		log.Warn().Str("func", "*Handler.searchTerms").Int64("user_id", actor.UserID).Msg("actor may not search terms")
		writeAjaxError(w, permissionDeniedMessage)
		return
	}

	page, _ := strconv.Atoi(strings.TrimSpace(r.Form.Get("page")))
	result, err := h.services.SearchService.Search(r.Context(), models.SearchRequest{
		Search: r.Form.Get("search"),
		Page:   page,
	})
	if errors.Is(err, service.ErrInvalidDataProvided) {
		log.Err(err).Str("func", "*Handler.searchTerms").Msg("invalid search request")
		writeAjaxError(w, searchFailedMessage)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchTerms").Msg("search failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AjaxResponse{Success: true, Data: result}, http.StatusOK)
}

func writeAjaxError(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.AjaxResponse{
		Success: false,
		Data:    models.AjaxError{Message: message},
	}, http.StatusOK)
}

func writeAjaxZero(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte("0"))
}
