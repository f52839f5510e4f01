// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
)

type termRequest struct {
	Name string `json:"name"`
}

// getTaxonomy returns a registered taxonomy that is exposed to the API.
func (h *Handler) getTaxonomy(w http.ResponseWriter, r *http.Request) {
	taxonomy, ok := h.services.Registrar.Taxonomy(chi.URLParam(r, "name"))
	if !ok || !taxonomy.ShowInREST {
		writeError(w, service.ErrTaxonomyNotRegistered)
		return
	}

	utils.WriteJSON(w, taxonomy, http.StatusOK)
}

func (h *Handler) listTerms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	termPage, err := h.services.TermService.ListTerms(r.Context(), actorFromRequest(r), models.SearchRequest{
		Search: r.URL.Query().Get("search"),
		Page:   page,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTerms").Msg("listing terms failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, termPage, http.StatusOK)
}

func (h *Handler) createTerm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	term, err := h.services.TermService.CreateTerm(r.Context(), actorFromRequest(r), req.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createTerm").Msg("creating term failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, term, http.StatusCreated)
}

func (h *Handler) getTerm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	termID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	term, err := h.services.TermService.GetTerm(r.Context(), actorFromRequest(r), termID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTerm").Int64("term_id", termID).Msg("getting term failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, term, http.StatusOK)
}

func (h *Handler) updateTerm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	termID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req termRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	term, err := h.services.TermService.UpdateTerm(r.Context(), actorFromRequest(r), termID, req.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTerm").Int64("term_id", termID).Msg("updating term failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, term, http.StatusOK)
}

// deleteTerm removes a term. Users keep the id in their assignment; it is
// dropped when the assignment is read.
func (h *Handler) deleteTerm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	termID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.services.TermService.DeleteTerm(r.Context(), actorFromRequest(r), termID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTerm").Int64("term_id", termID).Msg("deleting term failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the "id" path parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathID
	}
	return id, nil
}
