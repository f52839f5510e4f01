// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
)

// userTermsResponse is the assignment of a user with the forgery token a
// following PUT must send back.
type userTermsResponse struct {
	Terms []models.Term `json:"terms"`
	Nonce string        `json:"nonce"`
}

type userTermsRequest struct {
	TermIDs []int64 `json:"term_ids"`
	Nonce   string  `json:"nonce"`
}

type nonceResponse struct {
	Nonce string `json:"nonce"`
}

func (h *Handler) getUserTerms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()
	actor := actorFromRequest(r)

	userID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if !h.services.Authorizer.CanEditUser(actor, userID) {
		log.Warn().Str("func", "*Handler.getUserTerms").Int64("user_id", userID).Msg("actor may not edit user")
		writeError(w, service.ErrForbidden)
		return
	}

	if _, err = h.services.UserService.GetUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.getUserTerms").Int64("user_id", userID).Msg("loading user failed")
		writeError(w, err)
		return
	}

	terms, err := h.services.TagRepository.GetAssignedTerms(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUserTerms").Int64("user_id", userID).Msg("loading assignment failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, userTermsResponse{
		Terms: terms,
		Nonce: h.services.NonceService.Create(actor, service.ProfileNonceAction(userID)),
	}, http.StatusOK)
}

// putUserTerms replaces the assignment of a user the same way a profile form
// submit does. An empty list clears it.
func (h *Handler) putUserTerms(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()
	actor := actorFromRequest(r)

	userID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req userTermsRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err = h.services.UserService.GetUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.putUserTerms").Int64("user_id", userID).Msg("loading user failed")
		writeError(w, err)
		return
	}

	submission := models.TermSubmission{
		Present: true,
		Values:  make([]string, 0, len(req.TermIDs)),
		Nonce:   req.Nonce,
	}
	for _, id := range req.TermIDs {
		submission.Values = append(submission.Values, strconv.FormatInt(id, 10))
	}

	if err = h.services.Hooks.RunProfileSave(ctx, actor, userID, submission); err != nil {
		log.Err(err).Str("func", "*Handler.putUserTerms").Int64("user_id", userID).Msg("saving assignment failed")
		writeError(w, err)
		return
	}

	terms, err := h.services.TagRepository.GetAssignedTerms(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putUserTerms").Int64("user_id", userID).Msg("loading assignment failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, userTermsResponse{
		Terms: terms,
		Nonce: h.services.NonceService.Create(actor, service.ProfileNonceAction(userID)),
	}, http.StatusOK)
}

// searchNonce issues the forgery token of the type-ahead search.
func (h *Handler) searchNonce(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, nonceResponse{
		Nonce: h.services.NonceService.Create(actorFromRequest(r), service.NonceActionSearch),
	}, http.StatusOK)
}
