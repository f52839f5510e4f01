// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/models"
)

const (
	usersPath = "/users"

	// pageParam selects the page of the user list.
	pageParam = "paged"

	// profileTermsField is the multi-select of the profile form.
	profileTermsField = "user_tag[]"
	// profileNonceField carries the profile form token.
	profileNonceField = "_wpnonce"
)

type loginView struct {
	Login string
	Error string
}

type userRow struct {
	User  models.User
	Terms []models.Term
}

type usersView struct {
	Actor       *models.Actor
	Rows        []userRow
	Total       int
	Page        int
	Pages       int
	PrevURL     string
	NextURL     string
	Top         *models.FilterControl
	Bottom      *models.FilterControl
	SearchNonce string
	Action      string
}

type profileView struct {
	Actor       *models.Actor
	User        models.User
	Control     *models.ProfileControl
	FieldName   string
	NonceField  string
	Updated     bool
	SearchNonce string
	Action      string
}

// usersPage renders the user list. A request submitted through a filter
// button is first redirected to its canonical form.
func (h *Handler) usersPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()
	actor := actorFromRequest(r)

	if !h.services.Authorizer.Can(actor, models.CapListUsers) {
		log.Warn().Str("func", "*Handler.usersPage").Int64("user_id", actor.UserID).Msg("actor may not list users")
		http.Error(w, "Sorry, you are not allowed to list users.", http.StatusForbidden)
		return
	}

	params := r.URL.Query()
	if normalized, ok := h.services.ListFilter.NormalizeFilterRequest(params); ok {
		http.Redirect(w, r, usersPath+"?"+normalized.Encode(), http.StatusFound)
		return
	}

	page, _ := strconv.Atoi(params.Get(pageParam))
	query := models.UserListQuery{Page: max(page, 1), PerPage: service.UsersPerPage}
	if err := h.services.Hooks.RunUserListQuery(ctx, &query, params); err != nil {
		log.Err(err).Str("func", "*Handler.usersPage").Msg("user list query hook failed")
		writeError(w, err)
		return
	}

	list, err := h.services.UserService.ListUsers(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.usersPage").Msg("listing users failed")
		writeError(w, err)
		return
	}

	view := usersView{
		Actor:       actor,
		Rows:        make([]userRow, 0, len(list.Users)),
		Total:       list.Total,
		Page:        query.Page,
		Pages:       (list.Total + query.PerPage - 1) / query.PerPage,
		SearchNonce: h.services.NonceService.Create(actor, service.NonceActionSearch),
		Action:      ActionSearchTerms,
	}
	if view.Page > 1 {
		view.PrevURL = pageURL(params, view.Page-1)
	}
	if view.Page < view.Pages {
		view.NextURL = pageURL(params, view.Page+1)
	}

	for _, user := range list.Users {
		terms, err := h.services.TagRepository.GetAssignedTerms(ctx, user.UserID)
		if err != nil {
			log.Err(err).Str("func", "*Handler.usersPage").Int64("user_id", user.UserID).Msg("loading assignment failed")
			writeError(w, err)
			return
		}
		view.Rows = append(view.Rows, userRow{User: user, Terms: terms})
	}

	selected, _ := strconv.ParseInt(params.Get(models.FilterParam), 10, 64)
	if view.Top, err = h.filterControl(r, models.FilterPositionTop, selected); err != nil {
		writeError(w, err)
		return
	}
	if view.Bottom, err = h.filterControl(r, models.FilterPositionBottom, selected); err != nil {
		writeError(w, err)
		return
	}

	h.render(w, r, http.StatusOK, "users.html", view)
}

// filterControl returns nil when no control is shown.
func (h *Handler) filterControl(r *http.Request, position models.FilterPosition, selected int64) (*models.FilterControl, error) {
	control, ok, err := h.services.ListFilter.FilterControl(r.Context(), position, selected)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("position", string(position)).Msg("building filter control failed")
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &control, nil
}

// profilePage renders the profile of a user with the tag field when the
// actor may assign tags.
func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()
	actor := actorFromRequest(r)

	userID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if !h.services.Authorizer.CanEditUser(actor, userID) {
		log.Warn().Str("func", "*Handler.profilePage").Int64("user_id", userID).Msg("actor may not edit user")
		http.Error(w, "Sorry, you are not allowed to edit this user.", http.StatusForbidden)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.profilePage").Int64("user_id", userID).Msg("loading user failed")
		writeError(w, err)
		return
	}

	view := profileView{
		Actor:       actor,
		User:        user,
		FieldName:   profileTermsField,
		NonceField:  profileNonceField,
		Updated:     r.URL.Query().Get("updated") == "1",
		SearchNonce: h.services.NonceService.Create(actor, service.NonceActionSearch),
		Action:      ActionSearchTerms,
	}

	control, ok, err := h.services.ProfileEditor.RenderAssignmentControl(ctx, actor, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.profilePage").Int64("user_id", userID).Msg("building tag field failed")
		writeError(w, err)
		return
	}
	if ok {
		view.Control = &control
	}

	h.render(w, r, http.StatusOK, "profile.html", view)
}

// profileSubmit saves the profile form. A form without selected options
// clears the assignment.
func (h *Handler) profileSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, err := pathID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err = r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid profile form")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if _, err = h.services.UserService.GetUser(ctx, userID); err != nil {
		log.Err(err).Str("func", "*Handler.profileSubmit").Int64("user_id", userID).Msg("loading user failed")
		writeError(w, err)
		return
	}

	values, present := r.PostForm[profileTermsField]
	submission := models.TermSubmission{
		Present: present,
		Values:  values,
		Nonce:   r.PostForm.Get(profileNonceField),
	}

	if err = h.services.Hooks.RunProfileSave(ctx, actorFromRequest(r), userID, submission); err != nil {
		log.Err(err).Str("func", "*Handler.profileSubmit").Int64("user_id", userID).Msg("saving profile failed")
		writeError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s/%d?updated=1", usersPath, userID), http.StatusFound)
}

// pageURL is the user list URL of page n under the current parameters.
func pageURL(params url.Values, n int) string {
	next := make(url.Values, len(params))
	for k, v := range params {
		next[k] = append([]string(nil), v...)
	}
	next.Set(pageParam, strconv.Itoa(n))
	return usersPath + "?" + next.Encode()
}
