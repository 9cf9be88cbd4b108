package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/utils"
	"github.com/vpetrenko/reelsync/models"
)

type friendRequestBody struct {
	Login string `json:"login"`
}

type friendRespondBody struct {
	Accept bool `json:"accept"`
}

func (h *Handler) requestFriend(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body friendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	friendship, err := h.services.FriendsService.Request(r.Context(), userID, body.Login)
	if err != nil {
		log.Err(err).Str("addressee", body.Login).Msg("error sending friend request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, friendship, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing friend request response")
	}
}

func (h *Handler) listFriends(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	friends, err := h.services.FriendsService.List(r.Context(), userID)
	if err != nil {
		log.Err(err).Msg("error listing friends")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if friends == nil {
		friends = []models.Friend{}
	}

	if _, err = utils.WriteJSON(w, friends, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing friends list response")
	}
}

func (h *Handler) respondFriend(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	otherLogin := chi.URLParam(r, "login")

	var body friendRespondBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	friendship, err := h.services.FriendsService.Respond(r.Context(), userID, otherLogin, body.Accept)
	if err != nil {
		log.Err(err).Str("other", otherLogin).Bool("accept", body.Accept).Msg("error responding to friend request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, friendship, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing friend respond response")
	}
}

func (h *Handler) friendOverlap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	friendLogin := chi.URLParam(r, "login")
	kind := models.Kind(chi.URLParam(r, "kind"))

	rows, err := h.services.FriendsService.Overlap(r.Context(), userID, friendLogin, kind)
	if err != nil {
		log.Err(err).Str("friend", friendLogin).Str("kind", string(kind)).Msg("error computing overlap")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	resp := favouritesListResponse{Items: make([]json.RawMessage, 0, len(rows))}
	for _, row := range rows {
		resp.Items = append(resp.Items, row.Doc)
	}
	resp.Length = len(resp.Items)

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing overlap response")
	}
}
