package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/service"
	"github.com/vpetrenko/reelsync/internal/utils"
	"github.com/vpetrenko/reelsync/models"
)

// favouritesListResponse mirrors [models.ListResponse] but carries the stored
// documents verbatim instead of re-encoding them through a typed struct.
type favouritesListResponse struct {
	Items  []json.RawMessage `json:"items"`
	Length int               `json:"length"`
}

func (h *Handler) listFavourites(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	kind := models.Kind(chi.URLParam(r, "kind"))

	rows, err := h.services.FavouritesService.List(r.Context(), userID, kind)
	if err != nil {
		log.Err(err).Str("kind", string(kind)).Msg("error listing favourites")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	resp := favouritesListResponse{Items: make([]json.RawMessage, 0, len(rows))}
	for _, row := range rows {
		resp.Items = append(resp.Items, row.Doc)
	}
	resp.Length = len(resp.Items)

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing favourites list response")
	}
}

func (h *Handler) addFavourite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	kind := models.Kind(chi.URLParam(r, "kind"))

	doc, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading favourite document")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	if err = h.services.FavouritesService.Add(r.Context(), userID, kind, doc); err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, service.ErrUnknownKind) {
			log.Err(err).Str("kind", string(kind)).Msg("rejected favourite document")
		} else {
			log.Err(err).Str("kind", string(kind)).Msg("error storing favourite")
		}
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) removeFavourite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	kind := models.Kind(chi.URLParam(r, "kind"))

	itemID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid favourite id")
		http.Error(w, "invalid favourite id", http.StatusBadRequest)
		return
	}

	removed, err := h.services.FavouritesService.Remove(r.Context(), userID, kind, itemID)
	if err != nil {
		log.Err(err).Str("kind", string(kind)).Int64("item_id", itemID).Msg("error removing favourite")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, models.RemoveResponse{Removed: removed}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing remove response")
	}
}
