package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

// favouritesService is the concrete implementation of FavouritesService. The
// document body is opaque to the server: only the catalog id is extracted, so
// clients can evolve the document shape without a server release.
type favouritesService struct {
	favourites store.FavouritesRepository
	logger     *logger.Logger
}

// NewFavouritesService constructs a [FavouritesService] backed by the given
// repository.
func NewFavouritesService(favourites store.FavouritesRepository, logger *logger.Logger) FavouritesService {
	return &favouritesService{favourites: favourites, logger: logger}
}

// Add implements [FavouritesService].
//
// Returns ErrUnknownKind for a kind outside movie/show/person and
// ErrInvalidDataProvided if the document is empty, is not valid JSON, or
// carries no positive "id" field.
func (s *favouritesService) Add(ctx context.Context, userID int64, kind models.Kind, doc json.RawMessage) error {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	itemID, err := extractItemID(doc)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("rejected favourite document")
		return err
	}

	if err = s.favourites.Add(ctx, userID, kind, itemID, doc); err != nil {
		return fmt.Errorf("store favourite: %w", err)
	}

	return nil
}

// List implements [FavouritesService].
func (s *favouritesService) List(ctx context.Context, userID int64, kind models.Kind) ([]models.FavouriteRow, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	items, err := s.favourites.List(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}

	return items, nil
}

// Remove implements [FavouritesService].
func (s *favouritesService) Remove(ctx context.Context, userID int64, kind models.Kind, itemID int64) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	removed, err := s.favourites.Remove(ctx, userID, kind, itemID)
	if err != nil {
		return false, fmt.Errorf("remove favourite: %w", err)
	}

	return removed, nil
}

// extractItemID pulls the catalog id out of an otherwise opaque favourite
// document.
func extractItemID(doc json.RawMessage) (int64, error) {
	if len(doc) == 0 {
		return 0, fmt.Errorf("%w: empty document", ErrInvalidDataProvided)
	}

	var keyed struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(doc, &keyed); err != nil {
		return 0, fmt.Errorf("%w: malformed document: %v", ErrInvalidDataProvided, err)
	}
	if keyed.ID <= 0 {
		return 0, fmt.Errorf("%w: document has no positive id", ErrInvalidDataProvided)
	}

	return keyed.ID, nil
}
