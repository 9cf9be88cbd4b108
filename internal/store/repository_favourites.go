package store

import (
	"context"
	"fmt"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/models"
)

// favouritesRepository is the PostgreSQL-backed implementation of
// [FavouritesRepository]. One row per (user, kind, catalog id); the favourite
// document itself is stored as JSONB and never inspected by the server.
type favouritesRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavouritesRepository constructs a [FavouritesRepository] backed by the
// provided database connection and logger.
func NewFavouritesRepository(db *DB, logger *logger.Logger) FavouritesRepository {
	logger.Debug().Msg("creating favourites repository")
	return &favouritesRepository{
		db:     db,
		logger: logger,
	}
}

// Add upserts a favourite document. Re-adding an existing catalog ID replaces
// the stored document and re-stamps created_at, so retried sync uploads are
// harmless.
func (r *favouritesRepository) Add(ctx context.Context, userID int64, kind models.Kind, itemID int64, doc []byte) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertFavourite, userID, string(kind), itemID, doc)
	if err != nil && r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		// the upsert is idempotent, so one retry on a transient failure is safe
		log.Warn().
			Str("func", "*favouritesRepository.Add").
			Int64("item_id", itemID).
			Msg("retrying favourite upsert after transient error")
		_, err = r.db.ExecContext(ctx, upsertFavourite, userID, string(kind), itemID, doc)
	}
	if err != nil {
		log.Err(err).
			Str("func", "*favouritesRepository.Add").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Int64("item_id", itemID).
			Msg("failed to execute upsert for favourite")
		return fmt.Errorf("failed to add favourite (kind=%s, item_id=%d): %w", kind, itemID, err)
	}

	return nil
}

// List returns every favourite of one kind for the user, newest first.
func (r *favouritesRepository) List(ctx context.Context, userID int64, kind models.Kind) ([]models.FavouriteRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavouritesQuery(ctx, userID, kind)
	if err != nil {
		log.Err(err).
			Str("func", "*favouritesRepository.List").
			Int64("user_id", userID).
			Msg("failed to build favourites query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*favouritesRepository.List").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Msg("failed to execute query for listing favourites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.FavouriteRow

	for rows.Next() {
		var item models.FavouriteRow

		if scanErr := rows.Scan(&item.Kind, &item.ItemID, &item.Doc, &item.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*favouritesRepository.List").
				Int64("user_id", userID).
				Msg("failed to scan favourite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*favouritesRepository.List").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Remove deletes a favourite document and reports whether a row was deleted.
// A missing id is not an error.
func (r *favouritesRepository) Remove(ctx context.Context, userID int64, kind models.Kind, itemID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, removeFavourite, userID, string(kind), itemID)
	if err != nil {
		log.Err(err).
			Str("func", "*favouritesRepository.Remove").
			Int64("user_id", userID).
			Str("kind", string(kind)).
			Int64("item_id", itemID).
			Msg("failed to execute delete for favourite")
		return false, fmt.Errorf("failed to remove favourite (kind=%s, item_id=%d): %w", kind, itemID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*favouritesRepository.Remove").
			Int64("user_id", userID).
			Msg("failed to get rows affected after delete")
		return false, fmt.Errorf("failed to get rows affected (item_id=%d): %w", itemID, err)
	}

	return rowsAffected > 0, nil
}
