package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/models"
)

// friendsRepository is the PostgreSQL-backed implementation of
// [FriendsRepository]. Exactly one row exists per user pair; the canonical
// pair key keeps the combination unique regardless of request direction.
type friendsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFriendsRepository constructs a [FriendsRepository] backed by the
// provided database connection and logger.
func NewFriendsRepository(db *DB, logger *logger.Logger) FriendsRepository {
	logger.Debug().Msg("creating friends repository")
	return &friendsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *friendsRepository) Upsert(ctx context.Context, friendship models.Friendship) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, upsertFriendship,
		friendship.PairKey,
		friendship.RequesterID,
		friendship.AddresseeID,
		string(friendship.Status),
	)
	if err != nil {
		log.Err(err).
			Str("func", "*friendsRepository.Upsert").
			Str("pair_key", friendship.PairKey).
			Msg("failed to execute upsert for friendship")
		return fmt.Errorf("failed to upsert friendship (pair_key=%s): %w", friendship.PairKey, err)
	}

	return nil
}

func (r *friendsRepository) GetByPairKey(ctx context.Context, pairKey string) (models.Friendship, error) {
	log := logger.FromContext(ctx)

	var friendship models.Friendship
	row := r.db.QueryRowContext(ctx, getFriendshipByPairKey, pairKey)

	err := row.Scan(
		&friendship.PairKey,
		&friendship.RequesterID,
		&friendship.AddresseeID,
		&friendship.Status,
		&friendship.CreatedAt,
		&friendship.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Friendship{}, ErrFriendshipNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*friendsRepository.GetByPairKey").
			Str("pair_key", pairKey).
			Msg("failed to scan friendship row")
		return models.Friendship{}, fmt.Errorf("failed to get friendship (pair_key=%s): %w", pairKey, err)
	}

	return friendship, nil
}

func (r *friendsRepository) ListForUser(ctx context.Context, userID int64) ([]models.Friendship, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFriendshipsQuery(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*friendsRepository.ListForUser").
			Int64("user_id", userID).
			Msg("failed to build friendships query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*friendsRepository.ListForUser").
			Int64("user_id", userID).
			Msg("failed to execute query for listing friendships")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var friendships []models.Friendship

	for rows.Next() {
		var friendship models.Friendship

		scanErr := rows.Scan(
			&friendship.PairKey,
			&friendship.RequesterID,
			&friendship.AddresseeID,
			&friendship.Status,
			&friendship.CreatedAt,
			&friendship.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*friendsRepository.ListForUser").
				Int64("user_id", userID).
				Msg("failed to scan friendship row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		friendships = append(friendships, friendship)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*friendsRepository.ListForUser").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return friendships, nil
}

func (r *friendsRepository) UpdateStatus(ctx context.Context, pairKey string, status models.FriendStatus) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateFriendshipStatus, pairKey, string(status))
	if err != nil {
		log.Err(err).
			Str("func", "*friendsRepository.UpdateStatus").
			Str("pair_key", pairKey).
			Msg("failed to execute status update for friendship")
		return fmt.Errorf("failed to update friendship status (pair_key=%s): %w", pairKey, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (pair_key=%s): %w", pairKey, err)
	}
	if rowsAffected == 0 {
		return ErrFriendshipNotFound
	}

	return nil
}
