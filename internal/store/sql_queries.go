package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/vpetrenko/reelsync/models"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT id, login, name, password_hash, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT id, login, name, password_hash, created_at
    FROM users
    WHERE id = $1;`

	// Re-adding an existing favourite replaces the document and re-stamps
	// created_at, making cloud add idempotent for sync retries.
	upsertFavourite = `INSERT INTO favourites (user_id, kind, item_id, doc, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, kind, item_id)
		DO UPDATE SET doc = EXCLUDED.doc, created_at = now();`

	removeFavourite = `DELETE FROM favourites
		WHERE user_id = $1 AND kind = $2 AND item_id = $3;`

	upsertFriendship = `INSERT INTO friends (pair_key, requester_id, addressee_id, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pair_key)
		DO UPDATE SET status = EXCLUDED.status, updated_at = now();`

	getFriendshipByPairKey = `SELECT pair_key, requester_id, addressee_id, status, created_at, updated_at
		FROM friends
		WHERE pair_key = $1;`

	updateFriendshipStatus = `UPDATE friends
		SET status = $2, updated_at = now()
		WHERE pair_key = $1;`
)

// buildSelectFavouritesQuery builds the per-user favourites listing for one
// collection, newest first.
func buildSelectFavouritesQuery(ctx context.Context, userID int64, kind models.Kind) (string, []any, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	return sq.Select("kind", "item_id", "doc", "created_at").
		From("favourites").
		Where(sq.Eq{"user_id": userID, "kind": string(kind)}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildSelectFriendshipsQuery builds the listing of every friendship record
// a user participates in, on either side of the pair.
func buildSelectFriendshipsQuery(ctx context.Context, userID int64) (string, []any, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	return sq.Select("pair_key", "requester_id", "addressee_id", "status", "created_at", "updated_at").
		From("friends").
		Where(sq.Or{
			sq.Eq{"requester_id": userID},
			sq.Eq{"addressee_id": userID},
		}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
