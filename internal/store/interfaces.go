package store

import (
	"context"

	"github.com/vpetrenko/reelsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository handles user account persistence on the server.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// FavouritesRepository is the server-side per-user favourite document store.
// Add is an idempotent upsert: re-adding an existing (user, kind, id) triple
// replaces the document and re-stamps created_at.
type FavouritesRepository interface {
	Add(ctx context.Context, userID int64, kind models.Kind, itemID int64, doc []byte) error
	List(ctx context.Context, userID int64, kind models.Kind) ([]models.FavouriteRow, error)
	Remove(ctx context.Context, userID int64, kind models.Kind, itemID int64) (bool, error)
}

// FriendsRepository stores friendship records keyed by the canonical pair key.
type FriendsRepository interface {
	Upsert(ctx context.Context, friendship models.Friendship) error
	GetByPairKey(ctx context.Context, pairKey string) (models.Friendship, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Friendship, error)
	UpdateStatus(ctx context.Context, pairKey string, status models.FriendStatus) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
