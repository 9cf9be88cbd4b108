package service

import (
	"context"
	"encoding/json"

	"github.com/vpetrenko/reelsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles server-side user registration, credential verification,
// and JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FavouritesService manages the per-user cloud favourite collections. The
// favourite document is treated as an opaque JSON blob: the server only
// extracts the catalog id needed for keying.
type FavouritesService interface {
	// Add upserts one favourite document into the user's collection of the
	// given kind. Re-adding an existing catalog id replaces the stored
	// document.
	Add(ctx context.Context, userID int64, kind models.Kind, doc json.RawMessage) error

	// List returns every favourite of one kind for the user, newest first.
	List(ctx context.Context, userID int64, kind models.Kind) ([]models.FavouriteRow, error)

	// Remove deletes one favourite and reports whether anything was removed.
	// A missing id is not an error.
	Remove(ctx context.Context, userID int64, kind models.Kind, itemID int64) (bool, error)
}

// FriendsService manages friendship requests and lets accepted friends
// compare favourite collections.
type FriendsService interface {
	// Request sends a friend request from requesterID to the user with
	// addresseeLogin. Returns the pending friendship record.
	Request(ctx context.Context, requesterID int64, addresseeLogin string) (models.Friendship, error)

	// Respond accepts or rejects a pending friend request addressed to
	// userID from the user with otherLogin.
	Respond(ctx context.Context, userID int64, otherLogin string, accept bool) (models.Friendship, error)

	// List returns every friend relation the user participates in, including
	// pending requests in both directions.
	List(ctx context.Context, userID int64) ([]models.Friend, error)

	// Overlap returns the favourites of one kind that userID and the accepted
	// friend with friendLogin have in common. The returned documents are the
	// caller's own copies.
	Overlap(ctx context.Context, userID int64, friendLogin string, kind models.Kind) ([]models.FavouriteRow, error)
}
