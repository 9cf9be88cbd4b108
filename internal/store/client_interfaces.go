package store

import (
	"context"

	"github.com/vpetrenko/reelsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalFavouritesRepository is the SQLite-backed favourites store on the
// client device. Listings are ordered by created_at descending (newest
// first). Add rejects an already-present catalog ID with
// [ErrDuplicateFavourite]; Remove reports via its bool whether a row was
// actually deleted.
type LocalFavouritesRepository interface {
	ListMovies(ctx context.Context) ([]models.FavouriteMovie, error)
	ListShows(ctx context.Context) ([]models.FavouriteShow, error)
	ListPeople(ctx context.Context) ([]models.FavouritePerson, error)

	AddMovie(ctx context.Context, movie models.FavouriteMovie) error
	AddShow(ctx context.Context, show models.FavouriteShow) error
	AddPerson(ctx context.Context, person models.FavouritePerson) error

	RemoveMovie(ctx context.Context, id int64) (bool, error)
	RemoveShow(ctx context.Context, id int64) (bool, error)
	RemovePerson(ctx context.Context, id int64) (bool, error)

	// WipeAll deletes every row of all three collections. Settings are not
	// touched; clearing the last-sync key is the caller's responsibility.
	WipeAll(ctx context.Context) error
}

// SettingsRepository is the client key/value table used for small durable
// values such as the last successful sync timestamp.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
