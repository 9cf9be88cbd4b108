// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

// Package adapter provides transport-layer abstractions for communicating with
// the ReelSync cloud server.
//
// The primary abstraction is [CloudAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPCloudAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/vpetrenko/reelsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cloud_adapter_mock.go -package=mock

// CloudAdapter defines transport-agnostic communication with the ReelSync
// cloud server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type CloudAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken and returns the registered user with its server-assigned ID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns the token together with
	// the user ID extracted from it.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// ListMovies fetches every favourite movie stored in the user's cloud
	// collection, newest first. Requires a valid bearer token.
	ListMovies(ctx context.Context) ([]models.FavouriteMovie, error)

	// AddMovie upserts one favourite movie into the user's cloud collection.
	// Re-adding an already stored movie is not an error.
	AddMovie(ctx context.Context, movie models.FavouriteMovie) error

	// RemoveMovie deletes one favourite movie from the cloud collection and
	// reports whether anything was removed. A missing id is not an error.
	RemoveMovie(ctx context.Context, id int64) (bool, error)

	// ListShows fetches every favourite show stored in the user's cloud
	// collection, newest first. Requires a valid bearer token.
	ListShows(ctx context.Context) ([]models.FavouriteShow, error)

	// AddShow upserts one favourite show into the user's cloud collection.
	AddShow(ctx context.Context, show models.FavouriteShow) error

	// RemoveShow deletes one favourite show from the cloud collection and
	// reports whether anything was removed.
	RemoveShow(ctx context.Context, id int64) (bool, error)

	// ListPeople fetches every favourite person stored in the user's cloud
	// collection, newest first. Requires a valid bearer token.
	ListPeople(ctx context.Context) ([]models.FavouritePerson, error)

	// AddPerson upserts one favourite person into the user's cloud collection.
	AddPerson(ctx context.Context, person models.FavouritePerson) error

	// RemovePerson deletes one favourite person from the cloud collection and
	// reports whether anything was removed.
	RemovePerson(ctx context.Context, id int64) (bool, error)

	// RequestFriend sends a friend request to the user with the given login.
	// Returns the pending friendship record.
	RequestFriend(ctx context.Context, login string) (models.Friendship, error)

	// ListFriends returns every friendship of the current user, pending ones
	// included, as the other user's public view.
	ListFriends(ctx context.Context) ([]models.Friend, error)

	// RespondFriend accepts or rejects the pending friend request from the
	// user with the given login.
	RespondFriend(ctx context.Context, login string, accept bool) (models.Friendship, error)

	// OverlapMovies returns the favourite movies the current user and the
	// accepted friend with the given login have in common.
	OverlapMovies(ctx context.Context, login string) ([]models.FavouriteMovie, error)

	// OverlapShows returns the favourite shows shared with the friend.
	OverlapShows(ctx context.Context, login string) ([]models.FavouriteShow, error)

	// OverlapPeople returns the favourite people shared with the friend.
	OverlapPeople(ctx context.Context, login string) ([]models.FavouritePerson, error)
}
