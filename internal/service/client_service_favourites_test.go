// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/mock"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

type favouritesFixture struct {
	favourites *mock.MockLocalFavouritesRepository
	adapter    *mock.MockCloudAdapter
	svc        ClientFavouritesService
}

func newFavouritesFixture(t *testing.T) *favouritesFixture {
	ctrl := gomock.NewController(t)

	f := &favouritesFixture{
		favourites: mock.NewMockLocalFavouritesRepository(ctrl),
		adapter:    mock.NewMockCloudAdapter(ctrl),
	}
	f.svc = NewClientFavouritesService(
		&store.ClientStorages{Favourites: f.favourites},
		f.adapter,
		logger.Nop(),
	)
	return f
}

func TestClientAddMovie_OfflineStoresLocallyOnly(t *testing.T) {
	f := newFavouritesFixture(t)
	m := movie(603, "The Matrix")

	f.favourites.EXPECT().AddMovie(gomock.Any(), m).Return(nil)
	f.adapter.EXPECT().Token().Return("")
	// no cloud call expected

	require.NoError(t, f.svc.AddMovie(context.Background(), m))
}

func TestClientAddMovie_AuthenticatedPropagatesToCloud(t *testing.T) {
	f := newFavouritesFixture(t)
	m := movie(603, "The Matrix")

	f.favourites.EXPECT().AddMovie(gomock.Any(), m).Return(nil)
	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().AddMovie(gomock.Any(), m).Return(nil)

	require.NoError(t, f.svc.AddMovie(context.Background(), m))
}

func TestClientAddMovie_CloudFailureDoesNotFailAdd(t *testing.T) {
	f := newFavouritesFixture(t)
	m := movie(603, "The Matrix")

	f.favourites.EXPECT().AddMovie(gomock.Any(), m).Return(nil)
	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().AddMovie(gomock.Any(), m).Return(errors.New("server unreachable"))

	// local add succeeded; the next sync delivers the movie
	require.NoError(t, f.svc.AddMovie(context.Background(), m))
}

func TestClientAddMovie_DuplicateRejected(t *testing.T) {
	f := newFavouritesFixture(t)
	m := movie(603, "The Matrix")

	f.favourites.EXPECT().AddMovie(gomock.Any(), m).Return(store.ErrDuplicateFavourite)

	err := f.svc.AddMovie(context.Background(), m)
	assert.ErrorIs(t, err, store.ErrDuplicateFavourite)
}

func TestClientAddShow_AuthenticatedPropagatesToCloud(t *testing.T) {
	f := newFavouritesFixture(t)
	sh := show(1399, "Game of Thrones")

	f.favourites.EXPECT().AddShow(gomock.Any(), sh).Return(nil)
	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().AddShow(gomock.Any(), sh).Return(nil)

	require.NoError(t, f.svc.AddShow(context.Background(), sh))
}

func TestClientAddPerson_LocalFailureSkipsCloud(t *testing.T) {
	f := newFavouritesFixture(t)
	p := person(6384, "Keanu Reeves")

	f.favourites.EXPECT().AddPerson(gomock.Any(), p).Return(errors.New("disk I/O error"))

	err := f.svc.AddPerson(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add person locally")
}

func TestClientRemoveMovie_ReportsLocalRemoval(t *testing.T) {
	f := newFavouritesFixture(t)

	f.favourites.EXPECT().RemoveMovie(gomock.Any(), int64(603)).Return(true, nil)
	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().RemoveMovie(gomock.Any(), int64(603)).Return(true, nil)

	removed, err := f.svc.RemoveMovie(context.Background(), 603)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestClientRemoveShow_AbsentIDIsNotAnError(t *testing.T) {
	f := newFavouritesFixture(t)

	f.favourites.EXPECT().RemoveShow(gomock.Any(), int64(999)).Return(false, nil)
	f.adapter.EXPECT().Token().Return("")

	removed, err := f.svc.RemoveShow(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestClientRemovePerson_CloudFailureKeepsLocalResult(t *testing.T) {
	f := newFavouritesFixture(t)

	f.favourites.EXPECT().RemovePerson(gomock.Any(), int64(6384)).Return(true, nil)
	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().RemovePerson(gomock.Any(), int64(6384)).Return(false, errors.New("server unreachable"))

	removed, err := f.svc.RemovePerson(context.Background(), 6384)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestClientListMovies_ReadsLocalOnly(t *testing.T) {
	f := newFavouritesFixture(t)

	want := []models.FavouriteMovie{movie(603, "The Matrix")}
	f.favourites.EXPECT().ListMovies(gomock.Any()).Return(want, nil)

	got, err := f.svc.ListMovies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
