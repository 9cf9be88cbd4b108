// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package service

import (
	"context"
	"encoding/json"
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

func newTestFavouritesService(t *testing.T) (FavouritesService, *mock.MockFavouritesRepository) {
	ctrl := gomock.NewController(t)
	favourites := mock.NewMockFavouritesRepository(ctrl)

	return NewFavouritesService(favourites, logger.Nop()), favourites
}

func TestFavouritesAdd_ExtractsIDFromDocument(t *testing.T) {
	svc, favourites := newTestFavouritesService(t)
	doc := json.RawMessage(`{"id":603,"title":"The Matrix","vote_average":8.2}`)

	favourites.EXPECT().Add(gomock.Any(), int64(7), models.KindMovie, int64(603), []byte(doc)).Return(nil)

	require.NoError(t, svc.Add(context.Background(), 7, models.KindMovie, doc))
}

func TestFavouritesAdd_DocumentValidation(t *testing.T) {
	svc, _ := newTestFavouritesService(t)

	tests := []struct {
		name string
		doc  json.RawMessage
	}{
		{"empty document", nil},
		{"malformed json", json.RawMessage(`{"id":`)},
		{"missing id", json.RawMessage(`{"title":"The Matrix"}`)},
		{"zero id", json.RawMessage(`{"id":0}`)},
		{"negative id", json.RawMessage(`{"id":-5}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Add(context.Background(), 7, models.KindMovie, tt.doc)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestFavouritesAdd_UnknownKind(t *testing.T) {
	svc, _ := newTestFavouritesService(t)

	err := svc.Add(context.Background(), 7, models.Kind("album"), json.RawMessage(`{"id":1}`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFavouritesAdd_RepositoryFailure(t *testing.T) {
	svc, favourites := newTestFavouritesService(t)
	doc := json.RawMessage(`{"id":603}`)

	favourites.EXPECT().
		Add(gomock.Any(), int64(7), models.KindMovie, int64(603), []byte(doc)).
		Return(store.ErrExecutingQuery)

	err := svc.Add(context.Background(), 7, models.KindMovie, doc)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestFavouritesList_Delegates(t *testing.T) {
	svc, favourites := newTestFavouritesService(t)

	want := []models.FavouriteRow{{Kind: models.KindShow, ItemID: 1399, Doc: json.RawMessage(`{"id":1399}`)}}
	favourites.EXPECT().List(gomock.Any(), int64(7), models.KindShow).Return(want, nil)

	got, err := svc.List(context.Background(), 7, models.KindShow)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFavouritesList_UnknownKind(t *testing.T) {
	svc, _ := newTestFavouritesService(t)

	_, err := svc.List(context.Background(), 7, models.Kind(""))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFavouritesRemove_ReportsRemoval(t *testing.T) {
	svc, favourites := newTestFavouritesService(t)

	favourites.EXPECT().Remove(gomock.Any(), int64(7), models.KindPerson, int64(6384)).Return(true, nil)

	removed, err := svc.Remove(context.Background(), 7, models.KindPerson, 6384)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestFavouritesRemove_AbsentIDIsNotAnError(t *testing.T) {
	svc, favourites := newTestFavouritesService(t)

	favourites.EXPECT().Remove(gomock.Any(), int64(7), models.KindMovie, int64(999)).Return(false, nil)

	removed, err := svc.Remove(context.Background(), 7, models.KindMovie, 999)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFavouritesRemove_RepositoryFailure(t *testing.T) {
	svc, favourites := newTestFavouritesService(t)

	favourites.EXPECT().
		Remove(gomock.Any(), int64(7), models.KindMovie, int64(603)).
		Return(false, errors.New("connection reset"))

	_, err := svc.Remove(context.Background(), 7, models.KindMovie, 603)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remove favourite")
}
