// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/mock"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

type friendsFixture struct {
	users      *mock.MockUserRepository
	friends    *mock.MockFriendsRepository
	favourites *mock.MockFavouritesRepository
	svc        FriendsService
}

func newFriendsFixture(t *testing.T) *friendsFixture {
	ctrl := gomock.NewController(t)

	f := &friendsFixture{
		users:      mock.NewMockUserRepository(ctrl),
		friends:    mock.NewMockFriendsRepository(ctrl),
		favourites: mock.NewMockFavouritesRepository(ctrl),
	}
	f.svc = NewFriendsService(f.users, f.friends, f.favourites, logger.Nop())
	return f
}

func favouriteRow(kind models.Kind, itemID int64) models.FavouriteRow {
	return models.FavouriteRow{
		Kind:   kind,
		ItemID: itemID,
		Doc:    json.RawMessage(fmt.Sprintf(`{"id":%d}`, itemID)),
	}
}

// ── Request ─────────────────────────────────────────────────────────────────

func TestFriendsRequest_CreatesPendingFriendship(t *testing.T) {
	f := newFriendsFixture(t)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fs models.Friendship) error {
			assert.Equal(t, models.FriendPairKey(7, 42), fs.PairKey)
			assert.Equal(t, int64(7), fs.RequesterID)
			assert.Equal(t, int64(42), fs.AddresseeID)
			assert.Equal(t, models.FriendStatusPending, fs.Status)
			return nil
		})

	friendship, err := f.svc.Request(context.Background(), 7, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatusPending, friendship.Status)
}

func TestFriendsRequest_ToSelf(t *testing.T) {
	f := newFriendsFixture(t)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{UserID: 7, Login: "alice"}, nil)

	_, err := f.svc.Request(context.Background(), 7, "alice")
	assert.ErrorIs(t, err, ErrFriendRequestToSelf)
}

func TestFriendsRequest_AddresseeNotFound(t *testing.T) {
	f := newFriendsFixture(t)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := f.svc.Request(context.Background(), 7, "ghost")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestFriendsRequest_EmptyLogin(t *testing.T) {
	f := newFriendsFixture(t)

	_, err := f.svc.Request(context.Background(), 7, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Respond ─────────────────────────────────────────────────────────────────

func TestFriendsRespond_Accept(t *testing.T) {
	f := newFriendsFixture(t)
	pairKey := models.FriendPairKey(7, 42)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().GetByPairKey(gomock.Any(), pairKey).Return(models.Friendship{
		PairKey: pairKey, RequesterID: 42, AddresseeID: 7, Status: models.FriendStatusPending,
	}, nil)
	f.friends.EXPECT().UpdateStatus(gomock.Any(), pairKey, models.FriendStatusAccepted).Return(nil)

	friendship, err := f.svc.Respond(context.Background(), 7, "bob", true)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatusAccepted, friendship.Status)
}

func TestFriendsRespond_Reject(t *testing.T) {
	f := newFriendsFixture(t)
	pairKey := models.FriendPairKey(7, 42)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().GetByPairKey(gomock.Any(), pairKey).Return(models.Friendship{
		PairKey: pairKey, RequesterID: 42, AddresseeID: 7, Status: models.FriendStatusPending,
	}, nil)
	f.friends.EXPECT().UpdateStatus(gomock.Any(), pairKey, models.FriendStatusRejected).Return(nil)

	friendship, err := f.svc.Respond(context.Background(), 7, "bob", false)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatusRejected, friendship.Status)
}

func TestFriendsRespond_RequesterCannotAcceptOwnRequest(t *testing.T) {
	f := newFriendsFixture(t)
	pairKey := models.FriendPairKey(7, 42)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().GetByPairKey(gomock.Any(), pairKey).Return(models.Friendship{
		PairKey: pairKey, RequesterID: 7, AddresseeID: 42, Status: models.FriendStatusPending,
	}, nil)

	_, err := f.svc.Respond(context.Background(), 7, "bob", true)
	assert.ErrorIs(t, err, ErrNotRequestAddressee)
}

func TestFriendsRespond_NoRequestExists(t *testing.T) {
	f := newFriendsFixture(t)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().
		GetByPairKey(gomock.Any(), models.FriendPairKey(7, 42)).
		Return(models.Friendship{}, store.ErrFriendshipNotFound)

	_, err := f.svc.Respond(context.Background(), 7, "bob", true)
	assert.ErrorIs(t, err, store.ErrFriendshipNotFound)
}

// ── List ────────────────────────────────────────────────────────────────────

func TestFriendsList_ResolvesOtherSideOfEachPair(t *testing.T) {
	f := newFriendsFixture(t)

	f.friends.EXPECT().ListForUser(gomock.Any(), int64(7)).Return([]models.Friendship{
		{PairKey: models.FriendPairKey(7, 42), RequesterID: 7, AddresseeID: 42, Status: models.FriendStatusAccepted},
		{PairKey: models.FriendPairKey(5, 7), RequesterID: 5, AddresseeID: 7, Status: models.FriendStatusPending},
	}, nil)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(42)).Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{UserID: 5, Login: "carol"}, nil)

	friends, err := f.svc.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, friends, 2)

	assert.Equal(t, "bob", friends[0].Login)
	assert.Equal(t, models.FriendStatusAccepted, friends[0].Status)
	assert.Equal(t, "carol", friends[1].Login)
	assert.Equal(t, models.FriendStatusPending, friends[1].Status)
}

func TestFriendsList_Empty(t *testing.T) {
	f := newFriendsFixture(t)

	f.friends.EXPECT().ListForUser(gomock.Any(), int64(7)).Return(nil, nil)

	friends, err := f.svc.List(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

// ── Overlap ─────────────────────────────────────────────────────────────────

func TestFriendsOverlap_IntersectsByItemID(t *testing.T) {
	f := newFriendsFixture(t)
	pairKey := models.FriendPairKey(7, 42)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().GetByPairKey(gomock.Any(), pairKey).Return(models.Friendship{
		PairKey: pairKey, RequesterID: 7, AddresseeID: 42, Status: models.FriendStatusAccepted,
	}, nil)

	own := []models.FavouriteRow{
		favouriteRow(models.KindMovie, 603),
		favouriteRow(models.KindMovie, 238),
	}
	theirs := []models.FavouriteRow{
		favouriteRow(models.KindMovie, 603),
		favouriteRow(models.KindMovie, 680),
	}
	f.favourites.EXPECT().List(gomock.Any(), int64(7), models.KindMovie).Return(own, nil)
	f.favourites.EXPECT().List(gomock.Any(), int64(42), models.KindMovie).Return(theirs, nil)

	common, err := f.svc.Overlap(context.Background(), 7, "bob", models.KindMovie)
	require.NoError(t, err)
	require.Len(t, common, 1)

	// the caller gets their own copy of the shared favourite
	assert.Equal(t, own[0], common[0])
}

func TestFriendsOverlap_PendingFriendshipRejected(t *testing.T) {
	f := newFriendsFixture(t)
	pairKey := models.FriendPairKey(7, 42)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().GetByPairKey(gomock.Any(), pairKey).Return(models.Friendship{
		PairKey: pairKey, RequesterID: 7, AddresseeID: 42, Status: models.FriendStatusPending,
	}, nil)

	_, err := f.svc.Overlap(context.Background(), 7, "bob", models.KindMovie)
	assert.ErrorIs(t, err, ErrNotFriends)
}

func TestFriendsOverlap_NoFriendshipAtAll(t *testing.T) {
	f := newFriendsFixture(t)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().
		GetByPairKey(gomock.Any(), models.FriendPairKey(7, 42)).
		Return(models.Friendship{}, store.ErrFriendshipNotFound)

	_, err := f.svc.Overlap(context.Background(), 7, "bob", models.KindMovie)
	assert.ErrorIs(t, err, ErrNotFriends)
}

func TestFriendsOverlap_UnknownKind(t *testing.T) {
	f := newFriendsFixture(t)

	_, err := f.svc.Overlap(context.Background(), 7, "bob", models.Kind("album"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFriendsOverlap_ListFailure(t *testing.T) {
	f := newFriendsFixture(t)
	pairKey := models.FriendPairKey(7, 42)

	f.users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{UserID: 42, Login: "bob"}, nil)
	f.friends.EXPECT().GetByPairKey(gomock.Any(), pairKey).Return(models.Friendship{
		PairKey: pairKey, RequesterID: 7, AddresseeID: 42, Status: models.FriendStatusAccepted,
	}, nil)
	f.favourites.EXPECT().
		List(gomock.Any(), int64(7), models.KindShow).
		Return(nil, errors.New("connection reset"))

	_, err := f.svc.Overlap(context.Background(), 7, "bob", models.KindShow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list own favourites")
}
