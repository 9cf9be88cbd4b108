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
	"github.com/vpetrenko/reelsync/models"
)

type clientFriendsFixture struct {
	adapter *mock.MockCloudAdapter
	svc     ClientFriendsService
}

func newClientFriendsFixture(t *testing.T) *clientFriendsFixture {
	ctrl := gomock.NewController(t)

	f := &clientFriendsFixture{adapter: mock.NewMockCloudAdapter(ctrl)}
	f.svc = NewClientFriendsService(f.adapter, logger.Nop())
	return f
}

// ── Request ──

func TestClientFriendsRequest_SendsToCloud(t *testing.T) {
	f := newClientFriendsFixture(t)
	want := models.Friendship{
		PairKey:     "7_42",
		RequesterID: 7,
		AddresseeID: 42,
		Status:      models.FriendStatusPending,
	}

	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().RequestFriend(gomock.Any(), "bob").Return(want, nil)

	got, err := f.svc.Request(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientFriendsRequest_RequiresAuthentication(t *testing.T) {
	f := newClientFriendsFixture(t)

	f.adapter.EXPECT().Token().Return("")
	// no cloud call expected

	_, err := f.svc.Request(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestClientFriendsRequest_CloudFailurePropagated(t *testing.T) {
	f := newClientFriendsFixture(t)

	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().RequestFriend(gomock.Any(), "ghost").
		Return(models.Friendship{}, errors.New("no user was found"))

	_, err := f.svc.Request(context.Background(), "ghost")
	assert.ErrorContains(t, err, "send friend request")
}

// ── List ──

func TestClientFriendsList_ReturnsFriends(t *testing.T) {
	f := newClientFriendsFixture(t)
	want := []models.Friend{
		{UserID: 42, Login: "bob", Status: models.FriendStatusAccepted},
		{UserID: 9, Login: "carol", Status: models.FriendStatusPending},
	}

	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().ListFriends(gomock.Any()).Return(want, nil)

	got, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientFriendsList_RequiresAuthentication(t *testing.T) {
	f := newClientFriendsFixture(t)

	f.adapter.EXPECT().Token().Return("")

	_, err := f.svc.List(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Respond ──

func TestClientFriendsRespond_Accept(t *testing.T) {
	f := newClientFriendsFixture(t)
	want := models.Friendship{PairKey: "7_42", Status: models.FriendStatusAccepted}

	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().RespondFriend(gomock.Any(), "bob", true).Return(want, nil)

	got, err := f.svc.Respond(context.Background(), "bob", true)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatusAccepted, got.Status)
}

func TestClientFriendsRespond_Reject(t *testing.T) {
	f := newClientFriendsFixture(t)
	want := models.Friendship{PairKey: "7_42", Status: models.FriendStatusRejected}

	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().RespondFriend(gomock.Any(), "bob", false).Return(want, nil)

	got, err := f.svc.Respond(context.Background(), "bob", false)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatusRejected, got.Status)
}

func TestClientFriendsRespond_RequiresAuthentication(t *testing.T) {
	f := newClientFriendsFixture(t)

	f.adapter.EXPECT().Token().Return("")

	_, err := f.svc.Respond(context.Background(), "bob", true)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Overlap ──

func TestClientFriendsOverlap_Movies(t *testing.T) {
	f := newClientFriendsFixture(t)
	shared := []models.FavouriteMovie{movie(603, "The Matrix"), movie(680, "Pulp Fiction")}

	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().OverlapMovies(gomock.Any(), "bob").Return(shared, nil)

	got, err := f.svc.Overlap(context.Background(), "bob", models.KindMovie)
	require.NoError(t, err)
	assert.Equal(t, shared, got.Movies)
	assert.Empty(t, got.Shows)
	assert.Empty(t, got.People)
}

func TestClientFriendsOverlap_Shows(t *testing.T) {
	f := newClientFriendsFixture(t)
	shared := []models.FavouriteShow{show(1396, "Breaking Bad")}

	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().OverlapShows(gomock.Any(), "bob").Return(shared, nil)

	got, err := f.svc.Overlap(context.Background(), "bob", models.KindShow)
	require.NoError(t, err)
	assert.Equal(t, shared, got.Shows)
}

func TestClientFriendsOverlap_People(t *testing.T) {
	f := newClientFriendsFixture(t)
	shared := []models.FavouritePerson{person(6384, "Keanu Reeves")}

	f.adapter.EXPECT().Token().Return("token")
	f.adapter.EXPECT().OverlapPeople(gomock.Any(), "bob").Return(shared, nil)

	got, err := f.svc.Overlap(context.Background(), "bob", models.KindPerson)
	require.NoError(t, err)
	assert.Equal(t, shared, got.People)
}

func TestClientFriendsOverlap_UnknownKind(t *testing.T) {
	f := newClientFriendsFixture(t)

	f.adapter.EXPECT().Token().Return("token")

	_, err := f.svc.Overlap(context.Background(), "bob", models.Kind("albums"))
	assert.ErrorContains(t, err, "unknown kind")
}

func TestClientFriendsOverlap_RequiresAuthentication(t *testing.T) {
	f := newClientFriendsFixture(t)

	f.adapter.EXPECT().Token().Return("")

	_, err := f.svc.Overlap(context.Background(), "bob", models.KindMovie)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
