// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vpetrenko/reelsync/internal/service"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

func TestRequestFriendEndpoint_Created(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().
		Request(gomock.Any(), int64(7), "bob").
		Return(models.Friendship{
			PairKey:     models.FriendPairKey(7, 42),
			RequesterID: 7,
			AddresseeID: 42,
			Status:      models.FriendStatusPending,
		}, nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/friends", strings.NewReader(`{"login":"bob"}`)))

	require.Equal(t, http.StatusCreated, rr.Code)

	var friendship models.Friendship
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &friendship))
	assert.Equal(t, models.FriendStatusPending, friendship.Status)
	assert.Equal(t, "7_42", friendship.PairKey)
}

func TestRequestFriendEndpoint_SelfRequest(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().
		Request(gomock.Any(), int64(7), "alice").
		Return(models.Friendship{}, service.ErrFriendRequestToSelf)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/friends", strings.NewReader(`{"login":"alice"}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequestFriendEndpoint_UnknownAddressee(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().
		Request(gomock.Any(), int64(7), "ghost").
		Return(models.Friendship{}, store.ErrNoUserWasFound)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/friends", strings.NewReader(`{"login":"ghost"}`)))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListFriendsEndpoint_ReturnsFriends(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().List(gomock.Any(), int64(7)).Return([]models.Friend{
		{UserID: 42, Login: "bob", Status: models.FriendStatusAccepted},
		{UserID: 5, Login: "carol", Status: models.FriendStatusPending},
	}, nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/friends", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var friends []models.Friend
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &friends))
	require.Len(t, friends, 2)
	assert.Equal(t, "bob", friends[0].Login)
}

func TestListFriendsEndpoint_EmptyListIsJSONArray(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().List(gomock.Any(), int64(7)).Return(nil, nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/friends", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestRespondFriendEndpoint_Accept(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().
		Respond(gomock.Any(), int64(7), "bob", true).
		Return(models.Friendship{
			PairKey:     models.FriendPairKey(7, 42),
			RequesterID: 42,
			AddresseeID: 7,
			Status:      models.FriendStatusAccepted,
		}, nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodPatch, "/api/friends/bob", strings.NewReader(`{"accept":true}`)))

	require.Equal(t, http.StatusOK, rr.Code)

	var friendship models.Friendship
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &friendship))
	assert.Equal(t, models.FriendStatusAccepted, friendship.Status)
}

func TestRespondFriendEndpoint_NotAddressee(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().
		Respond(gomock.Any(), int64(7), "bob", true).
		Return(models.Friendship{}, service.ErrNotRequestAddressee)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodPatch, "/api/friends/bob", strings.NewReader(`{"accept":true}`)))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestFriendOverlapEndpoint_ReturnsCommonDocuments(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().
		Overlap(gomock.Any(), int64(7), "bob", models.KindMovie).
		Return([]models.FavouriteRow{
			{Kind: models.KindMovie, ItemID: 603, Doc: json.RawMessage(`{"id":603,"title":"The Matrix"}`)},
		}, nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/friends/bob/overlap/movie", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Items  []json.RawMessage `json:"items"`
		Length int               `json:"length"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Length)
	assert.JSONEq(t, `{"id":603,"title":"The Matrix"}`, string(resp.Items[0]))
}

func TestFriendOverlapEndpoint_NotFriends(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(7)

	f.friends.EXPECT().
		Overlap(gomock.Any(), int64(7), "bob", models.KindShow).
		Return(nil, service.ErrNotFriends)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/friends/bob/overlap/show", nil))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
