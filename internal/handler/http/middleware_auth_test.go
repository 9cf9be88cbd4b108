// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vpetrenko/reelsync/internal/service"
	"github.com/vpetrenko/reelsync/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	f := newHandlerFixture(t)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, newRequest(http.MethodGet, "/api/favourites/movie", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	f := newHandlerFixture(t)

	req := newRequest(http.MethodGet, "/api/favourites/movie", nil)
	req.Header.Set("Authorization", "Bearer")

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrInvalidAuthorizationHeader.Error())
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	f := newHandlerFixture(t)

	req := newRequest(http.MethodGet, "/api/favourites/movie", nil)
	req.Header.Set("Authorization", "Bearer ")

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrEmptyToken.Error())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	f := newHandlerFixture(t)

	f.auth.EXPECT().
		ParseToken(gomock.Any(), "garbage").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := newRequest(http.MethodGet, "/api/favourites/movie", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_PassesUserIDToHandler(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectAuthenticated(42)

	// the handler must see the user id parsed from the token, not a default
	f.favourites.EXPECT().List(gomock.Any(), int64(42), models.KindMovie).Return(nil, nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, authedRequest(http.MethodGet, "/api/favourites/movie", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}
