// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/go-chi/chi/v5"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/mock"
	"github.com/vpetrenko/reelsync/internal/service"
	"github.com/vpetrenko/reelsync/models"
)

// handlerFixture wires a Handler with mocked services and the full router so
// tests exercise the same middleware chain the server runs in production.
type handlerFixture struct {
	auth       *mock.MockAuthService
	favourites *mock.MockFavouritesService
	friends    *mock.MockFriendsService
	router     *chi.Mux
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		auth:       mock.NewMockAuthService(ctrl),
		favourites: mock.NewMockFavouritesService(ctrl),
		friends:    mock.NewMockFriendsService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:       f.auth,
		FavouritesService: f.favourites,
		FriendsService:    f.friends,
	}, logger.Nop())

	f.router = h.Init()
	return f
}

// expectAuthenticated arms the ParseToken expectation the auth middleware hits
// for every request carrying "Bearer <token>".
func (f *handlerFixture) expectAuthenticated(userID int64) {
	f.auth.EXPECT().
		ParseToken(gomock.Any(), "valid-token").
		Return(models.Token{SignedString: "valid-token", UserID: userID}, nil)
}

func newRequest(method, target string, body io.Reader) *http.Request {
	return httptest.NewRequest(method, target, body)
}

func authedRequest(method, target string, body io.Reader) *http.Request {
	req := newRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}
