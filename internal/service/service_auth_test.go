// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vpetrenko/reelsync/internal/config"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/mock"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(users, config.ServerApp{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "reelsync",
		TokenDuration: time.Hour,
	}, logger.Nop())

	return svc, users
}

func TestRegisterUser_HashesPasswordBeforeStoring(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Empty(t, user.Password, "plaintext password must not reach the repository")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
			user.UserID = 1
			return user, nil
		})

	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
}

func TestRegisterUser_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterUser(context.Background(), models.User{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterUser_LoginTaken(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc, users := newTestAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().
		FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{UserID: 7, Login: "alice", PasswordHash: string(hash)}, nil)

	found, err := svc.Login(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := newTestAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users.EXPECT().
		FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{UserID: 7, Login: "alice", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().FindUserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.User{Login: "ghost", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), models.User{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCreateAndParseToken_Roundtrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	issuer := NewAuthService(users, config.ServerApp{
		TokenSignKey: "key-one", TokenIssuer: "reelsync", TokenDuration: time.Hour,
	}, logger.Nop())
	verifier := NewAuthService(users, config.ServerApp{
		TokenSignKey: "key-two", TokenIssuer: "reelsync", TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := issuer.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = verifier.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCreateToken_MissingSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(users, config.ServerApp{TokenIssuer: "reelsync", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestRegisterUser_RepositoryFailure(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("connection reset"))

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user creation ended with error")
}
