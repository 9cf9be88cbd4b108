package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/models"
)

func newTestFriendsRepo(t *testing.T) (*friendsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &friendsRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func friendshipColumns() []string {
	return []string{"pair_key", "requester_id", "addressee_id", "status", "created_at", "updated_at"}
}

func TestFriendsUpsert_InsertsPendingRequest(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO friends").
		WithArgs("7_42", int64(7), int64(42), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), models.Friendship{
		PairKey:     "7_42",
		RequesterID: 7,
		AddresseeID: 42,
		Status:      models.FriendStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendsUpsert_DBError(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO friends").
		WillReturnError(errors.New("connection reset"))

	err := repo.Upsert(context.Background(), models.Friendship{PairKey: "7_42"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert friendship")
}

func TestFriendsGetByPairKey_Found(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT pair_key, requester_id, addressee_id, status").
		WithArgs("7_42").
		WillReturnRows(sqlmock.NewRows(friendshipColumns()).
			AddRow("7_42", int64(7), int64(42), "accepted", created, created))

	friendship, err := repo.GetByPairKey(context.Background(), "7_42")
	require.NoError(t, err)
	assert.Equal(t, int64(7), friendship.RequesterID)
	assert.Equal(t, models.FriendStatusAccepted, friendship.Status)
}

func TestFriendsGetByPairKey_NotFound(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT pair_key, requester_id, addressee_id, status").
		WithArgs("1_2").
		WillReturnRows(sqlmock.NewRows(friendshipColumns()))

	_, err := repo.GetByPairKey(context.Background(), "1_2")
	assert.ErrorIs(t, err, ErrFriendshipNotFound)
}

func TestFriendsListForUser_BothSidesOfPair(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT pair_key, requester_id, addressee_id, status").
		WithArgs(int64(7), int64(7)).
		WillReturnRows(sqlmock.NewRows(friendshipColumns()).
			AddRow("7_42", int64(7), int64(42), "accepted", created, created).
			AddRow("3_7", int64(3), int64(7), "pending", created, created))

	friendships, err := repo.ListForUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, friendships, 2)
	assert.Equal(t, "7_42", friendships[0].PairKey)
	assert.Equal(t, models.FriendStatusPending, friendships[1].Status)
}

func TestFriendsListForUser_NoFriendships(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT pair_key, requester_id, addressee_id, status").
		WithArgs(int64(9), int64(9)).
		WillReturnRows(sqlmock.NewRows(friendshipColumns()))

	friendships, err := repo.ListForUser(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, friendships)
}

func TestFriendsListForUser_QueryError(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT pair_key, requester_id, addressee_id, status").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.ListForUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFriendsUpdateStatus_Accepts(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE friends").
		WithArgs("7_42", "accepted").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "7_42", models.FriendStatusAccepted)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendsUpdateStatus_MissingPair(t *testing.T) {
	repo, mock, db := newTestFriendsRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE friends").
		WithArgs("1_2", "rejected").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "1_2", models.FriendStatusRejected)
	assert.ErrorIs(t, err, ErrFriendshipNotFound)
}
