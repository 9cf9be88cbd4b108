package service

import (
	"context"
	"fmt"

	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

// friendsService is the concrete implementation of FriendsService.
type friendsService struct {
	users      store.UserRepository
	friends    store.FriendsRepository
	favourites store.FavouritesRepository
	logger     *logger.Logger
}

// NewFriendsService constructs a [FriendsService] over the user, friends, and
// favourites repositories.
func NewFriendsService(users store.UserRepository, friends store.FriendsRepository, favourites store.FavouritesRepository, logger *logger.Logger) FriendsService {
	return &friendsService{
		users:      users,
		friends:    friends,
		favourites: favourites,
		logger:     logger,
	}
}

// Request implements [FriendsService].
//
// Returns ErrFriendRequestToSelf when the addressee resolves to the
// requester, and store.ErrNoUserWasFound (wrapped) when addresseeLogin does
// not exist.
func (s *friendsService) Request(ctx context.Context, requesterID int64, addresseeLogin string) (models.Friendship, error) {
	log := logger.FromContext(ctx)

	if addresseeLogin == "" {
		return models.Friendship{}, ErrInvalidDataProvided
	}

	addressee, err := s.users.FindUserByLogin(ctx, addresseeLogin)
	if err != nil {
		return models.Friendship{}, fmt.Errorf("find addressee: %w", err)
	}
	if addressee.UserID == requesterID {
		return models.Friendship{}, ErrFriendRequestToSelf
	}

	friendship := models.Friendship{
		PairKey:     models.FriendPairKey(requesterID, addressee.UserID),
		RequesterID: requesterID,
		AddresseeID: addressee.UserID,
		Status:      models.FriendStatusPending,
	}

	if err = s.friends.Upsert(ctx, friendship); err != nil {
		log.Err(err).Str("pair_key", friendship.PairKey).Msg("failed to store friend request")
		return models.Friendship{}, fmt.Errorf("store friend request: %w", err)
	}

	return friendship, nil
}

// Respond implements [FriendsService].
//
// Only the addressee of the pending request may respond; a requester trying
// to accept their own request gets ErrNotRequestAddressee.
func (s *friendsService) Respond(ctx context.Context, userID int64, otherLogin string, accept bool) (models.Friendship, error) {
	other, err := s.users.FindUserByLogin(ctx, otherLogin)
	if err != nil {
		return models.Friendship{}, fmt.Errorf("find requester: %w", err)
	}

	pairKey := models.FriendPairKey(userID, other.UserID)
	friendship, err := s.friends.GetByPairKey(ctx, pairKey)
	if err != nil {
		return models.Friendship{}, fmt.Errorf("find friend request: %w", err)
	}
	if friendship.AddresseeID != userID {
		return models.Friendship{}, ErrNotRequestAddressee
	}

	status := models.FriendStatusAccepted
	if !accept {
		status = models.FriendStatusRejected
	}

	if err = s.friends.UpdateStatus(ctx, pairKey, status); err != nil {
		return models.Friendship{}, fmt.Errorf("update friend request: %w", err)
	}

	friendship.Status = status
	return friendship, nil
}

// List implements [FriendsService].
func (s *friendsService) List(ctx context.Context, userID int64) ([]models.Friend, error) {
	log := logger.FromContext(ctx)

	friendships, err := s.friends.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list friendships: %w", err)
	}

	friends := make([]models.Friend, 0, len(friendships))
	for _, f := range friendships {
		otherID := f.RequesterID
		if otherID == userID {
			otherID = f.AddresseeID
		}

		other, err := s.users.FindUserByID(ctx, otherID)
		if err != nil {
			log.Err(err).Int64("user_id", otherID).Msg("failed to resolve friend user")
			return nil, fmt.Errorf("resolve friend %d: %w", otherID, err)
		}

		friends = append(friends, models.Friend{
			UserID: other.UserID,
			Login:  other.Login,
			Name:   other.Name,
			Status: f.Status,
		})
	}

	return friends, nil
}

// Overlap implements [FriendsService].
//
// Returns ErrNotFriends unless an accepted friendship exists between the two
// users.
func (s *friendsService) Overlap(ctx context.Context, userID int64, friendLogin string, kind models.Kind) ([]models.FavouriteRow, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	friend, err := s.users.FindUserByLogin(ctx, friendLogin)
	if err != nil {
		return nil, fmt.Errorf("find friend: %w", err)
	}

	friendship, err := s.friends.GetByPairKey(ctx, models.FriendPairKey(userID, friend.UserID))
	if err != nil || friendship.Status != models.FriendStatusAccepted {
		return nil, ErrNotFriends
	}

	own, err := s.favourites.List(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("list own favourites: %w", err)
	}
	theirs, err := s.favourites.List(ctx, friend.UserID, kind)
	if err != nil {
		return nil, fmt.Errorf("list friend favourites: %w", err)
	}

	theirIDs := make(map[int64]struct{}, len(theirs))
	for _, row := range theirs {
		theirIDs[row.ItemID] = struct{}{}
	}

	var common []models.FavouriteRow
	for _, row := range own {
		if _, ok := theirIDs[row.ItemID]; ok {
			common = append(common, row)
		}
	}

	return common, nil
}
