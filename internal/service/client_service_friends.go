package service

import (
	"context"
	"fmt"

	"github.com/vpetrenko/reelsync/internal/adapter"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/models"
)

type clientFriendsService struct {
	adapter adapter.CloudAdapter
	logger  *logger.Logger
}

// NewClientFriendsService constructs a [ClientFriendsService]. Unlike the
// favourites service there is no local copy to fall back on: friendships live
// on the server, so every call goes over the wire.
func NewClientFriendsService(cloudAdapter adapter.CloudAdapter, logger *logger.Logger) ClientFriendsService {
	return &clientFriendsService{adapter: cloudAdapter, logger: logger}
}

// Request implements [ClientFriendsService].
func (s *clientFriendsService) Request(ctx context.Context, login string) (models.Friendship, error) {
	if s.adapter.Token() == "" {
		return models.Friendship{}, ErrNotAuthenticated
	}

	friendship, err := s.adapter.RequestFriend(ctx, login)
	if err != nil {
		return models.Friendship{}, fmt.Errorf("send friend request: %w", err)
	}

	s.logger.Info().Str("addressee", login).Msg("friend request sent")
	return friendship, nil
}

// List implements [ClientFriendsService].
func (s *clientFriendsService) List(ctx context.Context) ([]models.Friend, error) {
	if s.adapter.Token() == "" {
		return nil, ErrNotAuthenticated
	}

	friends, err := s.adapter.ListFriends(ctx)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	return friends, nil
}

// Respond implements [ClientFriendsService].
func (s *clientFriendsService) Respond(ctx context.Context, login string, accept bool) (models.Friendship, error) {
	if s.adapter.Token() == "" {
		return models.Friendship{}, ErrNotAuthenticated
	}

	friendship, err := s.adapter.RespondFriend(ctx, login, accept)
	if err != nil {
		return models.Friendship{}, fmt.Errorf("respond to friend request: %w", err)
	}

	s.logger.Info().Str("requester", login).Bool("accept", accept).Msg("friend request answered")
	return friendship, nil
}

// Overlap implements [ClientFriendsService]. The snapshot carries only the
// requested kind; the other two collections stay empty.
func (s *clientFriendsService) Overlap(ctx context.Context, login string, kind models.Kind) (models.Snapshot, error) {
	if s.adapter.Token() == "" {
		return models.Snapshot{}, ErrNotAuthenticated
	}

	var snapshot models.Snapshot
	var err error

	switch kind {
	case models.KindMovie:
		snapshot.Movies, err = s.adapter.OverlapMovies(ctx, login)
	case models.KindShow:
		snapshot.Shows, err = s.adapter.OverlapShows(ctx, login)
	case models.KindPerson:
		snapshot.People, err = s.adapter.OverlapPeople(ctx, login)
	default:
		return models.Snapshot{}, fmt.Errorf("overlap: unknown kind %q", kind)
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("overlap %s with %s: %w", kind, login, err)
	}

	return snapshot, nil
}
