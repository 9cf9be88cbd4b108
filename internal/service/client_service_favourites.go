package service

import (
	"context"
	"fmt"

	"github.com/vpetrenko/reelsync/internal/adapter"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

type clientFavouritesService struct {
	localStore *store.ClientStorages
	adapter    adapter.CloudAdapter
	logger     *logger.Logger
}

// NewClientFavouritesService constructs a [ClientFavouritesService] working
// local-first: the local database is the source of truth for reads, and every
// write lands there before any cloud propagation is attempted.
func NewClientFavouritesService(localStore *store.ClientStorages, cloudAdapter adapter.CloudAdapter, logger *logger.Logger) ClientFavouritesService {
	return &clientFavouritesService{
		localStore: localStore,
		adapter:    cloudAdapter,
		logger:     logger,
	}
}

// ListMovies implements [ClientFavouritesService]. Reads never touch the
// cloud.
func (s *clientFavouritesService) ListMovies(ctx context.Context) ([]models.FavouriteMovie, error) {
	return s.localStore.Favourites.ListMovies(ctx)
}

// AddMovie implements [ClientFavouritesService]. Returns
// [store.ErrDuplicateFavourite] (wrapped) if the movie is already a
// favourite. A failed cloud propagation is logged, not returned: the local
// add already succeeded and the next sync delivers the movie to the cloud.
func (s *clientFavouritesService) AddMovie(ctx context.Context, movie models.FavouriteMovie) error {
	if err := s.localStore.Favourites.AddMovie(ctx, movie); err != nil {
		return fmt.Errorf("add movie locally: %w", err)
	}

	if s.adapter.Token() != "" {
		if err := s.adapter.AddMovie(ctx, movie); err != nil {
			s.logger.Warn().Err(err).Int64("id", movie.ID).Msg("cloud add movie failed, will sync later")
		}
	}

	return nil
}

// RemoveMovie implements [ClientFavouritesService]. The returned flag
// reflects the local removal; a missing id is not an error.
func (s *clientFavouritesService) RemoveMovie(ctx context.Context, id int64) (bool, error) {
	removed, err := s.localStore.Favourites.RemoveMovie(ctx, id)
	if err != nil {
		return false, fmt.Errorf("remove movie locally: %w", err)
	}

	if s.adapter.Token() != "" {
		if _, err = s.adapter.RemoveMovie(ctx, id); err != nil {
			s.logger.Warn().Err(err).Int64("id", id).Msg("cloud remove movie failed")
		}
	}

	return removed, nil
}

// ListShows implements [ClientFavouritesService].
func (s *clientFavouritesService) ListShows(ctx context.Context) ([]models.FavouriteShow, error) {
	return s.localStore.Favourites.ListShows(ctx)
}

// AddShow implements [ClientFavouritesService].
func (s *clientFavouritesService) AddShow(ctx context.Context, show models.FavouriteShow) error {
	if err := s.localStore.Favourites.AddShow(ctx, show); err != nil {
		return fmt.Errorf("add show locally: %w", err)
	}

	if s.adapter.Token() != "" {
		if err := s.adapter.AddShow(ctx, show); err != nil {
			s.logger.Warn().Err(err).Int64("id", show.ID).Msg("cloud add show failed, will sync later")
		}
	}

	return nil
}

// RemoveShow implements [ClientFavouritesService].
func (s *clientFavouritesService) RemoveShow(ctx context.Context, id int64) (bool, error) {
	removed, err := s.localStore.Favourites.RemoveShow(ctx, id)
	if err != nil {
		return false, fmt.Errorf("remove show locally: %w", err)
	}

	if s.adapter.Token() != "" {
		if _, err = s.adapter.RemoveShow(ctx, id); err != nil {
			s.logger.Warn().Err(err).Int64("id", id).Msg("cloud remove show failed")
		}
	}

	return removed, nil
}

// ListPeople implements [ClientFavouritesService].
func (s *clientFavouritesService) ListPeople(ctx context.Context) ([]models.FavouritePerson, error) {
	return s.localStore.Favourites.ListPeople(ctx)
}

// AddPerson implements [ClientFavouritesService].
func (s *clientFavouritesService) AddPerson(ctx context.Context, person models.FavouritePerson) error {
	if err := s.localStore.Favourites.AddPerson(ctx, person); err != nil {
		return fmt.Errorf("add person locally: %w", err)
	}

	if s.adapter.Token() != "" {
		if err := s.adapter.AddPerson(ctx, person); err != nil {
			s.logger.Warn().Err(err).Int64("id", person.ID).Msg("cloud add person failed, will sync later")
		}
	}

	return nil
}

// RemovePerson implements [ClientFavouritesService].
func (s *clientFavouritesService) RemovePerson(ctx context.Context, id int64) (bool, error) {
	removed, err := s.localStore.Favourites.RemovePerson(ctx, id)
	if err != nil {
		return false, fmt.Errorf("remove person locally: %w", err)
	}

	if s.adapter.Token() != "" {
		if _, err = s.adapter.RemovePerson(ctx, id); err != nil {
			s.logger.Warn().Err(err).Int64("id", id).Msg("cloud remove person failed")
		}
	}

	return removed, nil
}
