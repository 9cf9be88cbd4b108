package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vpetrenko/reelsync/internal/adapter"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/store"
	"github.com/vpetrenko/reelsync/models"
)

// lastSyncKey is the settings key holding the RFC 3339 timestamp of the last
// completed bidirectional sync.
const lastSyncKey = "last-sync-date"

type clientSyncService struct {
	localStore *store.ClientStorages
	adapter    adapter.CloudAdapter
	engine     SyncEngine
	logger     *logger.Logger

	// syncMu serialises sync runs; TryLock failure means one is in flight.
	syncMu sync.Mutex
}

// NewClientSyncService constructs the sync orchestrator over the local
// favourites database and the cloud adapter.
func NewClientSyncService(localStore *store.ClientStorages, cloudAdapter adapter.CloudAdapter, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		localStore: localStore,
		adapter:    cloudAdapter,
		engine:     NewSyncEngine(),
		logger:     logger,
	}
}

// SyncStatus implements [ClientSyncService]. Both snapshots must be fetched
// successfully: a partial comparison would misreport deltas, so any fetch
// failure fails the whole call.
func (s *clientSyncService) SyncStatus(ctx context.Context) (models.SyncStatus, error) {
	if s.adapter.Token() == "" {
		return models.SyncStatus{}, ErrNotAuthenticated
	}

	local, err := s.fetchLocal(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("fetch local snapshot: %w", err)
	}

	cloud, err := s.fetchCloud(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("fetch cloud snapshot: %w", err)
	}

	return s.engine.Status(local, cloud), nil
}

// UploadAll implements [ClientSyncService]. A successful run counts as a
// sync point, so the last-sync date is stamped just like after a
// bidirectional run.
func (s *clientSyncService) UploadAll(ctx context.Context) error {
	if !s.syncMu.TryLock() {
		return ErrSyncInProgress
	}
	defer s.syncMu.Unlock()

	if s.adapter.Token() == "" {
		return ErrNotAuthenticated
	}

	local, err := s.fetchLocal(ctx)
	if err != nil {
		return fmt.Errorf("fetch local snapshot: %w", err)
	}

	if err = s.uploadMovies(ctx, local.Movies); err != nil {
		return err
	}
	if err = s.uploadShows(ctx, local.Shows); err != nil {
		return err
	}
	if err = s.uploadPeople(ctx, local.People); err != nil {
		return err
	}

	if err = s.localStore.Settings.Put(ctx, lastSyncKey, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("stamp last sync date: %w", err)
	}

	s.logger.Info().Int("total", local.Total()).Msg("uploaded local favourites to cloud")
	return nil
}

// BidirectionalSync implements [ClientSyncService]. All uploads run before
// any download, each phase covering movies, then shows, then people. A
// failure midway leaves the completed kinds in place: every cloud add is an
// idempotent upsert and every local add skips duplicates, so re-running the
// sync finishes the merge without damage.
func (s *clientSyncService) BidirectionalSync(ctx context.Context) (models.MergeData, error) {
	if !s.syncMu.TryLock() {
		return models.MergeData{}, ErrSyncInProgress
	}
	defer s.syncMu.Unlock()

	if s.adapter.Token() == "" {
		return models.MergeData{}, ErrNotAuthenticated
	}

	local, err := s.fetchLocal(ctx)
	if err != nil {
		return models.MergeData{}, fmt.Errorf("fetch local snapshot: %w", err)
	}

	cloud, err := s.fetchCloud(ctx)
	if err != nil {
		return models.MergeData{}, fmt.Errorf("fetch cloud snapshot: %w", err)
	}

	merged := s.engine.Merge(local, cloud)

	if err = s.uploadMovies(ctx, merged.Movies.ToUpload); err != nil {
		return models.MergeData{}, err
	}
	if err = s.uploadShows(ctx, merged.Shows.ToUpload); err != nil {
		return models.MergeData{}, err
	}
	if err = s.uploadPeople(ctx, merged.People.ToUpload); err != nil {
		return models.MergeData{}, err
	}

	if err = s.downloadMovies(ctx, merged.Movies.ToDownload); err != nil {
		return models.MergeData{}, err
	}
	if err = s.downloadShows(ctx, merged.Shows.ToDownload); err != nil {
		return models.MergeData{}, err
	}
	if err = s.downloadPeople(ctx, merged.People.ToDownload); err != nil {
		return models.MergeData{}, err
	}

	if err = s.localStore.Settings.Put(ctx, lastSyncKey, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return models.MergeData{}, fmt.Errorf("stamp last sync date: %w", err)
	}

	// Both stores now hold the merged union, so the recomputed status over it
	// should report a synchronised state. Logged as the final health check of
	// the run.
	union := models.Snapshot{Movies: merged.Movies.All, Shows: merged.Shows.All, People: merged.People.All}
	status := s.engine.Status(union, union)

	s.logger.Info().
		Int("uploaded", len(merged.Movies.ToUpload)+len(merged.Shows.ToUpload)+len(merged.People.ToUpload)).
		Int("downloaded", len(merged.Movies.ToDownload)+len(merged.Shows.ToDownload)+len(merged.People.ToDownload)).
		Int("total", status.TotalLocal).
		Bool("in_sync", status.InSync).
		Msg("bidirectional sync completed")

	return merged, nil
}

// LastSync implements [ClientSyncService].
func (s *clientSyncService) LastSync(ctx context.Context) (time.Time, error) {
	value, err := s.localStore.Settings.Get(ctx, lastSyncKey)
	if errors.Is(err, store.ErrSettingNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read last sync date: %w", err)
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last sync date %q: %w", value, err)
	}

	return t, nil
}

// Wipe implements [ClientSyncService].
func (s *clientSyncService) Wipe(ctx context.Context) error {
	if err := s.localStore.Favourites.WipeAll(ctx); err != nil {
		return fmt.Errorf("wipe local favourites: %w", err)
	}
	if err := s.localStore.Settings.Delete(ctx, lastSyncKey); err != nil {
		return fmt.Errorf("clear last sync date: %w", err)
	}

	s.logger.Info().Msg("local favourites wiped")
	return nil
}

func (s *clientSyncService) fetchLocal(ctx context.Context) (models.Snapshot, error) {
	movies, err := s.localStore.Favourites.ListMovies(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	shows, err := s.localStore.Favourites.ListShows(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	people, err := s.localStore.Favourites.ListPeople(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}

	return models.Snapshot{Movies: movies, Shows: shows, People: people}, nil
}

func (s *clientSyncService) fetchCloud(ctx context.Context) (models.Snapshot, error) {
	movies, err := s.adapter.ListMovies(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	shows, err := s.adapter.ListShows(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}
	people, err := s.adapter.ListPeople(ctx)
	if err != nil {
		return models.Snapshot{}, err
	}

	return models.Snapshot{Movies: movies, Shows: shows, People: people}, nil
}

func (s *clientSyncService) uploadMovies(ctx context.Context, movies []models.FavouriteMovie) error {
	for _, m := range movies {
		if err := s.adapter.AddMovie(ctx, m); err != nil {
			return fmt.Errorf("upload movie %d: %w", m.ID, err)
		}
	}
	return nil
}

func (s *clientSyncService) uploadShows(ctx context.Context, shows []models.FavouriteShow) error {
	for _, sh := range shows {
		if err := s.adapter.AddShow(ctx, sh); err != nil {
			return fmt.Errorf("upload show %d: %w", sh.ID, err)
		}
	}
	return nil
}

func (s *clientSyncService) uploadPeople(ctx context.Context, people []models.FavouritePerson) error {
	for _, p := range people {
		if err := s.adapter.AddPerson(ctx, p); err != nil {
			return fmt.Errorf("upload person %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *clientSyncService) downloadMovies(ctx context.Context, movies []models.FavouriteMovie) error {
	for _, m := range movies {
		err := s.localStore.Favourites.AddMovie(ctx, m)
		if err != nil && !errors.Is(err, store.ErrDuplicateFavourite) {
			return fmt.Errorf("save downloaded movie %d: %w", m.ID, err)
		}
	}
	return nil
}

func (s *clientSyncService) downloadShows(ctx context.Context, shows []models.FavouriteShow) error {
	for _, sh := range shows {
		err := s.localStore.Favourites.AddShow(ctx, sh)
		if err != nil && !errors.Is(err, store.ErrDuplicateFavourite) {
			return fmt.Errorf("save downloaded show %d: %w", sh.ID, err)
		}
	}
	return nil
}

func (s *clientSyncService) downloadPeople(ctx context.Context, people []models.FavouritePerson) error {
	for _, p := range people {
		err := s.localStore.Favourites.AddPerson(ctx, p)
		if err != nil && !errors.Is(err, store.ErrDuplicateFavourite) {
			return fmt.Errorf("save downloaded person %d: %w", p.ID, err)
		}
	}
	return nil
}
