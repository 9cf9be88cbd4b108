// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package service

import "github.com/vpetrenko/reelsync/models"

type syncEngine struct{}

// NewSyncEngine returns the stateless favourite-set comparison engine used by
// the sync orchestrator.
func NewSyncEngine() SyncEngine {
	return &syncEngine{}
}

// Status implements [SyncEngine]. Membership is decided purely by catalog id:
// two copies of the same id never count as a difference, however much their
// documents diverge.
func (e *syncEngine) Status(local, cloud models.Snapshot) models.SyncStatus {
	moviesUp, moviesDown := diff(local.Movies, cloud.Movies)
	showsUp, showsDown := diff(local.Shows, cloud.Shows)
	peopleUp, peopleDown := diff(local.People, cloud.People)

	status := models.SyncStatus{
		LocalMovies: len(local.Movies),
		LocalShows:  len(local.Shows),
		LocalPeople: len(local.People),

		CloudMovies: len(cloud.Movies),
		CloudShows:  len(cloud.Shows),
		CloudPeople: len(cloud.People),

		MoviesToUpload: len(moviesUp),
		ShowsToUpload:  len(showsUp),
		PeopleToUpload: len(peopleUp),

		MoviesToDownload: len(moviesDown),
		ShowsToDownload:  len(showsDown),
		PeopleToDownload: len(peopleDown),

		TotalLocal: local.Total(),
		TotalCloud: cloud.Total(),
	}
	status.InSync = status.MoviesToUpload == 0 && status.ShowsToUpload == 0 && status.PeopleToUpload == 0 &&
		status.MoviesToDownload == 0 && status.ShowsToDownload == 0 && status.PeopleToDownload == 0

	return status
}

// Merge implements [SyncEngine].
func (e *syncEngine) Merge(local, cloud models.Snapshot) models.MergeData {
	return models.MergeData{
		Movies: mergeDelta(local.Movies, cloud.Movies),
		Shows:  mergeDelta(local.Shows, cloud.Shows),
		People: mergeDelta(local.People, cloud.People),
	}
}

func mergeDelta[T models.Favourite](local, cloud []T) models.MergeDelta[T] {
	toUpload, toDownload := diff(local, cloud)
	return models.MergeDelta[T]{
		ToUpload:   toUpload,
		ToDownload: toDownload,
		All:        union(local, cloud),
	}
}

// diff returns the items present only locally (toUpload) and the items
// present only in the cloud (toDownload), preserving input order.
func diff[T models.Favourite](local, cloud []T) (toUpload, toDownload []T) {
	cloudIDs := idSet(cloud)
	localIDs := idSet(local)

	for _, item := range local {
		if _, ok := cloudIDs[item.FavouriteID()]; !ok {
			toUpload = append(toUpload, item)
		}
	}
	for _, item := range cloud {
		if _, ok := localIDs[item.FavouriteID()]; !ok {
			toDownload = append(toDownload, item)
		}
	}

	return toUpload, toDownload
}

// union merges both collections into one. Local items come first and win any
// id collision, so locally edited copies survive a merge untouched.
func union[T models.Favourite](local, cloud []T) []T {
	merged := make([]T, 0, len(local)+len(cloud))
	seen := make(map[int64]struct{}, len(local))

	for _, item := range local {
		if _, ok := seen[item.FavouriteID()]; ok {
			continue
		}
		seen[item.FavouriteID()] = struct{}{}
		merged = append(merged, item)
	}
	for _, item := range cloud {
		if _, ok := seen[item.FavouriteID()]; ok {
			continue
		}
		seen[item.FavouriteID()] = struct{}{}
		merged = append(merged, item)
	}

	return merged
}

func idSet[T models.Favourite](items []T) map[int64]struct{} {
	ids := make(map[int64]struct{}, len(items))
	for _, item := range items {
		ids[item.FavouriteID()] = struct{}{}
	}
	return ids
}
