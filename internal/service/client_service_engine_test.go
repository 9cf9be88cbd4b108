// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vpetrenko/reelsync/models"
)

func movie(id int64, title string) models.FavouriteMovie {
	return models.FavouriteMovie{ID: id, Title: title}
}

func show(id int64, name string) models.FavouriteShow {
	return models.FavouriteShow{ID: id, Name: name}
}

func person(id int64, name string) models.FavouritePerson {
	return models.FavouritePerson{ID: id, Name: name}
}

func movieIDs(movies []models.FavouriteMovie) []int64 {
	ids := make([]int64, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	return ids
}

// ── Status ──────────────────────────────────────────────────────────────────

func TestStatus_InSyncWhenBothSidesMatch(t *testing.T) {
	engine := NewSyncEngine()

	snapshot := models.Snapshot{
		Movies: []models.FavouriteMovie{movie(603, "The Matrix")},
		Shows:  []models.FavouriteShow{show(1399, "Game of Thrones")},
		People: []models.FavouritePerson{person(6384, "Keanu Reeves")},
	}

	status := engine.Status(snapshot, snapshot)

	assert.True(t, status.InSync)
	assert.Equal(t, 3, status.TotalLocal)
	assert.Equal(t, 3, status.TotalCloud)
	assert.Zero(t, status.MoviesToUpload)
	assert.Zero(t, status.MoviesToDownload)
}

func TestStatus_CountsDeltasPerKind(t *testing.T) {
	engine := NewSyncEngine()

	local := models.Snapshot{
		Movies: []models.FavouriteMovie{movie(603, "The Matrix"), movie(238, "The Godfather")},
		People: []models.FavouritePerson{person(6384, "Keanu Reeves")},
	}
	cloud := models.Snapshot{
		Movies: []models.FavouriteMovie{movie(603, "The Matrix")},
		Shows:  []models.FavouriteShow{show(1399, "Game of Thrones")},
	}

	status := engine.Status(local, cloud)

	assert.False(t, status.InSync)
	assert.Equal(t, 1, status.MoviesToUpload)   // 238
	assert.Equal(t, 0, status.MoviesToDownload) // 603 on both sides
	assert.Equal(t, 0, status.ShowsToUpload)
	assert.Equal(t, 1, status.ShowsToDownload) // 1399
	assert.Equal(t, 1, status.PeopleToUpload)  // 6384
	assert.Equal(t, 0, status.PeopleToDownload)
	assert.Equal(t, 3, status.TotalLocal)
	assert.Equal(t, 2, status.TotalCloud)
}

func TestStatus_EmptyBothSidesIsInSync(t *testing.T) {
	engine := NewSyncEngine()

	status := engine.Status(models.Snapshot{}, models.Snapshot{})

	assert.True(t, status.InSync)
	assert.Zero(t, status.TotalLocal)
	assert.Zero(t, status.TotalCloud)
}

func TestStatus_SameIDDifferentDocumentsStillInSync(t *testing.T) {
	engine := NewSyncEngine()

	local := models.Snapshot{Movies: []models.FavouriteMovie{movie(603, "The Matrix (local edit)")}}
	cloud := models.Snapshot{Movies: []models.FavouriteMovie{movie(603, "The Matrix")}}

	status := engine.Status(local, cloud)

	// membership is decided by catalog id only
	assert.True(t, status.InSync)
}

// ── Merge ───────────────────────────────────────────────────────────────────

func TestMerge_SplitsDeltasAndUnions(t *testing.T) {
	engine := NewSyncEngine()

	local := models.Snapshot{
		Movies: []models.FavouriteMovie{movie(603, "The Matrix"), movie(238, "The Godfather")},
	}
	cloud := models.Snapshot{
		Movies: []models.FavouriteMovie{movie(603, "The Matrix"), movie(680, "Pulp Fiction")},
	}

	merged := engine.Merge(local, cloud)

	assert.Equal(t, []int64{238}, movieIDs(merged.Movies.ToUpload))
	assert.Equal(t, []int64{680}, movieIDs(merged.Movies.ToDownload))
	assert.ElementsMatch(t, []int64{603, 238, 680}, movieIDs(merged.Movies.All))
	assert.Empty(t, merged.Shows.All)
	assert.Empty(t, merged.People.All)
}

func TestMerge_LocalCopyWinsOnCollision(t *testing.T) {
	engine := NewSyncEngine()

	local := models.Snapshot{Movies: []models.FavouriteMovie{movie(603, "The Matrix (local edit)")}}
	cloud := models.Snapshot{Movies: []models.FavouriteMovie{movie(603, "The Matrix")}}

	merged := engine.Merge(local, cloud)

	require.Len(t, merged.Movies.All, 1)
	assert.Equal(t, "The Matrix (local edit)", merged.Movies.All[0].Title)
	assert.Empty(t, merged.Movies.ToUpload)
	assert.Empty(t, merged.Movies.ToDownload)
}

func TestMerge_EmptyLocalDownloadsEverything(t *testing.T) {
	engine := NewSyncEngine()

	cloud := models.Snapshot{
		Movies: []models.FavouriteMovie{movie(603, "The Matrix")},
		Shows:  []models.FavouriteShow{show(1399, "Game of Thrones")},
		People: []models.FavouritePerson{person(6384, "Keanu Reeves")},
	}

	merged := engine.Merge(models.Snapshot{}, cloud)

	assert.Len(t, merged.Movies.ToDownload, 1)
	assert.Len(t, merged.Shows.ToDownload, 1)
	assert.Len(t, merged.People.ToDownload, 1)
	assert.Empty(t, merged.Movies.ToUpload)
	assert.Len(t, merged.Movies.All, 1)
}

func TestMerge_EmptyCloudUploadsEverything(t *testing.T) {
	engine := NewSyncEngine()

	local := models.Snapshot{
		Movies: []models.FavouriteMovie{movie(603, "The Matrix")},
		Shows:  []models.FavouriteShow{show(1399, "Game of Thrones")},
	}

	merged := engine.Merge(local, models.Snapshot{})

	assert.Len(t, merged.Movies.ToUpload, 1)
	assert.Len(t, merged.Shows.ToUpload, 1)
	assert.Empty(t, merged.Movies.ToDownload)
}

func TestUnion_PreservesLocalFirstOrder(t *testing.T) {
	local := []models.FavouriteMovie{movie(1, "a"), movie(2, "b")}
	cloud := []models.FavouriteMovie{movie(2, "b-cloud"), movie(3, "c")}

	merged := union(local, cloud)

	assert.Equal(t, []int64{1, 2, 3}, movieIDs(merged))
	assert.Equal(t, "b", merged[1].Title)
}
