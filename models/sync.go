package models

// SyncStatus summarises how the local and cloud favourite collections relate
// at a single point in time. Counts are derived purely from ID membership:
// an item "to upload" exists locally but not in the cloud, an item
// "to download" exists in the cloud but not locally.
type SyncStatus struct {
	LocalMovies int `json:"localMovies"`
	LocalShows  int `json:"localShows"`
	LocalPeople int `json:"localPeople"`

	CloudMovies int `json:"cloudMovies"`
	CloudShows  int `json:"cloudShows"`
	CloudPeople int `json:"cloudPeople"`

	MoviesToUpload int `json:"moviesToUpload"`
	ShowsToUpload  int `json:"showsToUpload"`
	PeopleToUpload int `json:"peopleToUpload"`

	MoviesToDownload int `json:"moviesToDownload"`
	ShowsToDownload  int `json:"showsToDownload"`
	PeopleToDownload int `json:"peopleToDownload"`

	TotalLocal int `json:"totalLocal"`
	TotalCloud int `json:"totalCloud"`

	// InSync is true only when every one of the six per-kind delta counts
	// is zero. Equal totals alone do not imply a synchronised state.
	InSync bool `json:"inSync"`
}

// MergeDelta holds the per-kind transfer plan produced by a merge
// calculation: what must move in each direction plus the merged collection.
type MergeDelta[T Favourite] struct {
	ToUpload   []T `json:"toUpload"`
	ToDownload []T `json:"toDownload"`

	// All is the union of both stores. When both sides hold the same ID the
	// local copy wins, so All preserves local document payloads on conflict.
	All []T `json:"all"`
}

// MergeData is the complete bidirectional merge plan for all three
// collections. It is a pure calculation result; applying it is the
// orchestrator's job.
type MergeData struct {
	Movies MergeDelta[FavouriteMovie]  `json:"movies"`
	Shows  MergeDelta[FavouriteShow]   `json:"shows"`
	People MergeDelta[FavouritePerson] `json:"people"`
}
