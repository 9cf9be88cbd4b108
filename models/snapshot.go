package models

// Favourite is implemented by every favourite item kind. The catalog ID is
// the only identity sync operations compare on; document payloads are never
// diffed field by field.
type Favourite interface {
	FavouriteID() int64
	Kind() Kind
}

// Snapshot is a point-in-time view of all three favourite collections from a
// single store (local or cloud). Sync status and merge calculations operate
// on two snapshots.
type Snapshot struct {
	Movies []FavouriteMovie  `json:"movies"`
	Shows  []FavouriteShow   `json:"shows"`
	People []FavouritePerson `json:"people"`
}

// Total returns the number of favourites across all three collections.
func (s Snapshot) Total() int {
	return len(s.Movies) + len(s.Shows) + len(s.People)
}
