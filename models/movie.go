package models

import "time"

// FavouriteMovie is a movie the user marked as a favourite. The ID is the
// upstream catalog identifier and is the only key both stores agree on.
type FavouriteMovie struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	OriginalTitle    string            `json:"originalTitle,omitempty"`
	PosterPath       string            `json:"posterPath"`
	BackdropPath     string            `json:"backdropPath,omitempty"`
	Overview         string            `json:"overview,omitempty"`
	ReleaseDate      string            `json:"releaseDate,omitempty"`
	Runtime          int               `json:"runtime,omitempty"`
	Video            bool              `json:"video,omitempty"`
	Adult            bool              `json:"adult,omitempty"`
	Popularity       float64           `json:"popularity,omitempty"`
	VoteAverage      float64           `json:"voteAverage,omitempty"`
	VoteCount        int               `json:"voteCount,omitempty"`
	GenreIDs         []int64           `json:"genreIds,omitempty"`
	Providers        *ProviderResponse `json:"providers,omitempty"`
	OriginalLanguage string            `json:"originalLanguage,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// FavouriteID implements [Favourite].
func (m FavouriteMovie) FavouriteID() int64 { return m.ID }

// Kind implements [Favourite].
func (m FavouriteMovie) Kind() Kind { return KindMovie }
