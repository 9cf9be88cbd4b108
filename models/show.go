package models

import "time"

// FavouriteShow is a TV show the user marked as a favourite.
type FavouriteShow struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	OriginalName     string            `json:"originalName,omitempty"`
	PosterPath       string            `json:"posterPath"`
	BackdropPath     string            `json:"backdropPath,omitempty"`
	Overview         string            `json:"overview,omitempty"`
	FirstAirDate     string            `json:"firstAirDate,omitempty"`
	LastAirDate      string            `json:"lastAirDate,omitempty"`
	EpisodeRuntime   []int             `json:"episodeRuntime,omitempty"`
	InProduction     bool              `json:"inProduction,omitempty"`
	NumberOfSeasons  int               `json:"numberOfSeasons,omitempty"`
	NumberOfEpisodes int               `json:"numberOfEpisodes,omitempty"`
	VoteAverage      float64           `json:"voteAverage,omitempty"`
	VoteCount        int               `json:"voteCount,omitempty"`
	Status           string            `json:"status,omitempty"`
	Tagline          string            `json:"tagline,omitempty"`
	Type             string            `json:"type,omitempty"`
	GenreIDs         []int64           `json:"genreIds,omitempty"`
	Seasons          []Season          `json:"seasons,omitempty"`
	Providers        *ProviderResponse `json:"providers,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// FavouriteID implements [Favourite].
func (s FavouriteShow) FavouriteID() int64 { return s.ID }

// Kind implements [Favourite].
func (s FavouriteShow) Kind() Kind { return KindShow }
