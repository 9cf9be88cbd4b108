package models

import "time"

// FavouritePerson is an actor or crew member the user marked as a favourite.
type FavouritePerson struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	Adult              bool         `json:"adult,omitempty"`
	AlsoKnownAs        []string     `json:"alsoKnownAs,omitempty"`
	ProfilePath        string       `json:"profilePath"`
	Biography          string       `json:"biography,omitempty"`
	Birthday           string       `json:"birthday,omitempty"`
	Deathday           string       `json:"deathday,omitempty"`
	Gender             string       `json:"gender,omitempty"`
	IMDbID             string       `json:"imdbId,omitempty"`
	PlaceOfBirth       string       `json:"placeOfBirth,omitempty"`
	KnownForDepartment string       `json:"knownForDepartment,omitempty"`
	Popularity         float64      `json:"popularity,omitempty"`
	MovieCredits       []CastCredit `json:"movieCredits,omitempty"`
	ShowCredits        []CastCredit `json:"showCredits,omitempty"`
	CreatedAt          time.Time    `json:"createdAt"`
}

// FavouriteID implements [Favourite].
func (p FavouritePerson) FavouriteID() int64 { return p.ID }

// Kind implements [Favourite].
func (p FavouritePerson) Kind() Kind { return KindPerson }
