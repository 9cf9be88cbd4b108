package models

// Kind identifies one of the three favourite collections. It is used as a
// table discriminator locally and as a path segment on the cloud API.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindShow   Kind = "show"
	KindPerson Kind = "person"
)

// Kinds lists every collection in the fixed order sync operations walk them:
// movies, then shows, then people.
var Kinds = []Kind{KindMovie, KindShow, KindPerson}

// Valid reports whether k names a known collection.
func (k Kind) Valid() bool {
	switch k {
	case KindMovie, KindShow, KindPerson:
		return true
	}
	return false
}

// ProviderInfo describes a single watch provider entry inside a
// [ProviderResponse] bucket.
type ProviderInfo struct {
	LogoPath        string `json:"logoPath"`
	ProviderID      int64  `json:"providerId"`
	ProviderName    string `json:"providerName"`
	DisplayPriority int    `json:"displayPriority"`
}

// ProviderResponse is the optional watch-availability payload attached to a
// favourite movie or show. Buckets that the upstream catalog did not supply
// are left nil and omitted from serialized documents.
type ProviderResponse struct {
	Link     string         `json:"link"`
	Buy      []ProviderInfo `json:"buy,omitempty"`
	Rent     []ProviderInfo `json:"rent,omitempty"`
	Flatrate []ProviderInfo `json:"flatrate,omitempty"`
	Free     []ProviderInfo `json:"free,omitempty"`
	Ads      []ProviderInfo `json:"ads,omitempty"`
}

// Season is one season entry of a favourite show.
type Season struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	AirDate      string  `json:"airDate"`
	EpisodeCount int     `json:"episodeCount"`
	PosterPath   string  `json:"posterPath"`
	SeasonNumber int     `json:"seasonNumber"`
	VoteAverage  float64 `json:"voteAverage"`
}

// CastCredit is a single acting credit of a favourite person, pointing at a
// movie or a show in the upstream catalog.
type CastCredit struct {
	ID            int64   `json:"id"`
	CreditID      string  `json:"creditId,omitempty"`
	Character     string  `json:"character,omitempty"`
	Title         string  `json:"title,omitempty"`
	OriginalTitle string  `json:"originalTitle,omitempty"`
	ReleaseDate   string  `json:"releaseDate,omitempty"`
	FirstAirDate  string  `json:"firstAirDate,omitempty"`
	EpisodeCount  int     `json:"episodeCount,omitempty"`
	PosterPath    string  `json:"posterPath"`
	Popularity    float64 `json:"popularity,omitempty"`
	Order         int     `json:"order,omitempty"`
}
