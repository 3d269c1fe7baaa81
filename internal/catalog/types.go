// Package catalog is the aggregation core: it validates and normalizes
// upstream payloads from the metadata and ratings providers, reconciles the
// two sources by IMDb ID, and produces the canonical item shape consumed by
// the tool surface.
package catalog

import "strings"

// MediaKind discriminates movies from TV series. It is assigned at the
// point the kind is known, never inferred afterwards by probing fields.
type MediaKind string

const (
	MediaKindMovie MediaKind = "movie"
	MediaKindTV    MediaKind = "tv"
)

// String returns the TMDB path segment for the kind.
func (k MediaKind) String() string { return string(k) }

// OMDbType returns the OMDb "type" query value for the kind.
func (k MediaKind) OMDbType() string {
	if k == MediaKindTV {
		return "series"
	}
	return "movie"
}

// ParseMediaKind maps a user-facing kind string to a MediaKind. It accepts
// the common aliases and reports whether the input was recognized.
func ParseMediaKind(s string) (MediaKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film":
		return MediaKindMovie, true
	case "tv", "series", "show", "shows":
		return MediaKindTV, true
	}
	return "", false
}

// Item is the canonical movie or TV record after normalization and
// enrichment.
type Item struct {
	ID           int           `json:"id"`
	ImdbID       string        `json:"imdbId,omitempty"` // populated lazily by enrichment, may stay empty
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ReleaseDate  string        `json:"releaseDate,omitempty"` // raw provider date string, empty when absent
	Rating       float64       `json:"rating"`
	PosterURL    string        `json:"posterUrl,omitempty"`
	Language     string        `json:"language"`
	Kind         MediaKind     `json:"mediaKind"`
	Availability *Availability `json:"availability,omitempty"` // nil = lookup not attempted
}

// Availability is the per-region streaming availability of an item.
// Degraded marks a lookup that was attempted but failed; callers can
// distinguish that from "attempted, nothing offered" (empty Regions) and
// from "not attempted" (nil *Availability on the item).
type Availability struct {
	Regions  map[string]RegionOffers `json:"regions,omitempty"`
	Degraded bool                    `json:"degraded,omitempty"`
}

// RegionOffers lists provider names per offer type for one region.
type RegionOffers struct {
	Subscription []string `json:"subscription,omitempty"`
	Rent         []string `json:"rent,omitempty"`
	Buy          []string `json:"buy,omitempty"`
	Ads          []string `json:"ads,omitempty"`
	Free         []string `json:"free,omitempty"`
}

// RatingRecord is the normalized ratings-provider record. Every field is
// always present in the normalized form; absent upstream values become
// typed sentinels ("Unknown", "N/A", or the no-plot sentinel).
type RatingRecord struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Rating      string `json:"rating"` // numeric string or "N/A"
	Votes       string `json:"votes"`
	Metascore   string `json:"metascore"`
	ReleaseDate string `json:"releaseDate"`
	Genre       string `json:"genre"`
	Director    string `json:"director"`
	Writer      string `json:"writer"`
	Actors      string `json:"actors"`
	Plot        string `json:"plot"`
	PosterURL   string `json:"posterUrl"`
	Country     string `json:"country"`
	Language    string `json:"language"`
	Kind        string `json:"mediaKind"`
}

// RatingSummary is the minimal-latency rating lookup result.
type RatingSummary struct {
	Title  string `json:"title"`
	Rating string `json:"rating"`
	Votes  string `json:"votes"`
}

// Person is a person record from the metadata provider.
type Person struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Popularity float64 `json:"popularity"`
	Department string  `json:"department"`
	ProfileURL string  `json:"profileUrl,omitempty"`
	KnownFor   string  `json:"knownFor"` // known titles joined with ", "
}

// Collection is a collection record. Search results never populate Parts;
// only collection details do.
type Collection struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Overview    string `json:"overview"`
	PosterURL   string `json:"posterUrl,omitempty"`
	BackdropURL string `json:"backdropUrl,omitempty"`
	Parts       []Item `json:"parts,omitempty"`
}

// Genre is a single entry of the provider's genre lookup table.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
