package catalog

import (
	"strings"

	"github.com/screenscout/screenscout/internal/catalog/omdb"
	"github.com/screenscout/screenscout/internal/catalog/tmdb"
)

// Defaults is the substitution policy applied to nullable or missing
// upstream fields. It is explicit configuration, not inlined per call
// site, so tests can assert and override it.
type Defaults struct {
	Description string // missing overview
	Title       string // missing title and name
	Language    string // missing original_language
	Plot        string // missing ratings-provider plot
	Unknown     string // missing free-text ratings-provider fields
	NotAvail    string // missing numeric ratings-provider fields
}

// DefaultPolicy returns the standard substitution policy.
func DefaultPolicy() Defaults {
	return Defaults{
		Description: "No description available.",
		Title:       "Unknown",
		Language:    "Unknown",
		Plot:        "No plot available.",
		Unknown:     "Unknown",
		NotAvail:    "N/A",
	}
}

// PosterSize is the image CDN size used for canonical poster URLs.
const PosterSize = "w500"

// Normalizer maps validated raw provider payloads into canonical records.
// It is pure: no network, no side effects, and it never fails, since
// absence is always handled by the defaults policy. Callers are responsible for having
// validated the input shape already.
type Normalizer struct {
	defaults Defaults
	imageURL func(path, size string) string
}

// NewNormalizer creates a normalizer with the given substitution policy.
// imageURL builds an absolute CDN URL from a provider-relative path and
// must return "" for an empty path.
func NewNormalizer(defaults Defaults, imageURL func(path, size string) string) *Normalizer {
	return &Normalizer{defaults: defaults, imageURL: imageURL}
}

// Movie normalizes a movie search result.
func (n *Normalizer) Movie(m tmdb.MovieResult) Item {
	return Item{
		ID:          m.ID,
		Title:       n.orDefault(m.Title, n.defaults.Title),
		Description: n.orDefault(m.Overview, n.defaults.Description),
		ReleaseDate: m.ReleaseDate,
		Rating:      m.VoteAverage,
		PosterURL:   n.poster(m.PosterPath),
		Language:    n.orDefault(m.OriginalLanguage, n.defaults.Language),
		Kind:        MediaKindMovie,
	}
}

// TV normalizes a TV search result.
func (n *Normalizer) TV(t tmdb.TVResult) Item {
	return Item{
		ID:          t.ID,
		Title:       n.orDefault(t.Name, n.defaults.Title),
		Description: n.orDefault(t.Overview, n.defaults.Description),
		ReleaseDate: t.FirstAirDate,
		Rating:      t.VoteAverage,
		PosterURL:   n.poster(t.PosterPath),
		Language:    n.orDefault(t.OriginalLanguage, n.defaults.Language),
		Kind:        MediaKindTV,
	}
}

// Row normalizes a trending/popular/discover row. The row's media_type tag
// wins when present; fallback supplies the kind for endpoints that do not
// tag rows. Person rows and unrecognized tags are skipped, reported by the
// second return value.
func (n *Normalizer) Row(r tmdb.TitleRow, fallback MediaKind) (Item, bool) {
	kind := fallback
	switch r.MediaType {
	case "movie":
		kind = MediaKindMovie
	case "tv":
		kind = MediaKindTV
	case "":
		// untagged row, trust the fallback
	default:
		return Item{}, false
	}

	// Movie field first, then the TV variant, then the default.
	title := r.Title
	if title == "" {
		title = r.Name
	}
	release := r.ReleaseDate
	if release == "" {
		release = r.FirstAirDate
	}

	return Item{
		ID:          r.ID,
		Title:       n.orDefault(title, n.defaults.Title),
		Description: n.orDefault(r.Overview, n.defaults.Description),
		ReleaseDate: release,
		Rating:      r.VoteAverage,
		PosterURL:   n.poster(r.PosterPath),
		Language:    n.orDefault(r.OriginalLanguage, n.defaults.Language),
		Kind:        kind,
	}, true
}

// Rows normalizes a row list, preserving input order and dropping rows
// Row rejects.
func (n *Normalizer) Rows(rows []tmdb.TitleRow, fallback MediaKind) []Item {
	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		if item, ok := n.Row(r, fallback); ok {
			items = append(items, item)
		}
	}
	return items
}

// Person normalizes a person search result. Known-for titles are flattened
// into a comma-joined string.
func (n *Normalizer) Person(p tmdb.PersonResult) Person {
	known := make([]string, 0, len(p.KnownFor))
	for _, r := range p.KnownFor {
		title := r.Title
		if title == "" {
			title = r.Name
		}
		if title != "" {
			known = append(known, title)
		}
	}

	return Person{
		ID:         p.ID,
		Name:       p.Name,
		Popularity: p.Popularity,
		Department: n.orDefault(p.KnownForDepartment, n.defaults.Unknown),
		ProfileURL: n.poster(p.ProfilePath),
		KnownFor:   strings.Join(known, ", "),
	}
}

// Collection normalizes a collection search result. Parts stay empty;
// search rows never carry them.
func (n *Normalizer) Collection(c tmdb.CollectionResult) Collection {
	return Collection{
		ID:          c.ID,
		Name:        c.Name,
		Overview:    n.orDefault(c.Overview, n.defaults.Description),
		PosterURL:   n.poster(c.PosterPath),
		BackdropURL: n.poster(c.BackdropPath),
	}
}

// CollectionDetails normalizes a full collection including its parts.
func (n *Normalizer) CollectionDetails(d *tmdb.CollectionDetails) *Collection {
	return &Collection{
		ID:          d.ID,
		Name:        d.Name,
		Overview:    n.orDefault(d.Overview, n.defaults.Description),
		PosterURL:   n.poster(d.PosterPath),
		BackdropURL: n.poster(d.BackdropPath),
		Parts:       n.Rows(d.Parts, MediaKindMovie),
	}
}

// Availability normalizes a watch-providers payload into region-keyed
// provider name lists.
func (n *Normalizer) Availability(w *tmdb.WatchProvidersResponse) *Availability {
	av := &Availability{Regions: make(map[string]RegionOffers, len(w.Results))}
	for region, offers := range w.Results {
		av.Regions[region] = RegionOffers{
			Subscription: offerNames(offers.Flatrate),
			Rent:         offerNames(offers.Rent),
			Buy:          offerNames(offers.Buy),
			Ads:          offerNames(offers.Ads),
			Free:         offerNames(offers.Free),
		}
	}
	return av
}

// RatingRecord normalizes a ratings-provider response. Every output field
// is non-empty: absent values become the policy sentinels.
func (n *Normalizer) RatingRecord(resp *omdb.Response) RatingRecord {
	return RatingRecord{
		Title:       n.sentinel(resp.Title, n.defaults.Unknown),
		Year:        n.sentinel(resp.Year, n.defaults.Unknown),
		Rating:      n.sentinel(resp.ImdbRating, n.defaults.NotAvail),
		Votes:       n.sentinel(resp.ImdbVotes, n.defaults.NotAvail),
		Metascore:   n.sentinel(resp.Metascore, n.defaults.NotAvail),
		ReleaseDate: n.sentinel(resp.Released, n.defaults.Unknown),
		Genre:       n.sentinel(resp.Genre, n.defaults.Unknown),
		Director:    n.sentinel(resp.Director, n.defaults.Unknown),
		Writer:      n.sentinel(resp.Writer, n.defaults.Unknown),
		Actors:      n.sentinel(resp.Actors, n.defaults.Unknown),
		Plot:        n.sentinel(resp.Plot, n.defaults.Plot),
		PosterURL:   n.sentinel(resp.Poster, n.defaults.NotAvail),
		Country:     n.sentinel(resp.Country, n.defaults.Unknown),
		Language:    n.sentinel(resp.Language, n.defaults.Unknown),
		Kind:        n.sentinel(resp.Type, n.defaults.Unknown),
	}
}

// Genres converts the raw genre table.
func (n *Normalizer) Genres(list *tmdb.GenreListResponse) []Genre {
	genres := make([]Genre, len(list.Genres))
	for i, g := range list.Genres {
		genres[i] = Genre{ID: g.ID, Name: g.Name}
	}
	return genres
}

func (n *Normalizer) poster(path *string) string {
	if path == nil {
		return ""
	}
	return n.imageURL(*path, PosterSize)
}

func (n *Normalizer) orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// sentinel substitutes def for empty strings and for the provider's own
// "N/A" marker, so the sentinel used is always ours.
func (n *Normalizer) sentinel(v, def string) string {
	if v == "" || v == "N/A" {
		return def
	}
	return v
}

func offerNames(offers []tmdb.ProviderOffer) []string {
	if len(offers) == 0 {
		return nil
	}
	names := make([]string, len(offers))
	for i, o := range offers {
		names[i] = o.ProviderName
	}
	return names
}
