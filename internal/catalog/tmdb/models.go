package tmdb

import "github.com/screenscout/screenscout/internal/schema"

// SearchMoviesResponse is the response from TMDB movie search.
type SearchMoviesResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// Validate checks the response against the declared shape.
func (r *SearchMoviesResponse) Validate() error {
	if r.Results == nil {
		return schema.Violation("results", "array")
	}
	for i := range r.Results {
		if r.Results[i].ID <= 0 {
			return schema.Violationf("positive integer", "results[%d].id", i)
		}
	}
	return nil
}

// MovieResult is a movie from TMDB search results.
type MovieResult struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
}

// SearchTVResponse is the response from TMDB TV search.
type SearchTVResponse struct {
	Page         int        `json:"page"`
	Results      []TVResult `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// Validate checks the response against the declared shape.
func (r *SearchTVResponse) Validate() error {
	if r.Results == nil {
		return schema.Violation("results", "array")
	}
	for i := range r.Results {
		if r.Results[i].ID <= 0 {
			return schema.Violationf("positive integer", "results[%d].id", i)
		}
	}
	return nil
}

// TVResult is a TV series from TMDB search results.
type TVResult struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	FirstAirDate     string   `json:"first_air_date"`
	PosterPath       *string  `json:"poster_path"`
	BackdropPath     *string  `json:"backdrop_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	OriginalLanguage string   `json:"original_language"`
	OriginCountry    []string `json:"origin_country"`
	GenreIDs         []int    `json:"genre_ids"`
}

// MovieDetails is the detailed movie info from TMDB. The IMDb ID is a
// direct field on the movie payload.
type MovieDetails struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       *string `json:"poster_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Runtime          int     `json:"runtime"`
	ImdbID           string  `json:"imdb_id"`
	OriginalLanguage string  `json:"original_language"`
	Genres           []Genre `json:"genres"`
}

// Validate checks the response against the declared shape.
func (d *MovieDetails) Validate() error {
	if d.ID <= 0 {
		return schema.Violation("id", "positive integer")
	}
	return nil
}

// TVDetails is the detailed TV series info from TMDB. Unlike movies, the
// IMDb ID lives under the external_ids sub-object, requested via
// append_to_response.
type TVDetails struct {
	ID               int          `json:"id"`
	Name             string       `json:"name"`
	Overview         string       `json:"overview"`
	FirstAirDate     string       `json:"first_air_date"`
	PosterPath       *string      `json:"poster_path"`
	VoteAverage      float64      `json:"vote_average"`
	VoteCount        int          `json:"vote_count"`
	OriginalLanguage string       `json:"original_language"`
	Genres           []Genre      `json:"genres"`
	ExternalIDs      *ExternalIDs `json:"external_ids"`
}

// Validate checks the response against the declared shape.
func (d *TVDetails) Validate() error {
	if d.ID <= 0 {
		return schema.Violation("id", "positive integer")
	}
	return nil
}

// ExternalIDs contains cross-provider identifiers from TMDB.
type ExternalIDs struct {
	ImdbID     string `json:"imdb_id"`
	TvdbID     int    `json:"tvdb_id"`
	WikidataID string `json:"wikidata_id"`
}

// ListResponse is the page shape shared by the trending, popular, and
// discover endpoints. Rows carry movie and TV field variants side by side;
// trending rows additionally carry a media_type discriminator that may be
// movie, tv, or person.
type ListResponse struct {
	Page         int        `json:"page"`
	Results      []TitleRow `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// Validate checks the response against the declared shape.
func (r *ListResponse) Validate() error {
	if r.Results == nil {
		return schema.Violation("results", "array")
	}
	for i := range r.Results {
		if r.Results[i].ID <= 0 {
			return schema.Violationf("positive integer", "results[%d].id", i)
		}
	}
	return nil
}

// TitleRow is a single trending/popular/discover row. Movie rows populate
// title/release_date, TV rows populate name/first_air_date.
type TitleRow struct {
	ID               int     `json:"id"`
	MediaType        string  `json:"media_type"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	PosterPath       *string `json:"poster_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
}

// GenreListResponse is the response from the genre list endpoint.
type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

// Validate checks the response against the declared shape.
func (r *GenreListResponse) Validate() error {
	if r.Genres == nil {
		return schema.Violation("genres", "array")
	}
	for i := range r.Genres {
		if r.Genres[i].ID <= 0 {
			return schema.Violationf("positive integer", "genres[%d].id", i)
		}
		if r.Genres[i].Name == "" {
			return schema.Violationf("non-empty string", "genres[%d].name", i)
		}
	}
	return nil
}

// Genre represents a genre from TMDB.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SearchPersonResponse is the response from TMDB person search.
type SearchPersonResponse struct {
	Page         int            `json:"page"`
	Results      []PersonResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Validate checks the response against the declared shape.
func (r *SearchPersonResponse) Validate() error {
	if r.Results == nil {
		return schema.Violation("results", "array")
	}
	for i := range r.Results {
		if r.Results[i].ID <= 0 {
			return schema.Violationf("positive integer", "results[%d].id", i)
		}
	}
	return nil
}

// PersonResult is a person from TMDB search results.
type PersonResult struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	Popularity         float64    `json:"popularity"`
	KnownForDepartment string     `json:"known_for_department"`
	ProfilePath        *string    `json:"profile_path"`
	KnownFor           []TitleRow `json:"known_for"`
}

// SearchCollectionResponse is the response from TMDB collection search.
// Search rows never include the collection's constituent parts; only the
// collection details endpoint does.
type SearchCollectionResponse struct {
	Page         int                `json:"page"`
	Results      []CollectionResult `json:"results"`
	TotalPages   int                `json:"total_pages"`
	TotalResults int                `json:"total_results"`
}

// Validate checks the response against the declared shape.
func (r *SearchCollectionResponse) Validate() error {
	if r.Results == nil {
		return schema.Violation("results", "array")
	}
	for i := range r.Results {
		if r.Results[i].ID <= 0 {
			return schema.Violationf("positive integer", "results[%d].id", i)
		}
	}
	return nil
}

// CollectionResult is a collection from TMDB search results.
type CollectionResult struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
}

// CollectionDetails is the detailed collection info including parts.
type CollectionDetails struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Overview     string     `json:"overview"`
	PosterPath   *string    `json:"poster_path"`
	BackdropPath *string    `json:"backdrop_path"`
	Parts        []TitleRow `json:"parts"`
}

// Validate checks the response against the declared shape.
func (d *CollectionDetails) Validate() error {
	if d.ID <= 0 {
		return schema.Violation("id", "positive integer")
	}
	if d.Name == "" {
		return schema.Violation("name", "non-empty string")
	}
	return nil
}

// WatchProvidersResponse is the response from the watch/providers endpoint,
// keyed by ISO 3166-1 region code.
type WatchProvidersResponse struct {
	ID      int                     `json:"id"`
	Results map[string]RegionOffers `json:"results"`
}

// RegionOffers lists per-region offers grouped by offer type.
type RegionOffers struct {
	Link     string          `json:"link"`
	Flatrate []ProviderOffer `json:"flatrate"`
	Rent     []ProviderOffer `json:"rent"`
	Buy      []ProviderOffer `json:"buy"`
	Ads      []ProviderOffer `json:"ads"`
	Free     []ProviderOffer `json:"free"`
}

// ProviderOffer is a single streaming offer.
type ProviderOffer struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

// ErrorResponse is an error from the TMDB API.
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
