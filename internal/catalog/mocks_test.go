package catalog

import (
	"context"
	"errors"

	"github.com/screenscout/screenscout/internal/catalog/omdb"
	"github.com/screenscout/screenscout/internal/catalog/tmdb"
)

// mockTMDB implements TMDBClient with per-method function hooks. Methods
// without a hook fail loudly so tests only exercise what they wire up.
type mockTMDB struct {
	configured bool

	searchMoviesFn      func(ctx context.Context, query string) (*tmdb.SearchMoviesResponse, error)
	searchTVFn          func(ctx context.Context, query string) (*tmdb.SearchTVResponse, error)
	movieDetailsFn      func(ctx context.Context, id int) (*tmdb.MovieDetails, error)
	tvDetailsFn         func(ctx context.Context, id int) (*tmdb.TVDetails, error)
	trendingFn          func(ctx context.Context, mediaType, window string) (*tmdb.ListResponse, error)
	popularFn           func(ctx context.Context, mediaType string) (*tmdb.ListResponse, error)
	genreListFn         func(ctx context.Context, mediaType string) (*tmdb.GenreListResponse, error)
	discoverByGenreFn   func(ctx context.Context, mediaType string, genreID int) (*tmdb.ListResponse, error)
	discoverByCastFn    func(ctx context.Context, personID int) (*tmdb.ListResponse, error)
	searchPeopleFn      func(ctx context.Context, query string) (*tmdb.SearchPersonResponse, error)
	searchCollectionsFn func(ctx context.Context, query string) (*tmdb.SearchCollectionResponse, error)
	collectionFn        func(ctx context.Context, id int) (*tmdb.CollectionDetails, error)
	watchProvidersFn    func(ctx context.Context, mediaType string, id int) (*tmdb.WatchProvidersResponse, error)
}

var errUnexpectedCall = errors.New("unexpected provider call")

func (m *mockTMDB) Name() string                   { return "tmdb" }
func (m *mockTMDB) IsConfigured() bool             { return m.configured }
func (m *mockTMDB) Test(ctx context.Context) error { return nil }

func (m *mockTMDB) SearchMovies(ctx context.Context, query string) (*tmdb.SearchMoviesResponse, error) {
	if m.searchMoviesFn == nil {
		return nil, errUnexpectedCall
	}
	return m.searchMoviesFn(ctx, query)
}

func (m *mockTMDB) SearchTV(ctx context.Context, query string) (*tmdb.SearchTVResponse, error) {
	if m.searchTVFn == nil {
		return nil, errUnexpectedCall
	}
	return m.searchTVFn(ctx, query)
}

func (m *mockTMDB) GetMovieDetails(ctx context.Context, id int) (*tmdb.MovieDetails, error) {
	if m.movieDetailsFn == nil {
		return nil, errUnexpectedCall
	}
	return m.movieDetailsFn(ctx, id)
}

func (m *mockTMDB) GetTVDetails(ctx context.Context, id int) (*tmdb.TVDetails, error) {
	if m.tvDetailsFn == nil {
		return nil, errUnexpectedCall
	}
	return m.tvDetailsFn(ctx, id)
}

func (m *mockTMDB) Trending(ctx context.Context, mediaType, window string) (*tmdb.ListResponse, error) {
	if m.trendingFn == nil {
		return nil, errUnexpectedCall
	}
	return m.trendingFn(ctx, mediaType, window)
}

func (m *mockTMDB) Popular(ctx context.Context, mediaType string) (*tmdb.ListResponse, error) {
	if m.popularFn == nil {
		return nil, errUnexpectedCall
	}
	return m.popularFn(ctx, mediaType)
}

func (m *mockTMDB) GenreList(ctx context.Context, mediaType string) (*tmdb.GenreListResponse, error) {
	if m.genreListFn == nil {
		return nil, errUnexpectedCall
	}
	return m.genreListFn(ctx, mediaType)
}

func (m *mockTMDB) DiscoverByGenre(ctx context.Context, mediaType string, genreID int) (*tmdb.ListResponse, error) {
	if m.discoverByGenreFn == nil {
		return nil, errUnexpectedCall
	}
	return m.discoverByGenreFn(ctx, mediaType, genreID)
}

func (m *mockTMDB) DiscoverByCast(ctx context.Context, personID int) (*tmdb.ListResponse, error) {
	if m.discoverByCastFn == nil {
		return nil, errUnexpectedCall
	}
	return m.discoverByCastFn(ctx, personID)
}

func (m *mockTMDB) SearchPeople(ctx context.Context, query string) (*tmdb.SearchPersonResponse, error) {
	if m.searchPeopleFn == nil {
		return nil, errUnexpectedCall
	}
	return m.searchPeopleFn(ctx, query)
}

func (m *mockTMDB) SearchCollections(ctx context.Context, query string) (*tmdb.SearchCollectionResponse, error) {
	if m.searchCollectionsFn == nil {
		return nil, errUnexpectedCall
	}
	return m.searchCollectionsFn(ctx, query)
}

func (m *mockTMDB) GetCollectionDetails(ctx context.Context, id int) (*tmdb.CollectionDetails, error) {
	if m.collectionFn == nil {
		return nil, errUnexpectedCall
	}
	return m.collectionFn(ctx, id)
}

func (m *mockTMDB) WatchProviders(ctx context.Context, mediaType string, id int) (*tmdb.WatchProvidersResponse, error) {
	if m.watchProvidersFn == nil {
		return nil, errUnexpectedCall
	}
	return m.watchProvidersFn(ctx, mediaType, id)
}

func (m *mockTMDB) GetImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return "https://img.test/" + size + path
}

// mockOMDB implements OMDBClient.
type mockOMDB struct {
	configured bool

	byIMDbIDFn func(ctx context.Context, imdbID string) (*omdb.Response, error)
	byTitleFn  func(ctx context.Context, title, mediaType string) (*omdb.Response, error)
}

func (m *mockOMDB) Name() string                   { return "omdb" }
func (m *mockOMDB) IsConfigured() bool             { return m.configured }
func (m *mockOMDB) Test(ctx context.Context) error { return nil }

func (m *mockOMDB) ByIMDbID(ctx context.Context, imdbID string) (*omdb.Response, error) {
	if m.byIMDbIDFn == nil {
		return nil, errUnexpectedCall
	}
	return m.byIMDbIDFn(ctx, imdbID)
}

func (m *mockOMDB) ByTitle(ctx context.Context, title, mediaType string) (*omdb.Response, error) {
	if m.byTitleFn == nil {
		return nil, errUnexpectedCall
	}
	return m.byTitleFn(ctx, title, mediaType)
}

// noProviders is a WatchProviders hook returning an empty region map.
func noProviders(ctx context.Context, mediaType string, id int) (*tmdb.WatchProvidersResponse, error) {
	return &tmdb.WatchProvidersResponse{ID: id, Results: map[string]tmdb.RegionOffers{}}, nil
}
