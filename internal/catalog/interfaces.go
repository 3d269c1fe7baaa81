package catalog

import (
	"context"

	"github.com/screenscout/screenscout/internal/catalog/omdb"
	"github.com/screenscout/screenscout/internal/catalog/tmdb"
)

// TMDBClient defines the interface for TMDB API operations.
type TMDBClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
	SearchMovies(ctx context.Context, query string) (*tmdb.SearchMoviesResponse, error)
	SearchTV(ctx context.Context, query string) (*tmdb.SearchTVResponse, error)
	GetMovieDetails(ctx context.Context, id int) (*tmdb.MovieDetails, error)
	GetTVDetails(ctx context.Context, id int) (*tmdb.TVDetails, error)
	Trending(ctx context.Context, mediaType, window string) (*tmdb.ListResponse, error)
	Popular(ctx context.Context, mediaType string) (*tmdb.ListResponse, error)
	GenreList(ctx context.Context, mediaType string) (*tmdb.GenreListResponse, error)
	DiscoverByGenre(ctx context.Context, mediaType string, genreID int) (*tmdb.ListResponse, error)
	DiscoverByCast(ctx context.Context, personID int) (*tmdb.ListResponse, error)
	SearchPeople(ctx context.Context, query string) (*tmdb.SearchPersonResponse, error)
	SearchCollections(ctx context.Context, query string) (*tmdb.SearchCollectionResponse, error)
	GetCollectionDetails(ctx context.Context, id int) (*tmdb.CollectionDetails, error)
	WatchProviders(ctx context.Context, mediaType string, id int) (*tmdb.WatchProvidersResponse, error)
	GetImageURL(path, size string) string
}

// OMDBClient defines the interface for OMDb API operations.
type OMDBClient interface {
	Name() string
	IsConfigured() bool
	Test(ctx context.Context) error
	ByIMDbID(ctx context.Context, imdbID string) (*omdb.Response, error)
	ByTitle(ctx context.Context, title, mediaType string) (*omdb.Response, error)
}
