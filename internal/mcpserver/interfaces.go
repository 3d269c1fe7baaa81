package mcpserver

import (
	"context"

	"github.com/screenscout/screenscout/internal/catalog"
)

// CatalogService defines the catalog operations the tool surface needs.
type CatalogService interface {
	SearchMovies(ctx context.Context, query string) ([]catalog.Item, error)
	SearchSeries(ctx context.Context, query string) ([]catalog.Item, error)
	Trending(ctx context.Context, mediaType, window string) ([]catalog.Item, error)
	Popular(ctx context.Context, kind catalog.MediaKind) ([]catalog.Item, error)
	DiscoverByGenre(ctx context.Context, kind catalog.MediaKind, genreName string) ([]catalog.Item, bool, error)
	DiscoverByActor(ctx context.Context, actorName string) ([]catalog.Item, string, error)
	SearchPeople(ctx context.Context, query string) ([]catalog.Person, error)
	SearchCollections(ctx context.Context, query string) ([]catalog.Collection, error)
	CollectionDetails(ctx context.Context, id int) (*catalog.Collection, error)
	Genres(ctx context.Context, kind catalog.MediaKind) ([]catalog.Genre, error)
	RatingByTitle(ctx context.Context, title string, hint catalog.MediaKind) (*catalog.RatingRecord, error)
	RatingByID(ctx context.Context, imdbID string) (*catalog.RatingRecord, error)
	RatingSummary(ctx context.Context, title string, hint catalog.MediaKind) (*catalog.RatingSummary, error)
}
