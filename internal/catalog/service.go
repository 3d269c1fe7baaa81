package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/screenscout/screenscout/internal/catalog/omdb"
	"github.com/screenscout/screenscout/internal/catalog/tmdb"
	"github.com/screenscout/screenscout/internal/config"
)

// Service composes the TMDB and OMDb clients into the catalog operations
// exposed by the tool surface. Every item-producing operation runs the
// same pipeline: validated provider payload -> normalizer -> enrichment.
type Service struct {
	tmdb   TMDBClient
	omdb   OMDBClient
	norm   *Normalizer
	cache  *Cache
	logger zerolog.Logger
}

// NewService creates a catalog service with real API clients.
func NewService(cfg *config.Config, logger zerolog.Logger) *Service {
	cacheCfg := CacheConfig{
		TTL:      time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
		MaxItems: cfg.Cache.MaxItems,
	}
	return NewServiceWithClients(
		tmdb.NewClient(cfg.TMDB, logger),
		omdb.NewClient(cfg.OMDB, logger),
		cacheCfg,
		logger,
	)
}

// NewServiceWithClients creates a catalog service with custom clients
// (for testing/mocking).
func NewServiceWithClients(tmdbClient TMDBClient, omdbClient OMDBClient, cacheCfg CacheConfig, logger zerolog.Logger) *Service {
	return &Service{
		tmdb:   tmdbClient,
		omdb:   omdbClient,
		norm:   NewNormalizer(DefaultPolicy(), tmdbClient.GetImageURL),
		cache:  NewCache(cacheCfg),
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// IsTMDBConfigured returns true if the metadata provider key is set.
func (s *Service) IsTMDBConfigured() bool { return s.tmdb.IsConfigured() }

// IsOMDBConfigured returns true if the ratings provider key is set.
func (s *Service) IsOMDBConfigured() bool { return s.omdb.IsConfigured() }

// TestTMDB tests connectivity to the TMDB API.
func (s *Service) TestTMDB(ctx context.Context) error { return s.tmdb.Test(ctx) }

// TestOMDB tests connectivity to the OMDb API.
func (s *Service) TestOMDB(ctx context.Context) error { return s.omdb.Test(ctx) }

// SearchMovies searches movies by title and returns enriched canonical
// items in provider order.
func (s *Service) SearchMovies(ctx context.Context, query string) ([]Item, error) {
	cacheKey := "movie:search:" + strings.ToLower(query)
	if items, ok := s.cache.GetItems(cacheKey); ok {
		s.logger.Debug().Str("query", query).Msg("Movie search cache hit")
		return items, nil
	}

	response, err := s.tmdb.SearchMovies(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("movie search failed: %w", err)
	}

	items := make([]Item, len(response.Results))
	for i, m := range response.Results {
		items[i] = s.norm.Movie(m)
	}

	items, err = s.Enrich(ctx, items)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, items)

	s.logger.Info().
		Str("query", query).
		Int("results", len(items)).
		Msg("Movie search completed")

	return items, nil
}

// SearchSeries searches TV series by title and returns enriched canonical
// items in provider order.
func (s *Service) SearchSeries(ctx context.Context, query string) ([]Item, error) {
	cacheKey := "tv:search:" + strings.ToLower(query)
	if items, ok := s.cache.GetItems(cacheKey); ok {
		s.logger.Debug().Str("query", query).Msg("Series search cache hit")
		return items, nil
	}

	response, err := s.tmdb.SearchTV(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("series search failed: %w", err)
	}

	items := make([]Item, len(response.Results))
	for i, t := range response.Results {
		items[i] = s.norm.TV(t)
	}

	items, err = s.Enrich(ctx, items)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, items)

	s.logger.Info().
		Str("query", query).
		Int("results", len(items)).
		Msg("Series search completed")

	return items, nil
}

// Trending returns trending titles. mediaType may be "movie", "tv", or
// "all"; window may be "day" or "week". Person rows are dropped.
func (s *Service) Trending(ctx context.Context, mediaType, window string) ([]Item, error) {
	response, err := s.tmdb.Trending(ctx, mediaType, window)
	if err != nil {
		return nil, fmt.Errorf("trending lookup failed: %w", err)
	}

	items := s.norm.Rows(response.Results, MediaKindMovie)
	return s.Enrich(ctx, items)
}

// Popular returns popular titles for the given kind.
func (s *Service) Popular(ctx context.Context, kind MediaKind) ([]Item, error) {
	response, err := s.tmdb.Popular(ctx, kind.String())
	if err != nil {
		return nil, fmt.Errorf("popular lookup failed: %w", err)
	}

	items := s.norm.Rows(response.Results, kind)
	return s.Enrich(ctx, items)
}

// Genres returns the genre lookup table for the given kind.
func (s *Service) Genres(ctx context.Context, kind MediaKind) ([]Genre, error) {
	cacheKey := "genres:" + kind.String()
	if genres, ok := s.cache.GetGenres(cacheKey); ok {
		return genres, nil
	}

	response, err := s.tmdb.GenreList(ctx, kind.String())
	if err != nil {
		return nil, fmt.Errorf("genre list failed: %w", err)
	}

	genres := s.norm.Genres(response)
	s.cache.Set(cacheKey, genres)
	return genres, nil
}

// ResolveGenre translates a human genre name to the provider's numeric id.
// Matching is case-insensitive exact match; no match reports ok=false, not
// an error.
func (s *Service) ResolveGenre(ctx context.Context, kind MediaKind, name string) (int, bool, error) {
	genres, err := s.Genres(ctx, kind)
	if err != nil {
		return 0, false, err
	}

	for _, g := range genres {
		if strings.EqualFold(g.Name, name) {
			return g.ID, true, nil
		}
	}
	return 0, false, nil
}

// DiscoverByGenre returns enriched titles for the genre name. An
// unresolvable genre name is a terminal not-found (ok=false) and issues no
// discover request.
func (s *Service) DiscoverByGenre(ctx context.Context, kind MediaKind, genreName string) ([]Item, bool, error) {
	genreID, ok, err := s.ResolveGenre(ctx, kind, genreName)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		s.logger.Debug().Str("genre", genreName).Str("kind", kind.String()).Msg("Genre not found")
		return nil, false, nil
	}

	response, err := s.tmdb.DiscoverByGenre(ctx, kind.String(), genreID)
	if err != nil {
		return nil, false, fmt.Errorf("discover by genre failed: %w", err)
	}

	items := s.norm.Rows(response.Results, kind)
	items, err = s.Enrich(ctx, items)
	if err != nil {
		return nil, false, err
	}
	return items, true, nil
}

// DiscoverByActor resolves an actor name via person search and returns
// enriched movies featuring the best match. The resolved person name comes
// back alongside the items; an unknown actor reports an empty name.
func (s *Service) DiscoverByActor(ctx context.Context, actorName string) ([]Item, string, error) {
	response, err := s.tmdb.SearchPeople(ctx, actorName)
	if err != nil {
		return nil, "", fmt.Errorf("person search failed: %w", err)
	}
	if len(response.Results) == 0 {
		return nil, "", nil
	}

	person := response.Results[0]
	discovered, err := s.tmdb.DiscoverByCast(ctx, person.ID)
	if err != nil {
		return nil, "", fmt.Errorf("discover by actor failed: %w", err)
	}

	items := s.norm.Rows(discovered.Results, MediaKindMovie)
	items, err = s.Enrich(ctx, items)
	if err != nil {
		return nil, "", err
	}
	return items, person.Name, nil
}

// SearchPeople searches people by name.
func (s *Service) SearchPeople(ctx context.Context, query string) ([]Person, error) {
	response, err := s.tmdb.SearchPeople(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("person search failed: %w", err)
	}

	people := make([]Person, len(response.Results))
	for i, p := range response.Results {
		people[i] = s.norm.Person(p)
	}
	return people, nil
}

// SearchCollections searches collections by name. Results never carry
// parts; only CollectionDetails populates them.
func (s *Service) SearchCollections(ctx context.Context, query string) ([]Collection, error) {
	response, err := s.tmdb.SearchCollections(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("collection search failed: %w", err)
	}

	collections := make([]Collection, len(response.Results))
	for i, c := range response.Results {
		collections[i] = s.norm.Collection(c)
	}
	return collections, nil
}

// CollectionDetails returns a collection with its parts, or nil when the
// provider cannot produce it. Fetch failure is a soft null, never an error
// to the caller; only a missing API key propagates.
func (s *Service) CollectionDetails(ctx context.Context, id int) (*Collection, error) {
	if !s.tmdb.IsConfigured() {
		return nil, tmdb.ErrAPIKeyMissing
	}

	details, err := s.tmdb.GetCollectionDetails(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int("id", id).Msg("Collection details lookup failed, returning none")
		return nil, nil
	}

	return s.norm.CollectionDetails(details), nil
}

// ClearCache clears the lookup cache.
func (s *Service) ClearCache() {
	s.cache.Clear()
	s.logger.Info().Msg("Catalog cache cleared")
}
