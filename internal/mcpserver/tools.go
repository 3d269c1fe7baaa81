package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/screenscout/screenscout/internal/catalog"
)

type searchMovieInput struct {
	Query  string `json:"query" jsonschema:"movie title to search for"`
	Region string `json:"region,omitempty" jsonschema:"optional ISO 3166-1 region code to filter streaming availability, e.g. US"`
}

type searchTVInput struct {
	Query  string `json:"query" jsonschema:"TV series title to search for"`
	Region string `json:"region,omitempty" jsonschema:"optional ISO 3166-1 region code to filter streaming availability, e.g. US"`
}

type trendingInput struct {
	MediaType string `json:"media_type,omitempty" jsonschema:"movie, tv, or all (default all)"`
	Window    string `json:"window,omitempty" jsonschema:"day or week (default week)"`
	Region    string `json:"region,omitempty" jsonschema:"optional region code to filter streaming availability"`
}

type popularInput struct {
	MediaType string `json:"media_type" jsonschema:"movie or tv"`
	Region    string `json:"region,omitempty" jsonschema:"optional region code to filter streaming availability"`
}

type discoverByGenreInput struct {
	MediaType string `json:"media_type" jsonschema:"movie or tv"`
	Genre     string `json:"genre" jsonschema:"genre name, matched case-insensitively, e.g. Action"`
}

type discoverByActorInput struct {
	Actor string `json:"actor" jsonschema:"actor name to discover movies for"`
}

type searchPersonInput struct {
	Query string `json:"query" jsonschema:"person name to search for"`
}

type searchCollectionInput struct {
	Query string `json:"query" jsonschema:"collection name to search for, e.g. The Lord of the Rings"`
}

type collectionDetailsInput struct {
	CollectionID int `json:"collection_id" jsonschema:"TMDB collection id"`
}

type ratingInput struct {
	Title     string `json:"title,omitempty" jsonschema:"title to look up; ignored when imdb_id is given"`
	ImdbID    string `json:"imdb_id,omitempty" jsonschema:"IMDb id to look up directly, e.g. tt0111161"`
	MediaType string `json:"media_type,omitempty" jsonschema:"optional hint: movie or tv"`
}

type ratingSummaryInput struct {
	Title     string `json:"title" jsonschema:"title to look up"`
	MediaType string `json:"media_type,omitempty" jsonschema:"optional hint: movie or tv"`
}

type listGenresInput struct {
	MediaType string `json:"media_type" jsonschema:"movie or tv"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_movie",
		Description: "Search for movies by title. Returns metadata, IMDb ids, and streaming availability.",
	}, s.handleSearchMovie)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_tv",
		Description: "Search for TV series by title. Returns metadata, IMDb ids, and streaming availability.",
	}, s.handleSearchTV)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "trending",
		Description: "List trending movies and TV series for a day or week window.",
	}, s.handleTrending)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "popular",
		Description: "List currently popular movies or TV series.",
	}, s.handlePopular)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "discover_by_genre",
		Description: "Discover movies or TV series by genre name, e.g. Action, Comedy.",
	}, s.handleDiscoverByGenre)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "discover_by_actor",
		Description: "Discover popular movies featuring a named actor.",
	}, s.handleDiscoverByActor)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_person",
		Description: "Search for actors, directors, and other film industry people by name.",
	}, s.handleSearchPerson)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_collection",
		Description: "Search for movie collections (franchises) by name.",
	}, s.handleSearchCollection)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "collection_details",
		Description: "Get a movie collection with all of its constituent movies.",
	}, s.handleCollectionDetails)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_rating",
		Description: "Get full ratings details (IMDb rating, votes, Metascore, cast, plot) for a title or IMDb id.",
	}, s.handleGetRating)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "rating_summary",
		Description: "Get just the IMDb rating and vote count for a title. Always fetches fresh data.",
	}, s.handleRatingSummary)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_genres",
		Description: "List the available genres for movies or TV series.",
	}, s.handleListGenres)
}

func (s *Server) handleSearchMovie(ctx context.Context, _ *mcp.CallToolRequest, in searchMovieInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("search_movie")

	items, err := s.catalog.SearchMovies(ctx, in.Query)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if len(items) == 0 {
		return textResult(fmt.Sprintf("No movies found matching %q.", in.Query)), nil, nil
	}

	log.Info().Str("query", in.Query).Int("results", len(items)).Msg("search_movie completed")
	return textResult(formatItems("Movies matching "+quoted(in.Query), items, in.Region)), nil, nil
}

func (s *Server) handleSearchTV(ctx context.Context, _ *mcp.CallToolRequest, in searchTVInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("search_tv")

	items, err := s.catalog.SearchSeries(ctx, in.Query)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if len(items) == 0 {
		return textResult(fmt.Sprintf("No TV series found matching %q.", in.Query)), nil, nil
	}

	log.Info().Str("query", in.Query).Int("results", len(items)).Msg("search_tv completed")
	return textResult(formatItems("TV series matching "+quoted(in.Query), items, in.Region)), nil, nil
}

func (s *Server) handleTrending(ctx context.Context, _ *mcp.CallToolRequest, in trendingInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("trending")

	mediaType := strings.ToLower(in.MediaType)
	switch mediaType {
	case "":
		mediaType = "all"
	case "movie", "tv", "all":
	default:
		return textResult("Error: media_type must be movie, tv, or all."), nil, nil
	}

	window := strings.ToLower(in.Window)
	switch window {
	case "":
		window = "week"
	case "day", "week":
	default:
		return textResult("Error: window must be day or week."), nil, nil
	}

	items, err := s.catalog.Trending(ctx, mediaType, window)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if len(items) == 0 {
		return textResult("No trending titles right now."), nil, nil
	}

	log.Info().Str("mediaType", mediaType).Str("window", window).Int("results", len(items)).Msg("trending completed")
	return textResult(formatItems(fmt.Sprintf("Trending (%s, %s)", mediaType, window), items, in.Region)), nil, nil
}

func (s *Server) handlePopular(ctx context.Context, _ *mcp.CallToolRequest, in popularInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("popular")

	kind, ok := catalog.ParseMediaKind(in.MediaType)
	if !ok {
		return textResult("Error: media_type must be movie or tv."), nil, nil
	}

	items, err := s.catalog.Popular(ctx, kind)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if len(items) == 0 {
		return textResult("No popular titles right now."), nil, nil
	}

	log.Info().Str("kind", kind.String()).Int("results", len(items)).Msg("popular completed")
	return textResult(formatItems("Popular "+kind.String()+" titles", items, in.Region)), nil, nil
}

func (s *Server) handleDiscoverByGenre(ctx context.Context, _ *mcp.CallToolRequest, in discoverByGenreInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("discover_by_genre")

	kind, ok := catalog.ParseMediaKind(in.MediaType)
	if !ok {
		return textResult("Error: media_type must be movie or tv."), nil, nil
	}

	items, found, err := s.catalog.DiscoverByGenre(ctx, kind, in.Genre)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if !found {
		return textResult(fmt.Sprintf("Genre %q not found for %s. Use list_genres to see valid names.", in.Genre, kind)), nil, nil
	}
	if len(items) == 0 {
		return textResult(fmt.Sprintf("No %s titles found for genre %q.", kind, in.Genre)), nil, nil
	}

	log.Info().Str("genre", in.Genre).Str("kind", kind.String()).Int("results", len(items)).Msg("discover_by_genre completed")
	return textResult(formatItems(fmt.Sprintf("%s titles in %s", kind, in.Genre), items, "")), nil, nil
}

func (s *Server) handleDiscoverByActor(ctx context.Context, _ *mcp.CallToolRequest, in discoverByActorInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("discover_by_actor")

	items, name, err := s.catalog.DiscoverByActor(ctx, in.Actor)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if name == "" {
		return textResult(fmt.Sprintf("No person found matching %q.", in.Actor)), nil, nil
	}
	if len(items) == 0 {
		return textResult(fmt.Sprintf("No movies found featuring %s.", name)), nil, nil
	}

	log.Info().Str("actor", name).Int("results", len(items)).Msg("discover_by_actor completed")
	return textResult(formatItems("Movies featuring "+name, items, "")), nil, nil
}

func (s *Server) handleSearchPerson(ctx context.Context, _ *mcp.CallToolRequest, in searchPersonInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("search_person")

	people, err := s.catalog.SearchPeople(ctx, in.Query)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if len(people) == 0 {
		return textResult(fmt.Sprintf("No people found matching %q.", in.Query)), nil, nil
	}

	log.Info().Str("query", in.Query).Int("results", len(people)).Msg("search_person completed")
	return textResult(formatPeople(people)), nil, nil
}

func (s *Server) handleSearchCollection(ctx context.Context, _ *mcp.CallToolRequest, in searchCollectionInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("search_collection")

	collections, err := s.catalog.SearchCollections(ctx, in.Query)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if len(collections) == 0 {
		return textResult(fmt.Sprintf("No collections found matching %q.", in.Query)), nil, nil
	}

	log.Info().Str("query", in.Query).Int("results", len(collections)).Msg("search_collection completed")
	return textResult(formatCollections(collections)), nil, nil
}

func (s *Server) handleCollectionDetails(ctx context.Context, _ *mcp.CallToolRequest, in collectionDetailsInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("collection_details")

	collection, err := s.catalog.CollectionDetails(ctx, in.CollectionID)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if collection == nil {
		return textResult(fmt.Sprintf("Collection %d not found.", in.CollectionID)), nil, nil
	}

	log.Info().Int("collectionId", in.CollectionID).Int("parts", len(collection.Parts)).Msg("collection_details completed")
	return textResult(formatCollectionDetails(collection)), nil, nil
}

func (s *Server) handleGetRating(ctx context.Context, _ *mcp.CallToolRequest, in ratingInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("get_rating")

	var (
		rec *catalog.RatingRecord
		err error
	)
	switch {
	case in.ImdbID != "":
		rec, err = s.catalog.RatingByID(ctx, in.ImdbID)
	case in.Title != "":
		hint, _ := catalog.ParseMediaKind(in.MediaType)
		rec, err = s.catalog.RatingByTitle(ctx, in.Title, hint)
	default:
		return textResult("Error: provide a title or an imdb_id."), nil, nil
	}
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if rec == nil {
		return textResult("No ratings found for that title."), nil, nil
	}

	log.Info().Str("title", rec.Title).Msg("get_rating completed")
	return textResult(formatRating(rec)), nil, nil
}

func (s *Server) handleRatingSummary(ctx context.Context, _ *mcp.CallToolRequest, in ratingSummaryInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("rating_summary")

	hint, _ := catalog.ParseMediaKind(in.MediaType)
	summary, err := s.catalog.RatingSummary(ctx, in.Title, hint)
	if err != nil {
		return errorText(log, err), nil, nil
	}
	if summary == nil {
		return textResult(fmt.Sprintf("No ratings found for %q.", in.Title)), nil, nil
	}

	log.Info().Str("title", summary.Title).Msg("rating_summary completed")
	return textResult(fmt.Sprintf("%s: %s/10 (%s votes)", summary.Title, summary.Rating, summary.Votes)), nil, nil
}

func (s *Server) handleListGenres(ctx context.Context, _ *mcp.CallToolRequest, in listGenresInput) (*mcp.CallToolResult, any, error) {
	log := s.requestLogger("list_genres")

	kind, ok := catalog.ParseMediaKind(in.MediaType)
	if !ok {
		return textResult("Error: media_type must be movie or tv."), nil, nil
	}

	genres, err := s.catalog.Genres(ctx, kind)
	if err != nil {
		return errorText(log, err), nil, nil
	}

	log.Info().Str("kind", kind.String()).Int("genres", len(genres)).Msg("list_genres completed")
	return textResult(formatGenres(kind, genres)), nil, nil
}

func quoted(s string) string {
	return fmt.Sprintf("%q", s)
}
