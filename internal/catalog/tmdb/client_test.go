package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/screenscout/screenscout/internal/config"
	"github.com/screenscout/screenscout/internal/schema"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := config.TMDBConfig{
		APIKey:       "test-api-key",
		BaseURL:      server.URL,
		ImageBaseURL: "https://image.tmdb.org/t/p",
		Timeout:      5,
		MaxRetries:   1,
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestClient_Name(t *testing.T) {
	client := NewClient(config.TMDBConfig{}, zerolog.Nop())
	if client.Name() != "tmdb" {
		t.Errorf("Name() = %q, want %q", client.Name(), "tmdb")
	}
}

func TestClient_IsConfigured(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"with key", "abc123", true},
		{"without key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(config.TMDBConfig{APIKey: tt.apiKey}, zerolog.Nop())
			if got := client.IsConfigured(); got != tt.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClient_SearchMovies(t *testing.T) {
	poster := "/f89U3ADr1oiB1s9z2GOgQ9N06VK.jpg"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if query := r.URL.Query().Get("query"); query != "Matrix" {
			t.Errorf("unexpected query: %s", query)
		}
		if key := r.URL.Query().Get("api_key"); key != "test-api-key" {
			t.Errorf("unexpected api_key: %s", key)
		}

		response := SearchMoviesResponse{
			Page:         1,
			TotalResults: 2,
			TotalPages:   1,
			Results: []MovieResult{
				{
					ID:          603,
					Title:       "The Matrix",
					Overview:    "A computer hacker learns about the true nature of reality.",
					ReleaseDate: "1999-03-30",
					PosterPath:  &poster,
					VoteAverage: 8.2,
				},
				{
					ID:          604,
					Title:       "The Matrix Reloaded",
					Overview:    "Neo and the rebel leaders continue to fight.",
					ReleaseDate: "2003-05-15",
				},
			},
		}
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.SearchMovies(context.Background(), "Matrix")
	if err != nil {
		t.Fatalf("SearchMovies() error = %v", err)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("SearchMovies() returned %d results, want 2", len(resp.Results))
	}
	if resp.Results[0].Title != "The Matrix" {
		t.Errorf("results[0].Title = %q, want %q", resp.Results[0].Title, "The Matrix")
	}
	if resp.Results[0].ID != 603 {
		t.Errorf("results[0].ID = %d, want %d", resp.Results[0].ID, 603)
	}
	if resp.Results[0].PosterPath == nil || *resp.Results[0].PosterPath != poster {
		t.Errorf("results[0].PosterPath = %v, want %q", resp.Results[0].PosterPath, poster)
	}
	if resp.Results[1].PosterPath != nil {
		t.Errorf("results[1].PosterPath = %v, want nil", resp.Results[1].PosterPath)
	}
}

func TestClient_SearchMovies_NoAPIKey(t *testing.T) {
	client := NewClient(config.TMDBConfig{}, zerolog.Nop())
	_, err := client.SearchMovies(context.Background(), "Matrix")
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("SearchMovies() error = %v, want ErrAPIKeyMissing", err)
	}
}

func TestClient_SearchMovies_SchemaViolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// results is missing entirely
		w.Write([]byte(`{"page": 1, "total_pages": 1, "total_results": 0}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.SearchMovies(context.Background(), "Matrix")
	if err == nil {
		t.Fatal("SearchMovies() expected error for missing results array")
	}
	if !schema.Is(err) {
		t.Errorf("SearchMovies() error = %v, want schema violation", err)
	}
}

func TestClient_SearchMovies_InvalidID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page": 1, "results": [{"id": 0, "title": "Broken"}], "total_pages": 1, "total_results": 1}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.SearchMovies(context.Background(), "Broken")
	if !schema.Is(err) {
		t.Errorf("SearchMovies() error = %v, want schema violation", err)
	}
}

func TestClient_SearchTV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/tv" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		response := SearchTVResponse{
			Page:         1,
			TotalResults: 1,
			TotalPages:   1,
			Results: []TVResult{
				{
					ID:           1396,
					Name:         "Breaking Bad",
					Overview:     "A chemistry teacher turns to crime.",
					FirstAirDate: "2008-01-20",
					VoteAverage:  8.9,
				},
			},
		}
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.SearchTV(context.Background(), "Breaking Bad")
	if err != nil {
		t.Fatalf("SearchTV() error = %v", err)
	}

	if len(resp.Results) != 1 {
		t.Fatalf("SearchTV() returned %d results, want 1", len(resp.Results))
	}
	if resp.Results[0].Name != "Breaking Bad" {
		t.Errorf("results[0].Name = %q, want %q", resp.Results[0].Name, "Breaking Bad")
	}
}

func TestClient_GetMovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		response := MovieDetails{
			ID:     603,
			Title:  "The Matrix",
			ImdbID: "tt0133093",
		}
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server)
	details, err := client.GetMovieDetails(context.Background(), 603)
	if err != nil {
		t.Fatalf("GetMovieDetails() error = %v", err)
	}

	if details.ImdbID != "tt0133093" {
		t.Errorf("ImdbID = %q, want %q", details.ImdbID, "tt0133093")
	}
}

func TestClient_GetTVDetails_ExternalIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/1396" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if atr := r.URL.Query().Get("append_to_response"); atr != "external_ids" {
			t.Errorf("append_to_response = %q, want external_ids", atr)
		}

		w.Write([]byte(`{"id": 1396, "name": "Breaking Bad", "external_ids": {"imdb_id": "tt0903747"}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	details, err := client.GetTVDetails(context.Background(), 1396)
	if err != nil {
		t.Fatalf("GetTVDetails() error = %v", err)
	}

	if details.ExternalIDs == nil || details.ExternalIDs.ImdbID != "tt0903747" {
		t.Errorf("ExternalIDs = %+v, want imdb_id tt0903747", details.ExternalIDs)
	}
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_code": 34, "status_message": "The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetMovieDetails(context.Background(), 999999999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMovieDetails() error = %v, want ErrNotFound", err)
	}
}

func TestClient_RateLimited(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetMovieDetails(context.Background(), 603)
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("GetMovieDetails() error = %v, want ErrRateLimited", err)
	}
	if calls != 1 {
		t.Errorf("server called %d times, want 1 (MaxRetries=1)", calls)
	}
}

func TestClient_Trending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/all/week" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		w.Write([]byte(`{"page": 1, "results": [
			{"id": 603, "media_type": "movie", "title": "The Matrix"},
			{"id": 1396, "media_type": "tv", "name": "Breaking Bad"}
		], "total_pages": 1, "total_results": 2}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.Trending(context.Background(), "all", "week")
	if err != nil {
		t.Fatalf("Trending() error = %v", err)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("Trending() returned %d results, want 2", len(resp.Results))
	}
	if resp.Results[0].MediaType != "movie" {
		t.Errorf("results[0].MediaType = %q, want movie", resp.Results[0].MediaType)
	}
	if resp.Results[1].Name != "Breaking Bad" {
		t.Errorf("results[1].Name = %q, want Breaking Bad", resp.Results[1].Name)
	}
}

func TestClient_DiscoverByGenre(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if genres := r.URL.Query().Get("with_genres"); genres != "28" {
			t.Errorf("with_genres = %q, want 28", genres)
		}
		if sort := r.URL.Query().Get("sort_by"); sort != "popularity.desc" {
			t.Errorf("sort_by = %q, want popularity.desc", sort)
		}

		w.Write([]byte(`{"page": 1, "results": [{"id": 245891, "title": "John Wick"}], "total_pages": 1, "total_results": 1}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.DiscoverByGenre(context.Background(), "movie", 28)
	if err != nil {
		t.Fatalf("DiscoverByGenre() error = %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "John Wick" {
		t.Errorf("unexpected results: %+v", resp.Results)
	}
}

func TestClient_GenreList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		w.Write([]byte(`{"genres": [{"id": 28, "name": "Action"}, {"id": 35, "name": "Comedy"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.GenreList(context.Background(), "movie")
	if err != nil {
		t.Fatalf("GenreList() error = %v", err)
	}
	if len(resp.Genres) != 2 || resp.Genres[0].Name != "Action" {
		t.Errorf("unexpected genres: %+v", resp.Genres)
	}
}

func TestClient_GenreList_BadEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"genres": [{"id": 28, "name": ""}]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GenreList(context.Background(), "movie")
	if !schema.Is(err) {
		t.Errorf("GenreList() error = %v, want schema violation", err)
	}
}

func TestClient_WatchProviders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603/watch/providers" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		w.Write([]byte(`{"id": 603, "results": {"US": {
			"link": "https://www.themoviedb.org/movie/603/watch",
			"flatrate": [{"provider_id": 8, "provider_name": "Netflix"}],
			"rent": [{"provider_id": 2, "provider_name": "Apple TV"}]
		}}}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.WatchProviders(context.Background(), "movie", 603)
	if err != nil {
		t.Fatalf("WatchProviders() error = %v", err)
	}

	us, ok := resp.Results["US"]
	if !ok {
		t.Fatal("missing US region")
	}
	if len(us.Flatrate) != 1 || us.Flatrate[0].ProviderName != "Netflix" {
		t.Errorf("unexpected flatrate: %+v", us.Flatrate)
	}
}

func TestClient_GetCollectionDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collection/2344" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		w.Write([]byte(`{"id": 2344, "name": "The Matrix Collection", "parts": [
			{"id": 603, "title": "The Matrix", "release_date": "1999-03-30"},
			{"id": 604, "title": "The Matrix Reloaded", "release_date": "2003-05-15"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	details, err := client.GetCollectionDetails(context.Background(), 2344)
	if err != nil {
		t.Fatalf("GetCollectionDetails() error = %v", err)
	}
	if details.Name != "The Matrix Collection" {
		t.Errorf("Name = %q, want The Matrix Collection", details.Name)
	}
	if len(details.Parts) != 2 {
		t.Errorf("Parts = %d, want 2", len(details.Parts))
	}
}

func TestClient_GetImageURL(t *testing.T) {
	client := NewClient(config.TMDBConfig{ImageBaseURL: "https://image.tmdb.org/t/p"}, zerolog.Nop())

	tests := []struct {
		name string
		path string
		size string
		want string
	}{
		{"normal path", "/abc.jpg", "w500", "https://image.tmdb.org/t/p/w500/abc.jpg"},
		{"empty path", "", "w500", ""},
		{"original size", "/abc.jpg", "original", "https://image.tmdb.org/t/p/original/abc.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := client.GetImageURL(tt.path, tt.size); got != tt.want {
				t.Errorf("GetImageURL(%q, %q) = %q, want %q", tt.path, tt.size, got, tt.want)
			}
		})
	}
}
