package omdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/screenscout/screenscout/internal/config"
	"github.com/screenscout/screenscout/internal/schema"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := config.OMDBConfig{
		APIKey:     "test-api-key",
		BaseURL:    server.URL,
		Timeout:    5,
		MaxRetries: 1,
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestClient_IsConfigured(t *testing.T) {
	client := NewClient(config.OMDBConfig{APIKey: "k"}, zerolog.Nop())
	if !client.IsConfigured() {
		t.Error("IsConfigured() = false, want true")
	}

	client = NewClient(config.OMDBConfig{}, zerolog.Nop())
	if client.IsConfigured() {
		t.Error("IsConfigured() = true, want false")
	}
}

func TestClient_ByIMDbID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.URL.Query().Get("i"); id != "tt0133093" {
			t.Errorf("i = %q, want tt0133093", id)
		}
		if plot := r.URL.Query().Get("plot"); plot != "full" {
			t.Errorf("plot = %q, want full", plot)
		}

		w.Write([]byte(`{
			"Title": "The Matrix",
			"Year": "1999",
			"Released": "31 Mar 1999",
			"Genre": "Action, Sci-Fi",
			"Director": "Lana Wachowski, Lilly Wachowski",
			"imdbRating": "8.7",
			"imdbVotes": "2,147,483",
			"imdbID": "tt0133093",
			"Metascore": "73",
			"Type": "movie",
			"Response": "True"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.ByIMDbID(context.Background(), "tt0133093")
	if err != nil {
		t.Fatalf("ByIMDbID() error = %v", err)
	}

	if resp.Title != "The Matrix" {
		t.Errorf("Title = %q, want The Matrix", resp.Title)
	}
	if resp.ImdbRating != "8.7" {
		t.Errorf("ImdbRating = %q, want 8.7", resp.ImdbRating)
	}
	if resp.Metascore != "73" {
		t.Errorf("Metascore = %q, want 73", resp.Metascore)
	}
}

func TestClient_ByIMDbID_NoAPIKey(t *testing.T) {
	client := NewClient(config.OMDBConfig{}, zerolog.Nop())
	_, err := client.ByIMDbID(context.Background(), "tt0133093")
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("ByIMDbID() error = %v, want ErrAPIKeyMissing", err)
	}
}

func TestClient_ByTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if title := r.URL.Query().Get("t"); title != "Breaking Bad" {
			t.Errorf("t = %q, want Breaking Bad", title)
		}
		if mt := r.URL.Query().Get("type"); mt != "series" {
			t.Errorf("type = %q, want series", mt)
		}

		w.Write([]byte(`{
			"Title": "Breaking Bad",
			"Year": "2008-2013",
			"imdbRating": "9.5",
			"imdbID": "tt0903747",
			"Type": "series",
			"Response": "True"
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.ByTitle(context.Background(), "Breaking Bad", "series")
	if err != nil {
		t.Fatalf("ByTitle() error = %v", err)
	}
	if resp.ImdbID != "tt0903747" {
		t.Errorf("ImdbID = %q, want tt0903747", resp.ImdbID)
	}
}

func TestClient_ByTitle_OmitsEmptyType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("type") {
			t.Error("type parameter should be omitted when empty")
		}
		w.Write([]byte(`{"Title": "Dune", "imdbID": "tt1160419", "Response": "True"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	if _, err := client.ByTitle(context.Background(), "Dune", ""); err != nil {
		t.Fatalf("ByTitle() error = %v", err)
	}
}

func TestClient_LogicalNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 with a logical failure body, the OMDb way
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.ByTitle(context.Background(), "Nonexistent", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ByTitle() error = %v, want ErrNotFound", err)
	}

	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatal("error is not *NotFoundError")
	}
	if nfe.Message != "Movie not found!" {
		t.Errorf("Message = %q, want the upstream message preserved", nfe.Message)
	}
}

func TestClient_SchemaViolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Response=True but no Title or imdbID
		w.Write([]byte(`{"Response": "True"}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.ByIMDbID(context.Background(), "tt0000000")
	if !schema.Is(err) {
		t.Errorf("ByIMDbID() error = %v, want schema violation", err)
	}
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.ByIMDbID(context.Background(), "tt0133093")
	if !errors.Is(err, ErrServerError) {
		t.Errorf("ByIMDbID() error = %v, want ErrServerError", err)
	}
}
