package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/screenscout/screenscout/internal/catalog/omdb"
)

// KindAuto lets the ratings provider pick the media type itself.
const KindAuto MediaKind = ""

// RatingByTitle looks up the ratings provider by title. A nil record with
// a nil error means not found. When no kind hint is given and the provider
// reports not-found, the lookup retries exactly once with the opposite
// kind guessed from the error text: a message mentioning "series" retries
// as movie, anything else retries as series. Never recurses further.
//
// Transport and schema failures are absorbed here and converted to
// not-found; reconciler failures are never fatal to the caller.
func (s *Service) RatingByTitle(ctx context.Context, title string, hint MediaKind) (*RatingRecord, error) {
	if !s.omdb.IsConfigured() {
		return nil, omdb.ErrAPIKeyMissing
	}

	key := ratingTitleKey(title, hint)
	if rec, ok := s.cache.GetRating(key); ok {
		s.logger.Debug().Str("title", title).Msg("Rating memo hit")
		return rec, nil
	}

	resp := s.lookupTitle(ctx, title, hint)
	if resp == nil {
		return nil, nil
	}

	rec := s.norm.RatingRecord(resp)
	s.cache.Set(key, &rec)

	s.logger.Debug().
		Str("title", title).
		Str("imdbId", resp.ImdbID).
		Str("rating", rec.Rating).
		Msg("Rating lookup completed")

	return &rec, nil
}

// RatingByID looks up the ratings provider by IMDb ID. A nil record with a
// nil error means not found.
func (s *Service) RatingByID(ctx context.Context, imdbID string) (*RatingRecord, error) {
	if !s.omdb.IsConfigured() {
		return nil, omdb.ErrAPIKeyMissing
	}

	key := "id:" + imdbID
	if rec, ok := s.cache.GetRating(key); ok {
		s.logger.Debug().Str("imdbId", imdbID).Msg("Rating memo hit")
		return rec, nil
	}

	resp, err := s.omdb.ByIMDbID(ctx, imdbID)
	if err != nil {
		if !errors.Is(err, omdb.ErrNotFound) {
			s.logger.Warn().Err(err).Str("imdbId", imdbID).Msg("Rating lookup failed, treating as not found")
		}
		return nil, nil
	}

	rec := s.norm.RatingRecord(resp)
	s.cache.Set(key, &rec)

	return &rec, nil
}

// RatingSummary performs the title lookup but returns only rating and vote
// count, bypassing the memo so the numbers are always fresh. Intended for
// high-frequency low-latency checks.
func (s *Service) RatingSummary(ctx context.Context, title string, hint MediaKind) (*RatingSummary, error) {
	if !s.omdb.IsConfigured() {
		return nil, omdb.ErrAPIKeyMissing
	}

	resp := s.lookupTitle(ctx, title, hint)
	if resp == nil {
		return nil, nil
	}

	rec := s.norm.RatingRecord(resp)
	return &RatingSummary{Title: rec.Title, Rating: rec.Rating, Votes: rec.Votes}, nil
}

// lookupTitle issues the provider call with the single-retry type-guessing
// strategy. Any failure resolves to nil.
func (s *Service) lookupTitle(ctx context.Context, title string, hint MediaKind) *omdb.Response {
	mediaType := ""
	if hint != KindAuto {
		mediaType = hint.OMDbType()
	}

	resp, err := s.omdb.ByTitle(ctx, title, mediaType)
	if err == nil {
		return resp
	}

	var nf *omdb.NotFoundError
	if errors.As(err, &nf) && hint == KindAuto {
		retryType := guessOppositeType(nf.Message)
		s.logger.Debug().
			Str("title", title).
			Str("retryType", retryType).
			Msg("Rating title miss, retrying with guessed type")

		resp, err = s.omdb.ByTitle(ctx, title, retryType)
		if err == nil {
			return resp
		}
	}

	if !errors.Is(err, omdb.ErrNotFound) {
		s.logger.Warn().Err(err).Str("title", title).Msg("Rating lookup failed, treating as not found")
	}
	return nil
}

// guessOppositeType picks the retry type from the provider's error text:
// an error mentioning series means the auto lookup resolved to a series
// namespace, so retry as movie; anything else retries as series.
func guessOppositeType(message string) string {
	if strings.Contains(strings.ToLower(message), "series") {
		return "movie"
	}
	return "series"
}

func ratingTitleKey(title string, hint MediaKind) string {
	kind := "auto"
	if hint != KindAuto {
		kind = hint.OMDbType()
	}
	return fmt.Sprintf("title:%s:%s", kind, strings.ToLower(title))
}
