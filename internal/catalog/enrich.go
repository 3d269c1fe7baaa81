package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// enrichLimit caps concurrent secondary fetches per enrichment batch.
const enrichLimit = 8

// Enrich fans out the per-item secondary lookups: the IMDb ID from the
// details endpoint and the watch-provider availability. The two fetches
// are independent and run concurrently; output order always matches input
// order.
//
// The asymmetry between the two is intentional. The IMDb ID is structural
// (downstream rating enrichment keys on it), so a failed details fetch
// fails the whole batch. Availability is cosmetic: a failed lookup marks
// the item degraded and the batch proceeds.
func (s *Service) Enrich(ctx context.Context, items []Item) ([]Item, error) {
	if len(items) == 0 {
		return items, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichLimit)

	for i := range items {
		g.Go(func() error {
			imdbID, err := s.externalID(ctx, items[i].ID, items[i].Kind)
			if err != nil {
				return fmt.Errorf("external id lookup for %s %d: %w", items[i].Kind, items[i].ID, err)
			}
			items[i].ImdbID = imdbID
			return nil
		})

		g.Go(func() error {
			providers, err := s.tmdb.WatchProviders(ctx, items[i].Kind.String(), items[i].ID)
			if err != nil {
				s.logger.Warn().
					Err(err).
					Int("id", items[i].ID).
					Str("kind", items[i].Kind.String()).
					Msg("Availability lookup failed, item degraded")
				items[i].Availability = &Availability{Degraded: true}
				return nil
			}
			items[i].Availability = s.norm.Availability(providers)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

// externalID resolves the cross-provider IMDb ID for a title. Movies carry
// it directly on the details payload; TV nests it under external_ids. An
// ID the provider simply does not have resolves to "" without error.
func (s *Service) externalID(ctx context.Context, id int, kind MediaKind) (string, error) {
	if kind == MediaKindTV {
		details, err := s.tmdb.GetTVDetails(ctx, id)
		if err != nil {
			return "", err
		}
		if details.ExternalIDs == nil {
			return "", nil
		}
		return details.ExternalIDs.ImdbID, nil
	}

	details, err := s.tmdb.GetMovieDetails(ctx, id)
	if err != nil {
		return "", err
	}
	return details.ImdbID, nil
}
