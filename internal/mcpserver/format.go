package mcpserver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/screenscout/screenscout/internal/catalog"
)

// formatItems renders a numbered list of titles. When region is non-empty,
// streaming availability is filtered to that region only.
func formatItems(header string, items []catalog.Item, region string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d results)\n", header, len(items))

	for i, item := range items {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, item.Title, displayDate(item.ReleaseDate))
		fmt.Fprintf(&b, "   Type: %s | Rating: %.1f | Language: %s\n", item.Kind, item.Rating, item.Language)
		if item.ImdbID != "" {
			fmt.Fprintf(&b, "   IMDb: %s\n", item.ImdbID)
		}
		fmt.Fprintf(&b, "   %s\n", item.Description)
		if item.PosterURL != "" {
			fmt.Fprintf(&b, "   Poster: %s\n", item.PosterURL)
		}
		writeAvailability(&b, item.Availability, region)
	}

	return b.String()
}

func writeAvailability(b *strings.Builder, avail *catalog.Availability, region string) {
	if avail == nil {
		return
	}
	if avail.Degraded {
		b.WriteString("   Streaming: temporarily unavailable\n")
		return
	}
	if len(avail.Regions) == 0 {
		b.WriteString("   Streaming: no providers listed\n")
		return
	}

	regions := make([]string, 0, len(avail.Regions))
	for code := range avail.Regions {
		if region != "" && !strings.EqualFold(code, region) {
			continue
		}
		regions = append(regions, code)
	}
	if len(regions) == 0 {
		fmt.Fprintf(b, "   Streaming: no providers listed for %s\n", strings.ToUpper(region))
		return
	}
	sort.Strings(regions)

	for _, code := range regions {
		offers := avail.Regions[code]
		parts := make([]string, 0, 4)
		if len(offers.Subscription) > 0 {
			parts = append(parts, "stream on "+strings.Join(offers.Subscription, ", "))
		}
		if len(offers.Free) > 0 {
			parts = append(parts, "free on "+strings.Join(offers.Free, ", "))
		}
		if len(offers.Ads) > 0 {
			parts = append(parts, "with ads on "+strings.Join(offers.Ads, ", "))
		}
		if len(offers.Rent) > 0 {
			parts = append(parts, "rent on "+strings.Join(offers.Rent, ", "))
		}
		if len(offers.Buy) > 0 {
			parts = append(parts, "buy on "+strings.Join(offers.Buy, ", "))
		}
		if len(parts) == 0 {
			continue
		}
		fmt.Fprintf(b, "   Streaming [%s]: %s\n", code, strings.Join(parts, "; "))
	}
}

func formatRating(rec *catalog.RatingRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", rec.Title, rec.Year)
	fmt.Fprintf(&b, "Type: %s | Released: %s\n", rec.Kind, rec.ReleaseDate)
	fmt.Fprintf(&b, "IMDb Rating: %s/10 (%s votes) | Metascore: %s\n", rec.Rating, rec.Votes, rec.Metascore)
	fmt.Fprintf(&b, "Genre: %s\n", rec.Genre)
	fmt.Fprintf(&b, "Director: %s\n", rec.Director)
	fmt.Fprintf(&b, "Writer: %s\n", rec.Writer)
	fmt.Fprintf(&b, "Actors: %s\n", rec.Actors)
	fmt.Fprintf(&b, "Country: %s | Language: %s\n", rec.Country, rec.Language)
	fmt.Fprintf(&b, "Plot: %s\n", rec.Plot)
	if rec.PosterURL != "" && rec.PosterURL != "N/A" {
		fmt.Fprintf(&b, "Poster: %s\n", rec.PosterURL)
	}
	return b.String()
}

func formatPeople(people []catalog.Person) string {
	var b strings.Builder
	fmt.Fprintf(&b, "People (%d results)\n", len(people))

	for i, p := range people {
		fmt.Fprintf(&b, "\n%d. %s", i+1, p.Name)
		if p.Department != "" {
			fmt.Fprintf(&b, " (%s)", p.Department)
		}
		fmt.Fprintf(&b, "\n   Popularity: %.1f\n", p.Popularity)
		if p.KnownFor != "" {
			fmt.Fprintf(&b, "   Known for: %s\n", p.KnownFor)
		}
		if p.ProfileURL != "" {
			fmt.Fprintf(&b, "   Photo: %s\n", p.ProfileURL)
		}
	}

	return b.String()
}

func formatCollections(collections []catalog.Collection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Collections (%d results)\n", len(collections))

	for i, c := range collections {
		fmt.Fprintf(&b, "\n%d. %s (id %d)\n", i+1, c.Name, c.ID)
		if c.Overview != "" {
			fmt.Fprintf(&b, "   %s\n", c.Overview)
		}
		if c.PosterURL != "" {
			fmt.Fprintf(&b, "   Poster: %s\n", c.PosterURL)
		}
	}

	b.WriteString("\nUse collection_details with an id to list the movies in a collection.\n")
	return b.String()
}

func formatCollectionDetails(c *catalog.Collection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", c.Name)
	if c.Overview != "" {
		fmt.Fprintf(&b, "%s\n", c.Overview)
	}
	fmt.Fprintf(&b, "\nMovies (%d):\n", len(c.Parts))

	for i, item := range c.Parts {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, item.Title, displayDate(item.ReleaseDate))
		fmt.Fprintf(&b, "   Rating: %.1f\n", item.Rating)
		fmt.Fprintf(&b, "   %s\n", item.Description)
	}

	return b.String()
}

func formatGenres(kind catalog.MediaKind, genres []catalog.Genre) string {
	if len(genres) == 0 {
		return fmt.Sprintf("No genres available for %s.", kind)
	}

	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return fmt.Sprintf("Available %s genres: %s", kind, strings.Join(names, ", "))
}

// displayDate substitutes the placeholder for titles with no release date.
// Dates pass through as the provider sent them.
func displayDate(date string) string {
	if date == "" {
		return "Unknown"
	}
	return date
}
