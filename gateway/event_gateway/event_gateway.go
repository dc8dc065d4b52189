package event_gateway

import (
	"context"

	"commonwealth/domain"
	"commonwealth/driver/models"
	"commonwealth/utils/geo"
	"commonwealth/utils/logger"
)

const descriptionFallback = "No description available"

// eventsFetcher is the slice of the upstream client this gateway needs.
type eventsFetcher interface {
	FetchArticles(ctx context.Context) ([]models.GDELTArticle, error)
}

// EventGateway normalizes raw coverage records into geo events for the map
// layer. Categorization and severity grading are injected so the tone-based
// strategies can replace the defaults without touching this code.
type EventGateway struct {
	fetcher    eventsFetcher
	geoLookup  geo.Lookup
	categorize domain.Categorizer
	rate       domain.SeverityRater
	maxEvents  int
}

func NewEventGateway(fetcher eventsFetcher, geoLookup geo.Lookup, categorize domain.Categorizer, rate domain.SeverityRater, maxEvents int) *EventGateway {
	return &EventGateway{
		fetcher:    fetcher,
		geoLookup:  geoLookup,
		categorize: categorize,
		rate:       rate,
		maxEvents:  maxEvents,
	}
}

func (g *EventGateway) FetchEvents(ctx context.Context) ([]domain.GeoEvent, error) {
	articles, err := g.fetcher.FetchArticles(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.GeoEvent, 0, g.maxEvents)
	dropped := 0
	for _, article := range articles {
		if len(events) == g.maxEvents {
			break
		}

		if article.Title == "" || article.URL == "" || article.SourceCountry == "" {
			dropped++
			continue
		}

		lat, lng := g.geoLookup.Coordinates(article.SourceCountry)

		events = append(events, domain.GeoEvent{
			ID:          article.URL,
			Title:       article.Title,
			Description: describe(article),
			Category:    g.categorize(article.Domain, article.Tone),
			Severity:    g.rate(article.Tone),
			Latitude:    lat,
			Longitude:   lng,
			Country:     article.SourceCountry,
			Date:        article.SeenDate,
		})
	}

	if dropped > 0 {
		logger.Logger.InfoContext(ctx, "Dropped incomplete event records", "dropped", dropped)
	}

	return events, nil
}

func describe(article models.GDELTArticle) string {
	if article.SEODescription != "" {
		return article.SEODescription
	}
	if article.SocialImage != "" {
		return article.SocialImage
	}
	return descriptionFallback
}
