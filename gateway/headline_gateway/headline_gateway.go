package headline_gateway

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"commonwealth/domain"
	"commonwealth/driver/models"
	"commonwealth/utils/logger"
)

// headlinesFetcher is the slice of the upstream client this gateway needs.
type headlinesFetcher interface {
	FetchTopHeadlines(ctx context.Context, page, pageSize int) ([]models.NewsAPIArticle, error)
}

// HeadlineGateway turns raw upstream articles into validated domain
// headlines. Records missing any required field are dropped, the remainder
// is trimmed to the dashboard's ticker size in upstream order.
type HeadlineGateway struct {
	fetcher  headlinesFetcher
	pageSize int
	keep     int
	now      func() time.Time
}

func NewHeadlineGateway(fetcher headlinesFetcher, pageSize, keep int) *HeadlineGateway {
	return &HeadlineGateway{
		fetcher:  fetcher,
		pageSize: pageSize,
		keep:     keep,
		now:      time.Now,
	}
}

func (g *HeadlineGateway) FetchHeadlines(ctx context.Context, page int) ([]domain.Headline, error) {
	articles, err := g.fetcher.FetchTopHeadlines(ctx, page, g.pageSize)
	if err != nil {
		return nil, err
	}

	headlines := make([]domain.Headline, 0, g.keep)
	dropped := 0
	for _, article := range articles {
		if len(headlines) == g.keep {
			break
		}

		headline := domain.Headline{
			Title:       article.Title,
			SourceName:  article.Source.Name,
			URL:         article.URL,
			Description: article.Description,
			PublishedAt: article.PublishedAt,
		}
		if !headline.Valid() {
			dropped++
			continue
		}

		headline.URL = g.bustCache(headline.URL)
		headlines = append(headlines, headline)
	}

	if dropped > 0 {
		logger.Logger.InfoContext(ctx, "Dropped incomplete headline records", "dropped", dropped)
	}

	return headlines, nil
}

// bustCache appends a cache_bust query parameter carrying the current unix
// millisecond timestamp. Parsing through net/url keeps the parameter from
// being added twice and plays well with URLs that already carry a query.
func (g *HeadlineGateway) bustCache(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	vals := u.Query()
	vals.Set("cache_bust", strconv.FormatInt(g.now().UnixMilli(), 10))
	u.RawQuery = vals.Encode()

	return u.String()
}
