package di

import (
	"fmt"

	"commonwealth/config"
	"commonwealth/domain"
	"commonwealth/driver/gdelt"
	"commonwealth/driver/newsapi"
	"commonwealth/driver/summarizer"
	"commonwealth/gateway/event_gateway"
	"commonwealth/gateway/headline_gateway"
	"commonwealth/gateway/summary_gateway"
	"commonwealth/usecase/analyze_articles_usecase"
	"commonwealth/usecase/fetch_events_usecase"
	"commonwealth/usecase/fetch_headlines_usecase"
	"commonwealth/utils/geo"
	"commonwealth/utils/rate_limiter"
)

type ApplicationComponents struct {
	FetchHeadlinesUsecase  *fetch_headlines_usecase.FetchHeadlinesUsecase
	FetchEventsUsecase     *fetch_events_usecase.FetchEventsUsecase
	AnalyzeArticlesUsecase *analyze_articles_usecase.AnalyzeArticlesUsecase
}

func NewApplicationComponents(cfg *config.Config) *ApplicationComponents {
	// Headlines: upstream client behind the validating gateway, cached by
	// the usecase.
	newsClient := newsapi.NewClient(
		cfg.NewsAPI.BaseURL,
		cfg.NewsAPI.APIKey,
		cfg.NewsAPI.Country,
		cfg.NewsAPI.Category,
		cfg.NewsAPI.Timeout,
	)
	headlineGatewayImpl := headline_gateway.NewHeadlineGateway(newsClient, cfg.NewsAPI.PageSize, cfg.NewsAPI.MaxHeadlines)
	fetchHeadlinesUsecase := fetch_headlines_usecase.NewFetchHeadlinesUsecase(headlineGatewayImpl, cfg.Cache.NewsTTL)

	// Events: normalization with the domain-based categorizer and the
	// static coordinate table.
	gdeltClient := gdelt.NewClient(
		cfg.GDELT.BaseURL,
		cfg.GDELT.Query,
		cfg.GDELT.MaxRecords,
		cfg.GDELT.WindowDays,
		cfg.GDELT.Timeout,
	)
	eventGatewayImpl := event_gateway.NewEventGateway(gdeltClient, geo.NewInMemory(), domain.CategorizeByDomain, domain.FixedSeverity(domain.SeverityMedium), cfg.GDELT.MaxEvents)
	fetchEventsUsecase := fetch_events_usecase.NewFetchEventsUsecase(eventGatewayImpl)

	// Analysis: inference client rate limited per host.
	summarizerClient := summarizer.NewClient(
		cfg.Summarizer.BaseURL,
		cfg.Summarizer.Token,
		cfg.Summarizer.Model,
		cfg.Summarizer.MaxLength,
		cfg.Summarizer.MinLength,
		cfg.Summarizer.Timeout,
	)
	summarizerLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.SummarizerInterval)
	summarizerEndpoint := fmt.Sprintf("%s/models/%s", cfg.Summarizer.BaseURL, cfg.Summarizer.Model)
	summaryGatewayImpl := summary_gateway.NewSummaryGateway(summarizerClient, summarizerLimiter, summarizerEndpoint)
	analyzeArticlesUsecase := analyze_articles_usecase.NewAnalyzeArticlesUsecase(summaryGatewayImpl, cfg.Summarizer.MaxArticles)

	return &ApplicationComponents{
		FetchHeadlinesUsecase:  fetchHeadlinesUsecase,
		FetchEventsUsecase:     fetchEventsUsecase,
		AnalyzeArticlesUsecase: analyzeArticlesUsecase,
	}
}
