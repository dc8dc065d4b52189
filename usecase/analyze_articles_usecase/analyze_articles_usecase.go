package analyze_articles_usecase

import (
	"context"
	"strings"

	"commonwealth/domain"
	"commonwealth/port/summary_port"
	"commonwealth/utils/logger"
	"commonwealth/utils/metrics"
	"commonwealth/utils/sanitize"
)

const (
	extractLimit        = 2000
	successExcerptLimit = 500
	errorExcerptLimit   = 300

	insufficientContentSummary = "Insufficient content for analysis"
	noReadableContentExcerpt   = "No readable content provided"

	inferenceOutputPrefix = "Invalid inference output: "
)

// AnalyzeArticlesUsecase runs the bounded summarization pipeline. Articles
// beyond the batch limit are ignored, the rest are processed strictly in
// order, and a failed item becomes an error result without stopping the
// batch.
type AnalyzeArticlesUsecase struct {
	summarizePort summary_port.SummarizeArticlePort
	maxItems      int
}

func NewAnalyzeArticlesUsecase(summarizePort summary_port.SummarizeArticlePort, maxItems int) *AnalyzeArticlesUsecase {
	return &AnalyzeArticlesUsecase{
		summarizePort: summarizePort,
		maxItems:      maxItems,
	}
}

func (u *AnalyzeArticlesUsecase) Execute(ctx context.Context, articles []domain.AnalysisArticle) ([]domain.AnalysisResult, error) {
	batch := articles
	if len(batch) > u.maxItems {
		batch = batch[:u.maxItems]
	}

	results := make([]domain.AnalysisResult, 0, len(batch))
	for _, article := range batch {
		results = append(results, u.analyzeOne(ctx, article))
	}

	return results, nil
}

func (u *AnalyzeArticlesUsecase) analyzeOne(ctx context.Context, article domain.AnalysisArticle) domain.AnalysisResult {
	extract := buildExtract(article)
	if extract == "" {
		metrics.RecordAnalyzeItem(string(domain.AnalysisError))
		return domain.AnalysisResult{
			Title:          article.Title,
			Summary:        insufficientContentSummary,
			ContentExcerpt: noReadableContentExcerpt,
			Status:         domain.AnalysisError,
			URL:            article.URL,
			PublishedAt:    article.PublishedAt,
		}
	}

	summary, err := u.summarizePort.SummarizeArticle(ctx, extract)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Article analysis failed", "error", err, "url", article.URL)
		metrics.RecordAnalyzeItem(string(domain.AnalysisError))
		return domain.AnalysisResult{
			Title:          article.Title,
			Summary:        errorSummary(err),
			ContentExcerpt: excerpt(extract, errorExcerptLimit),
			Status:         domain.AnalysisError,
			URL:            article.URL,
			PublishedAt:    article.PublishedAt,
		}
	}

	metrics.RecordAnalyzeItem(string(domain.AnalysisSuccess))
	return domain.AnalysisResult{
		Title:          article.Title,
		Summary:        summary,
		ContentExcerpt: excerpt(extract, successExcerptLimit),
		Status:         domain.AnalysisSuccess,
		URL:            article.URL,
		PublishedAt:    article.PublishedAt,
	}
}

// buildExtract assembles the model input from the parts the client sent,
// sanitized and capped so oversized articles do not blow the inference
// request budget.
func buildExtract(article domain.AnalysisArticle) string {
	parts := []string{
		sanitize.CleanText(article.Title),
		sanitize.CleanText(article.Description),
		sanitize.CleanText(article.Content),
	}

	joined := strings.Join(parts, "\n")
	runes := []rune(joined)
	if len(runes) > extractLimit {
		joined = string(runes[:extractLimit])
	}

	return strings.TrimSpace(joined)
}

// errorSummary folds an upstream failure into the per-item summary field,
// dropping the inference SDK's noisy output prefix.
func errorSummary(err error) string {
	message := err.Error()
	if message == "" {
		return "Analysis failed"
	}
	return strings.Replace(message, inferenceOutputPrefix, "", 1)
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return text + "..."
}
