package summary_gateway

import (
	"context"
	"regexp"
	"strings"

	"commonwealth/utils/rate_limiter"
)

var analysisLabelPattern = regexp.MustCompile(`(?i)Analysis:`)

// articleSummarizer is the slice of the upstream client this gateway needs.
type articleSummarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// SummaryGateway fronts the inference upstream. It rate limits per host and
// cleans the generated text before it reaches the caller.
type SummaryGateway struct {
	summarizer  articleSummarizer
	rateLimiter *rate_limiter.HostRateLimiter
	endpointURL string
}

func NewSummaryGateway(summarizer articleSummarizer, rateLimiter *rate_limiter.HostRateLimiter, endpointURL string) *SummaryGateway {
	return &SummaryGateway{
		summarizer:  summarizer,
		rateLimiter: rateLimiter,
		endpointURL: endpointURL,
	}
}

func (g *SummaryGateway) SummarizeArticle(ctx context.Context, text string) (string, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, g.endpointURL); err != nil {
			return "", err
		}
	}

	summary, err := g.summarizer.Summarize(ctx, text)
	if err != nil {
		return "", err
	}

	return cleanAnalysis(summary), nil
}

// cleanAnalysis removes the model's occasional "Analysis:" label and
// collapses blank lines.
func cleanAnalysis(text string) string {
	cleaned := analysisLabelPattern.ReplaceAllString(text, "")

	lines := strings.Split(cleaned, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
