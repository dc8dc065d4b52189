package rest

import "commonwealth/domain"

// HeadlineResponse is the wire shape the dashboard ticker consumes. The
// source name sits in a nested object for compatibility with the upstream
// headline format the client already parses.
type HeadlineResponse struct {
	Title       string         `json:"title"`
	Source      headlineSource `json:"source"`
	URL         string         `json:"url"`
	Description string         `json:"description"`
	PublishedAt string         `json:"publishedAt"`
}

type headlineSource struct {
	Name string `json:"name"`
}

func toHeadlineResponses(headlines []domain.Headline) []HeadlineResponse {
	responses := make([]HeadlineResponse, 0, len(headlines))
	for _, h := range headlines {
		responses = append(responses, HeadlineResponse{
			Title:       h.Title,
			Source:      headlineSource{Name: h.SourceName},
			URL:         h.URL,
			Description: h.Description,
			PublishedAt: h.PublishedAt,
		})
	}
	return responses
}

type AnalyzeArticlesRequest struct {
	Articles []AnalyzeArticleItem `json:"articles"`
}

type AnalyzeArticleItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

func (r AnalyzeArticlesRequest) toDomain() []domain.AnalysisArticle {
	articles := make([]domain.AnalysisArticle, 0, len(r.Articles))
	for _, item := range r.Articles {
		articles = append(articles, domain.AnalysisArticle{
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
		})
	}
	return articles
}

type HealthResponse struct {
	Status string `json:"status"`
}
