package domain

// AnalysisStatus tags the outcome of a single summarization item.
type AnalysisStatus string

const (
	AnalysisSuccess AnalysisStatus = "success"
	AnalysisError   AnalysisStatus = "error"
)

// AnalysisArticle is one article submitted for summarization. Title and URL
// are required; the REST boundary rejects the whole request when either is
// missing on any item.
type AnalysisArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
}

// Valid reports whether the article satisfies the request precondition.
func (a AnalysisArticle) Valid() bool {
	return a.Title != "" && a.URL != ""
}

// AnalysisResult is the per-article outcome of the summarization pipeline.
// Exactly one result is produced per processed article, in input order,
// whether or not the upstream call succeeded.
type AnalysisResult struct {
	Title          string         `json:"title"`
	Summary        string         `json:"summary"`
	ContentExcerpt string         `json:"content"`
	Status         AnalysisStatus `json:"status"`
	URL            string         `json:"url"`
	PublishedAt    string         `json:"published_at"`
}
