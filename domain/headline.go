package domain

// Headline represents a normalized top-headline record served to the dashboard.
// Title, SourceName, URL and Description are always non-empty; raw upstream
// records that fail this are dropped during normalization, never repaired.
type Headline struct {
	Title       string `json:"title"`
	SourceName  string `json:"source_name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
}

// Valid reports whether the headline carries every required field.
func (h Headline) Valid() bool {
	return h.Title != "" && h.SourceName != "" && h.URL != "" && h.Description != ""
}
