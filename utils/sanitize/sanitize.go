// Package sanitize prepares untrusted article text for the inference
// upstream. Feed payloads routinely arrive with embedded markup and
// entity-encoded fragments that would waste summarization tokens.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanText strips all HTML tags, decodes entities and collapses runs of
// whitespace into single spaces.
func CleanText(raw string) string {
	stripped := strictPolicy.Sanitize(raw)
	decoded := html.UnescapeString(stripped)
	return normalizeWhitespace(decoded)
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
