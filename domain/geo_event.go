package domain

import "strings"

// EventCategory classifies a geo event for the dashboard map view.
type EventCategory string

const (
	CategoryPolitical     EventCategory = "Political"
	CategorySocial        EventCategory = "Social"
	CategoryEconomic      EventCategory = "Economic"
	CategoryEnvironmental EventCategory = "Environmental"
)

// EventSeverity grades how prominently an event is rendered.
type EventSeverity string

const (
	SeverityLow      EventSeverity = "Low"
	SeverityMedium   EventSeverity = "Medium"
	SeverityCritical EventSeverity = "Critical"
)

// GeoEvent is a normalized geo-tagged event record. The article URL doubles
// as the stable identifier. Latitude/Longitude are (0,0) when the source
// country could not be resolved.
type GeoEvent struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    EventCategory `json:"type"`
	Severity    EventSeverity `json:"severity"`
	Latitude    float64       `json:"lat"`
	Longitude   float64       `json:"lng"`
	Country     string        `json:"country"`
	Date        string        `json:"date"`
}

// Categorizer derives an event category from the source domain and, when the
// feed provides one, the document tone. Implementations must be pure.
type Categorizer func(sourceDomain string, tone float64) EventCategory

// CategorizeByDomain is the categorizer for feeds without tone data: outlets
// on government domains are treated as political coverage, everything else as
// social. It inspects the domain name only, not the content.
func CategorizeByDomain(sourceDomain string, _ float64) EventCategory {
	if strings.Contains(sourceDomain, "gov") {
		return CategoryPolitical
	}
	return CategorySocial
}

// CategorizeByTone maps a document tone score to a category. Only usable with
// feeds that carry tone data; kept as a drop-in replacement for
// CategorizeByDomain should such a feed be wired in.
func CategorizeByTone(_ string, tone float64) EventCategory {
	switch {
	case tone < -5:
		return CategoryPolitical
	case tone < 0:
		return CategoryEconomic
	case tone < 5:
		return CategorySocial
	default:
		return CategoryEnvironmental
	}
}

// SeverityRater grades an event's severity from the document tone.
// Implementations must be pure.
type SeverityRater func(tone float64) EventSeverity

// FixedSeverity is the rater for feeds without usable tone data: every event
// gets the same grade regardless of tone.
func FixedSeverity(severity EventSeverity) SeverityRater {
	return func(_ float64) EventSeverity {
		return severity
	}
}

// SeverityByTone grades severity from the absolute tone score. A drop-in
// replacement for FixedSeverity when a tone-carrying feed is wired in.
func SeverityByTone(tone float64) EventSeverity {
	if tone < 0 {
		tone = -tone
	}
	switch {
	case tone > 7:
		return SeverityCritical
	case tone > 3:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
