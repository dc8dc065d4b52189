package domain

import "testing"

func TestCategorizeByDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   EventCategory
	}{
		{
			name:   "government domain is political",
			domain: "state.gov",
			want:   CategoryPolitical,
		},
		{
			name:   "gov substring anywhere counts",
			domain: "news.gov.uk",
			want:   CategoryPolitical,
		},
		{
			name:   "commercial outlet is social",
			domain: "example.com",
			want:   CategorySocial,
		},
		{
			name:   "empty domain is social",
			domain: "",
			want:   CategorySocial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeByDomain(tt.domain, 0); got != tt.want {
				t.Errorf("CategorizeByDomain(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestCategorizeByTone(t *testing.T) {
	tests := []struct {
		name string
		tone float64
		want EventCategory
	}{
		{name: "strongly negative is political", tone: -6.5, want: CategoryPolitical},
		{name: "mildly negative is economic", tone: -1.2, want: CategoryEconomic},
		{name: "neutral is social", tone: 0, want: CategorySocial},
		{name: "mildly positive is social", tone: 4.9, want: CategorySocial},
		{name: "strongly positive is environmental", tone: 5.0, want: CategoryEnvironmental},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategorizeByTone("ignored.example", tt.tone); got != tt.want {
				t.Errorf("CategorizeByTone(%v) = %v, want %v", tt.tone, got, tt.want)
			}
		})
	}
}

func TestSeverityByTone(t *testing.T) {
	tests := []struct {
		name string
		tone float64
		want EventSeverity
	}{
		{name: "extreme negative tone is critical", tone: -8, want: SeverityCritical},
		{name: "extreme positive tone is critical", tone: 7.1, want: SeverityCritical},
		{name: "moderate tone is medium", tone: 3.5, want: SeverityMedium},
		{name: "boundary stays medium side", tone: 7, want: SeverityMedium},
		{name: "calm tone is low", tone: 1, want: SeverityLow},
		{name: "zero tone is low", tone: 0, want: SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeverityByTone(tt.tone); got != tt.want {
				t.Errorf("SeverityByTone(%v) = %v, want %v", tt.tone, got, tt.want)
			}
		})
	}
}

func TestHeadlineValid(t *testing.T) {
	full := Headline{Title: "A", SourceName: "S", URL: "u", Description: "d"}
	if !full.Valid() {
		t.Error("expected complete headline to be valid")
	}

	missing := []Headline{
		{SourceName: "S", URL: "u", Description: "d"},
		{Title: "A", URL: "u", Description: "d"},
		{Title: "A", SourceName: "S", Description: "d"},
		{Title: "A", SourceName: "S", URL: "u"},
	}
	for i, h := range missing {
		if h.Valid() {
			t.Errorf("case %d: expected headline with missing field to be invalid", i)
		}
	}
}
