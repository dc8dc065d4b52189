package sanitize

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain text passes through",
			raw:  "Markets rallied on Monday.",
			want: "Markets rallied on Monday.",
		},
		{
			name: "strips tags",
			raw:  "<p>Breaking: <b>talks</b> resume</p>",
			want: "Breaking: talks resume",
		},
		{
			name: "removes script content",
			raw:  "Before<script>alert(1)</script>After",
			want: "BeforeAfter",
		},
		{
			name: "decodes entities",
			raw:  "Profit &amp; loss &lt;2024&gt;",
			want: "Profit & loss <2024>",
		},
		{
			name: "collapses whitespace",
			raw:  "  too \n\t many   spaces  ",
			want: "too many spaces",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.raw); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
