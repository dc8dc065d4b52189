package summary_gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commonwealth/utils/rate_limiter"
)

type stubSummarizer struct {
	summary string
	err     error
	gotText string
	calls   int
}

func (s *stubSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.gotText = text
	s.calls++
	return s.summary, s.err
}

func TestSummaryGateway_SummarizeArticle(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		err     error
		want    string
		wantErr bool
	}{
		{
			name:    "passes summary through",
			summary: "The article describes a trade agreement.",
			want:    "The article describes a trade agreement.",
		},
		{
			name:    "strips analysis label",
			summary: "Analysis: Markets reacted positively.",
			want:    "Markets reacted positively.",
		},
		{
			name:    "collapses blank lines and trims",
			summary: "  First point.\n\n\nSecond point.\n",
			want:    "First point.\nSecond point.",
		},
		{
			name:    "upstream error passes through",
			err:     errors.New("model is loading"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubSummarizer{summary: tt.summary, err: tt.err}
			gateway := NewSummaryGateway(stub, nil, "https://inference.example.com")

			got, err := gateway.SummarizeArticle(context.Background(), "input text")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "input text", stub.gotText)
		})
	}
}

func TestSummaryGateway_RateLimiting(t *testing.T) {
	stub := &stubSummarizer{summary: "ok"}
	limiter := rate_limiter.NewHostRateLimiter(5 * time.Second)
	gateway := NewSummaryGateway(stub, limiter, "https://inference.example.com/models")

	// First call consumes the limiter token
	_, err := gateway.SummarizeArticle(context.Background(), "first")
	require.NoError(t, err)

	// Second call must respect the interval; an expired context surfaces
	// the limiter error and never reaches the upstream.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = gateway.SummarizeArticle(ctx, "second")
	require.Error(t, err)
	assert.Equal(t, 1, stub.calls)
}
