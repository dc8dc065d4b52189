package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commonwealth/driver/models"
	"commonwealth/utils/logger"
)

func TestClient_Summarize(t *testing.T) {
	logger.InitLogger()

	tests := []struct {
		name        string
		status      int
		body        string
		wantSummary string
		wantErr     string
	}{
		{
			name:        "successful summarization",
			status:      http.StatusOK,
			body:        `[{"summary_text":"A concise summary of the article."}]`,
			wantSummary: "A concise summary of the article.",
		},
		{
			name:    "model loading error payload",
			status:  http.StatusServiceUnavailable,
			body:    `{"error":"Model facebook/bart-large-cnn is currently loading","estimated_time":20.5}`,
			wantErr: "Model facebook/bart-large-cnn is currently loading",
		},
		{
			name:    "non-json failure body",
			status:  http.StatusInternalServerError,
			body:    "internal error",
			wantErr: "inference request failed with status 500",
		},
		{
			name:    "empty result array",
			status:  http.StatusOK,
			body:    `[]`,
			wantErr: "inference returned no summary",
		},
		{
			name:    "unexpected payload shape",
			status:  http.StatusOK,
			body:    `{"generated_text":"not an array"}`,
			wantErr: "Invalid inference output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/models/facebook/bart-large-cnn", r.URL.Path)
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

				var req models.SummarizationRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "Some article text", req.Inputs)
				assert.Equal(t, 450, req.Parameters.MaxLength)
				assert.Equal(t, 150, req.Parameters.MinLength)
				assert.False(t, req.Parameters.DoSample)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-token", "facebook/bart-large-cnn", 450, 150, 5*time.Second)

			summary, err := client.Summarize(context.Background(), "Some article text")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSummary, summary)
		})
	}
}

func TestClient_Summarize_NoTokenOmitsAuthHeader(t *testing.T) {
	logger.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"summary_text":"ok"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "facebook/bart-large-cnn", 450, 150, time.Second)

	summary, err := client.Summarize(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "ok", summary)
}
