package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error with cause",
			err:  ExternalAPIError("headline fetch failed", fmt.Errorf("connection refused"), nil),
			want: "EXTERNAL_API_ERROR: headline fetch failed (caused by: connection refused)",
		},
		{
			name: "error without cause",
			err:  ValidationError("articles must contain title and url", nil),
			want: "VALIDATION_ERROR: articles must contain title and url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinelWrapping(t *testing.T) {
	cause := fmt.Errorf("dial tcp: i/o timeout")
	err := NewUpstreamUnavailableError("usecase", "FetchHeadlinesUsecase", "Execute", cause, nil)

	if !IsUpstreamUnavailable(err) {
		t.Error("expected errors.Is to match ErrUpstreamUnavailable through the wrap chain")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected original cause to remain reachable via errors.Is")
	}
	if !err.IsRetryable() {
		t.Error("expected upstream unavailable to be retryable")
	}
}

func TestHTTPStatusCodeMapping(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"VALIDATION_ERROR", http.StatusBadRequest},
		{"EXTERNAL_API_ERROR", http.StatusServiceUnavailable},
		{"TIMEOUT_ERROR", http.StatusGatewayTimeout},
		{"RATE_LIMIT_ERROR", http.StatusTooManyRequests},
		{"UNKNOWN_ERROR", http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &AppContextError{Code: tt.code}
			if got := err.HTTPStatusCode(); got != tt.want {
				t.Errorf("HTTPStatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnrichWithContextMergesContext(t *testing.T) {
	base := NewExternalAPIContextError("event fetch failed", "gateway", "EventGateway", "FetchEvents", nil, map[string]interface{}{
		"upstream": "gdelt",
	})

	enriched := EnrichWithContext(base, "rest", "RESTHandler", "GetEvents", map[string]interface{}{
		"path": "/v1/events",
	})

	if enriched.Layer != "rest" {
		t.Errorf("expected layer to be overwritten, got %q", enriched.Layer)
	}
	if enriched.Context["upstream"] != "gdelt" {
		t.Error("expected original context to be preserved")
	}
	if enriched.Context["path"] != "/v1/events" {
		t.Error("expected additional context to be merged")
	}
}
