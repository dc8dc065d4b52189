package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"commonwealth/driver/models"
	appErrors "commonwealth/utils/errors"
	"commonwealth/utils/logger"
	"commonwealth/utils/metrics"
)

// Client calls a hosted inference API for abstractive summarization.
type Client struct {
	baseURL    string
	token      string
	model      string
	maxLength  int
	minLength  int
	httpClient *http.Client
}

func NewClient(baseURL, token, model string, maxLength, minLength int, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		model:      model,
		maxLength:  maxLength,
		minLength:  minLength,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Summarize sends one article extract to the inference model and returns the
// generated summary text. Upstream error payloads surface as plain errors so
// the caller can fold them into per-item results.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	payload := models.SummarizationRequest{
		Inputs: text,
		Parameters: models.SummarizationParameters{
			MaxLength: c.maxLength,
			MinLength: c.minLength,
			DoSample:  false,
		},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s", strings.TrimRight(c.baseURL, "/"), c.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to create request", "error", err)
		return "", errors.New("failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest("summarizer", "error", time.Since(start).Seconds())
		logger.Logger.ErrorContext(ctx, "Failed to send request", "error", err)
		if isTimeoutError(err) {
			return "", appErrors.NewOperationTimeoutError("driver", "summarizer", "Summarize", err, nil)
		}
		return "", appErrors.NewUpstreamUnavailableError("driver", "summarizer", "Summarize", err, nil)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Logger.DebugContext(ctx, "Failed to close response body", "error", closeErr)
		}
	}()

	metrics.RecordUpstreamRequest("summarizer", strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to read response body", "error", err)
		return "", errors.New("failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr models.SummarizationError
		if unmarshalErr := json.Unmarshal(body, &apiErr); unmarshalErr == nil && apiErr.Error != "" {
			logger.Logger.ErrorContext(ctx, "Inference request rejected", "status", resp.StatusCode, "upstream_error", apiErr.Error)
			return "", errors.New(apiErr.Error)
		}
		logger.Logger.ErrorContext(ctx, "Inference request failed", "status", resp.StatusCode, "body", string(body))
		return "", fmt.Errorf("inference request failed with status %d", resp.StatusCode)
	}

	var results []models.SummarizationResult
	if err := json.Unmarshal(body, &results); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to unmarshal response body", "error", err, "body_preview", string(body))
		return "", fmt.Errorf("Invalid inference output: %s", string(body))
	}

	if len(results) == 0 || results[0].SummaryText == "" {
		return "", errors.New("inference returned no summary")
	}

	logger.Logger.InfoContext(ctx, "Summary received", "length", len(results[0].SummaryText))

	return results[0].SummaryText, nil
}

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "Timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}
