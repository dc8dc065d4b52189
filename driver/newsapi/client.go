package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"commonwealth/driver/models"
	appErrors "commonwealth/utils/errors"
	"commonwealth/utils/logger"
	"commonwealth/utils/metrics"
)

// Client fetches top headlines from a NewsAPI-compatible upstream.
type Client struct {
	baseURL    string
	apiKey     string
	country    string
	category   string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, country, category string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		country:    country,
		category:   category,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchTopHeadlines requests one page of headlines. The page number rotates
// upstream sampling across cache windows; pageSize bounds the raw batch
// before the gateway trims it further.
func (c *Client) FetchTopHeadlines(ctx context.Context, page, pageSize int) ([]models.NewsAPIArticle, error) {
	endpoint, err := c.buildHeadlinesURL(page, pageSize)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to create request", "error", err)
		return nil, errors.New("failed to create request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "commonwealth/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest("newsapi", "error", time.Since(start).Seconds())
		logger.Logger.ErrorContext(ctx, "Failed to send request", "error", err)
		if isTimeoutError(err) {
			return nil, appErrors.NewOperationTimeoutError("driver", "newsapi", "FetchTopHeadlines", err, nil)
		}
		return nil, appErrors.NewUpstreamUnavailableError("driver", "newsapi", "FetchTopHeadlines", err, nil)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Logger.DebugContext(ctx, "Failed to close response body", "error", closeErr)
		}
	}()

	metrics.RecordUpstreamRequest("newsapi", strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to read response body", "error", err)
		return nil, errors.New("failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		logger.Logger.ErrorContext(ctx, "Headlines request failed", "status", resp.StatusCode, "body", string(body))
		return nil, appErrors.NewUpstreamUnavailableError(
			"driver", "newsapi", "FetchTopHeadlines",
			fmt.Errorf("headlines request failed with status %d", resp.StatusCode),
			map[string]interface{}{"status_code": resp.StatusCode},
		)
	}

	var response models.NewsAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to unmarshal response body", "error", err, "body_preview", preview(body))
		return nil, errors.New("failed to unmarshal response body")
	}

	if response.Status != "ok" {
		logger.Logger.ErrorContext(ctx, "Upstream reported failure", "code", response.Code, "message", response.Message)
		return nil, appErrors.NewUpstreamUnavailableError(
			"driver", "newsapi", "FetchTopHeadlines",
			fmt.Errorf("upstream status %q: %s", response.Status, response.Message),
			map[string]interface{}{"upstream_code": response.Code},
		)
	}

	logger.Logger.InfoContext(ctx, "Headlines response received", "count", len(response.Articles), "page", page)

	return response.Articles, nil
}

func (c *Client) buildHeadlinesURL(page, pageSize int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	u.Path = "/v2/top-headlines"

	vals := url.Values{}
	vals.Add("country", c.country)
	vals.Add("category", c.category)
	vals.Add("apiKey", c.apiKey)
	vals.Add("pageSize", strconv.Itoa(pageSize))
	vals.Add("page", strconv.Itoa(page))
	u.RawQuery = vals.Encode()

	return u.String(), nil
}

func preview(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}

// isTimeoutError checks if the error is a timeout error
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "Timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}
