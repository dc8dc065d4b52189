package gdelt

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

const startDatetimeLayout = "20060102150405"

// Client queries the GDELT DOC 2.0 API for recent event coverage.
type Client struct {
	baseURL    string
	query      string
	maxRecords int
	windowDays int
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(baseURL, query string, maxRecords, windowDays int, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		query:      query,
		maxRecords: maxRecords,
		windowDays: windowDays,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// FetchArticles returns the raw article records of the lookback window. An
// upstream response with no articles is an empty slice, not an error.
func (c *Client) FetchArticles(ctx context.Context) ([]models.GDELTArticle, error) {
	endpoint, err := c.buildDocURL()
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
		metrics.RecordUpstreamRequest("gdelt", "error", time.Since(start).Seconds())
		logger.Logger.ErrorContext(ctx, "Failed to send request", "error", err)
		if isTimeoutError(err) {
			return nil, appErrors.NewOperationTimeoutError("driver", "gdelt", "FetchArticles", err, nil)
		}
		return nil, appErrors.NewUpstreamUnavailableError("driver", "gdelt", "FetchArticles", err, nil)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Logger.DebugContext(ctx, "Failed to close response body", "error", closeErr)
		}
	}()

	metrics.RecordUpstreamRequest("gdelt", strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to read response body", "error", err)
		return nil, errors.New("failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		logger.Logger.ErrorContext(ctx, "Event request failed", "status", resp.StatusCode, "body", string(body))
		return nil, appErrors.NewUpstreamUnavailableError(
			"driver", "gdelt", "FetchArticles",
			fmt.Errorf("event request failed with status %d", resp.StatusCode),
			map[string]interface{}{"status_code": resp.StatusCode},
		)
	}

	// DOC API reports query errors as plain text with a 200 status, so an
	// unmarshal failure here usually means a malformed query.
	var response models.GDELTDocResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logger.Logger.ErrorContext(ctx, "Failed to unmarshal response body", "error", err, "body_preview", preview(body))
		return nil, errors.New("failed to unmarshal response body")
	}

	logger.Logger.InfoContext(ctx, "Event response received", "count", len(response.Articles))

	if len(response.Articles) == 0 {
		return []models.GDELTArticle{}, nil
	}

	return response.Articles, nil
}

func (c *Client) buildDocURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	u.Path = "/api/v2/doc/doc"

	vals := url.Values{}
	vals.Add("query", c.query)
	vals.Add("format", "json")
	vals.Add("maxrecords", strconv.Itoa(c.maxRecords))
	vals.Add("startdatetime", c.now().UTC().AddDate(0, 0, -c.windowDays).Format(startDatetimeLayout))
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

func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "Timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}
