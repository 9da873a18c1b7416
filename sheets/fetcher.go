package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"coffee-dashboard/config"
	"coffee-dashboard/utils"
)

// Fetcher retrieves the full CSV text of the spreadsheet export.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// HTTPFetcher downloads the CSV export over plain HTTP
type HTTPFetcher struct {
	cfg         *config.Config
	logger      *utils.Logger
	client      *http.Client
	rateLimiter *utils.RateLimiter
}

// NewHTTPFetcher creates a new HTTPFetcher
func NewHTTPFetcher(cfg *config.Config, logger *utils.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		cfg:    cfg,
		logger: logger,
		client: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		},
		rateLimiter: utils.NewRateLimiter(cfg.RateLimitDelay),
	}
}

// Fetch GETs the sheet URL and returns the whole response body. The body is
// read in full before any parsing happens; there is no streaming consumption.
func (f *HTTPFetcher) Fetch(ctx context.Context) (string, error) {
	var body string

	err := utils.RetryWithBackoff(ctx, f.cfg.MaxRetries, func() error {
		f.rateLimiter.Wait()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.SheetURL, nil)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return fmt.Errorf("sheet request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("sheet request returned status %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		body = string(data)
		return nil
	}, f.logger)
	if err != nil {
		return "", err
	}

	f.logger.Info("Fetched sheet CSV (%d bytes)", len(body))
	return body, nil
}
