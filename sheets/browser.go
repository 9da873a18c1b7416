package sheets

import (
	"context"
	"fmt"
	"time"

	"coffee-dashboard/config"
	"coffee-dashboard/utils"

	"github.com/chromedp/chromedp"
)

// BrowserFetcher retrieves the sheet through a headless browser. It targets
// the published HTML view of the spreadsheet and rebuilds CSV text from the
// rendered table, for deployments where the raw CSV export endpoint answers
// with a consent or login interstitial instead of data.
type BrowserFetcher struct {
	cfg         *config.Config
	logger      *utils.Logger
	rateLimiter *utils.RateLimiter
}

// NewBrowserFetcher creates a new BrowserFetcher
func NewBrowserFetcher(cfg *config.Config, logger *utils.Logger) *BrowserFetcher {
	return &BrowserFetcher{
		cfg:         cfg,
		logger:      logger,
		rateLimiter: utils.NewRateLimiter(cfg.RateLimitDelay),
	}
}

// newContext creates a fresh chromedp context (one browser, one tab at a time)
func (f *BrowserFetcher) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Fetch loads the sheet page and serializes the first rendered table to CSV.
func (f *BrowserFetcher) Fetch(ctx context.Context) (string, error) {
	f.logger.Info("Fetching sheet via headless browser...")

	bctx, cancel := f.newContext(ctx)
	defer cancel()

	bctx, cancelTimeout := context.WithTimeout(bctx, 3*time.Minute)
	defer cancelTimeout()

	var csv string
	err := utils.RetryWithBackoff(ctx, f.cfg.MaxRetries, func() error {
		f.rateLimiter.Wait()

		err := chromedp.Run(bctx,
			chromedp.Navigate(f.cfg.SheetURL),
			chromedp.Sleep(4*time.Second), // give the sheet time to render
		)
		if err != nil {
			return fmt.Errorf("sheet navigation failed: %w", err)
		}

		err = chromedp.Run(bctx, chromedp.Evaluate(`
			(function() {
				var table = document.querySelector('table');
				if (!table) return '';

				var quote = function(v) {
					v = (v || '').replace(/ /g, ' ');
					if (/[",\n]/.test(v)) {
						return '"' + v.replace(/"/g, '""') + '"';
					}
					return v;
				};

				var lines = [];
				table.querySelectorAll('tr').forEach(function(tr) {
					var cells = tr.querySelectorAll('td, th');
					if (cells.length === 0) return;
					var fields = [];
					cells.forEach(function(cell) {
						fields.push(quote(cell.innerText));
					});
					lines.push(fields.join(','));
				});
				return lines.join('\n');
			})()
		`, &csv))
		if err != nil {
			return fmt.Errorf("table extraction failed: %w", err)
		}
		if csv == "" {
			return fmt.Errorf("no table found on sheet page")
		}
		return nil
	}, f.logger)
	if err != nil {
		return "", err
	}

	f.logger.Info("Extracted sheet table via browser (%d bytes)", len(csv))
	return csv, nil
}
