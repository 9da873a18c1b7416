package config

import (
	"os"
	"strconv"
)

// DefaultSheetURL is the CSV export of the community spreadsheet.
const DefaultSheetURL = "https://docs.google.com/spreadsheets/d/1dUpWjrkeTVPtIuSVmvjXrt7zq-E_wYg-0e9JMl_glNA/export?format=csv&gid=1812115979"

// Config holds all application-level configuration
type Config struct {
	// Source feed
	SheetURL  string
	FetchMode string // "http" or "browser"

	// Fetcher
	HTTPTimeoutSeconds int
	MaxRetries         int
	RateLimitDelay     int // milliseconds between requests

	// Cache
	CacheTTLMinutes int

	// Output; empty disables the snapshot export
	CSVExportPath string
}

// Load reads configuration from environment variables or falls back to defaults
func Load() *Config {
	return &Config{
		SheetURL:           getEnv("SHEET_CSV_URL", DefaultSheetURL),
		FetchMode:          getEnv("FETCH_MODE", "http"),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		MaxRetries:         getEnvInt("MAX_RETRIES", 3),
		RateLimitDelay:     getEnvInt("RATE_LIMIT_DELAY_MS", 2000),
		CacheTTLMinutes:    getEnvInt("CACHE_TTL_MINUTES", 5),
		CSVExportPath:      getEnv("CSV_EXPORT_PATH", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
