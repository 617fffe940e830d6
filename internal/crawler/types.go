package crawler

import (
	"context"
	"io"

	"github.com/ashphythian/bayscraper/internal/listing"
)

// Crawler interface defines the contract for search crawlers
type Crawler interface {
	// Search fetches one results page for q and ranks its listings
	Search(ctx context.Context, q listing.Query) (*listing.Result, error)

	// GetName returns the crawler's name for logging and identification
	GetName() string
}

// FetchFunc retrieves a page and returns it as UTF-8
type FetchFunc func(ctx context.Context, url string) (io.Reader, error)

// CrawlerConfig contains configuration for a crawler
type CrawlerConfig struct {
	Name      string
	BaseURL   string
	CacheKey  string
	BlockTime int
	Selectors listing.Selectors
	// Fetch overrides the HTTP fetch, mainly for tests
	Fetch FetchFunc
}
