package crawler

import (
	"context"
	"time"

	"github.com/ashphythian/bayscraper/helpers"
	"github.com/ashphythian/bayscraper/internal/listing"
	"github.com/ashphythian/bayscraper/logger"
	"github.com/ashphythian/bayscraper/services/cache"
)

// EbayCrawler searches the eBay results page
type EbayCrawler struct {
	BaseCrawler
	Name      string
	BaseURL   string
	Selectors listing.Selectors
}

// NewEbayCrawler creates a new eBay crawler. cacheSvc may be nil, which
// disables the rate-limit block.
func NewEbayCrawler(config CrawlerConfig, cacheSvc cache.CacheService) *EbayCrawler {
	fetch := config.Fetch
	if fetch == nil {
		fetch = helpers.FetchWithRandomHeaders
	}

	name := config.Name
	if name == "" {
		name = "EbayCrawler"
	}

	return &EbayCrawler{
		BaseCrawler: BaseCrawler{
			CacheKey:  config.CacheKey,
			CacheSvc:  cacheSvc,
			BlockTime: time.Duration(config.BlockTime) * time.Second,
			fetch:     fetch,
		},
		Name:      name,
		BaseURL:   config.BaseURL,
		Selectors: config.Selectors,
	}
}

// GetName returns the crawler's name
func (c *EbayCrawler) GetName() string {
	return c.Name
}

// Search fetches and ranks one results page for q
func (c *EbayCrawler) Search(ctx context.Context, q listing.Query) (*listing.Result, error) {
	log := logger.ForCrawler(c.Name).WithField("keywords", q.Keywords)

	url, err := q.URL(c.BaseURL)
	if err != nil {
		return nil, err
	}

	utf8Body, err := c.fetchWithCache(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := c.createDocument(utf8Body)
	if err != nil {
		return nil, err
	}

	result, err := listing.Process(doc, c.Selectors, q)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("Results page did not have the expected shape")
		return nil, err
	}

	log.Debug().
		Int("extracted", result.Extracted).
		Int("matched", len(result.Listings)).
		Msg("Search completed")

	return result, nil
}
