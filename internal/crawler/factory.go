package crawler

import (
	"github.com/ashphythian/bayscraper/config"
	"github.com/ashphythian/bayscraper/services/cache"
)

// CreateCrawler creates the eBay crawler described by the configuration
func CreateCrawler(cfg *config.Config, cacheSvc cache.CacheService) *EbayCrawler {
	return NewEbayCrawler(CrawlerConfig{
		Name:      "Ebay",
		BaseURL:   cfg.EbayBaseURL,
		CacheKey:  "ebay_rate_limited",
		BlockTime: int(cfg.BlockTime.Seconds()),
		Selectors: cfg.Selectors,
	}, cacheSvc)
}
