package crawler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"github.com/ashphythian/bayscraper/logger"
	apperrors "github.com/ashphythian/bayscraper/pkg/errors"
	"github.com/ashphythian/bayscraper/services/cache"

	"github.com/PuerkitoBio/goquery"
)

// BaseCrawler provides the fetch and parse steps shared by crawlers
type BaseCrawler struct {
	CacheKey  string
	CacheSvc  cache.CacheService
	BlockTime time.Duration
	fetch     FetchFunc
}

// fetchWithCache fetches url unless a rate-limit block is in place. When the
// site reports rate limiting, a block is recorded for BlockTime.
func (c *BaseCrawler) fetchWithCache(ctx context.Context, url string) (io.Reader, error) {
	if c.CacheSvc != nil && c.CacheKey != "" {
		_, err := c.CacheSvc.Get(c.CacheKey)
		if err == nil {
			return nil, apperrors.NewRateLimit(c.CacheKey, c.BlockTime)
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			// An unreachable cache must not stop searching
			logger.ForCache().Warn().Err(err).Str("key", c.CacheKey).Msg("Rate-limit check failed")
		}
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeRateLimit) && c.CacheSvc != nil && c.CacheKey != "" {
			value := []byte(fmt.Sprintf("%d", int(c.BlockTime/time.Second)))
			if setErr := c.CacheSvc.Set(c.CacheKey, value, c.BlockTime); setErr != nil {
				logger.ForCache().Warn().Err(setErr).Str("key", c.CacheKey).Msg("Failed to record rate-limit block")
			}
		}
		return nil, err
	}

	return body, nil
}

// createDocument creates a goquery document from a reader
func (c *BaseCrawler) createDocument(reader io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, apperrors.NewParsing(c.CacheKey, "failed to parse HTML", err)
	}
	return doc, nil
}

// GetName returns the crawler's type name for logging
func (c *BaseCrawler) GetName() string {
	return reflect.TypeOf(c).Elem().Name()
}
