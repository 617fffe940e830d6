package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ashphythian/bayscraper/internal/listing"
	apperrors "github.com/ashphythian/bayscraper/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string

	// Postgres snapshot store, disabled when empty
	DatabaseURL string

	// Crawler configuration
	CrawlInterval time.Duration
	BlockTime     time.Duration
	EbayBaseURL   string
	Selectors     listing.Selectors

	// Searches run by the worker
	Queries []listing.Query

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "1000"))
	crawlInterval, _ := strconv.Atoi(getEnv("CRAWL_INTERVAL_SECONDS", "300"))
	blockTime, _ := strconv.Atoi(getEnv("BLOCK_TIME_SECONDS", "600"))

	selectors := listing.DefaultSelectors
	selectors.Container = getEnv("EBAY_CONTAINER_SELECTOR", selectors.Container)
	if item, ok := os.LookupEnv("EBAY_ITEM_SELECTOR"); ok {
		selectors.Item = item
	}

	return Config{
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "listings"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLength,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		CrawlInterval:        time.Duration(crawlInterval) * time.Second,
		BlockTime:            time.Duration(blockTime) * time.Second,
		EbayBaseURL:          getEnv("EBAY_BASE_URL", "https://www.ebay.co.uk/sch/i.html"),
		Selectors:            selectors,
		Queries:              parseQueries(),
		Environment:          getEnv("BAYSCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate reports the first setting that cannot work
func (c Config) Validate() error {
	if c.EbayBaseURL == "" {
		return apperrors.NewConfiguration("EBAY_BASE_URL is empty", nil)
	}
	if c.CrawlInterval <= 0 {
		return apperrors.NewConfiguration("CRAWL_INTERVAL_SECONDS must be positive", nil)
	}
	if c.RedisStreamCount <= 0 {
		return apperrors.NewConfiguration("REDIS_STREAM_COUNT must be positive", nil)
	}
	if len(c.Queries) == 0 {
		return apperrors.NewConfiguration("SEARCH_QUERIES is empty", nil)
	}
	for _, q := range c.Queries {
		if q.MinPrice < 0 || q.MaxPrice < 0 {
			return apperrors.NewConfiguration(fmt.Sprintf("negative price bound for %q", q.Keywords), nil)
		}
	}
	return nil
}

// parseQueries builds one query per ";"-separated entry of SEARCH_QUERIES.
// Exclusions and the price window are shared by every query.
func parseQueries() []listing.Query {
	exclusions := os.Getenv("SEARCH_EXCLUSIONS")
	minPrice := getEnvFloat("SEARCH_MIN_PRICE", 0)
	maxPrice := getEnvFloat("SEARCH_MAX_PRICE", listing.DefaultMaxPrice)

	var queries []listing.Query
	for _, keywords := range strings.Split(os.Getenv("SEARCH_QUERIES"), ";") {
		keywords = strings.TrimSpace(keywords)
		if keywords == "" {
			continue
		}
		queries = append(queries, listing.Query{
			Keywords:   keywords,
			Exclusions: exclusions,
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
		})
	}
	return queries
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}
