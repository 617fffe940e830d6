package worker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ashphythian/bayscraper/internal/crawler"
	"github.com/ashphythian/bayscraper/internal/listing"
	"github.com/ashphythian/bayscraper/logger"
	apperrors "github.com/ashphythian/bayscraper/pkg/errors"
	"github.com/ashphythian/bayscraper/services/publisher"
	"github.com/ashphythian/bayscraper/services/store"
)

// messageKey is the stream field carrying a search result
const messageKey = "listings"

// Worker runs the configured searches and hands their results on
type Worker struct {
	ctx           context.Context
	crawler       crawler.Crawler
	queries       []listing.Query
	publisher     publisher.Publisher
	store         store.Store
	crawlInterval time.Duration
	log           *logger.Logger
}

// NewWorker creates a new worker. st may be nil when snapshots are not kept.
func NewWorker(
	ctx context.Context,
	c crawler.Crawler,
	queries []listing.Query,
	pub publisher.Publisher,
	st store.Store,
	crawlInterval time.Duration,
) *Worker {
	return &Worker{
		ctx:           ctx,
		crawler:       c,
		queries:       queries,
		publisher:     pub,
		store:         st,
		crawlInterval: crawlInterval,
		log:           logger.ForWorker(),
	}
}

// Start runs a round of searches every crawl interval until the context is
// cancelled
func (w *Worker) Start() error {
	ticker := time.NewTicker(w.crawlInterval)
	defer ticker.Stop()

	for {
		start := time.Now()
		w.RunOnce()
		w.log.Debug().Dur("elapsed", time.Since(start)).Msg("Search round finished")

		select {
		case <-w.ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce runs every query in parallel and then trims the streams
func (w *Worker) RunOnce() {
	var wg sync.WaitGroup
	for _, q := range w.queries {
		wg.Add(1)
		go func(q listing.Query) {
			defer wg.Done()
			w.searchAndPublish(q)
		}(q)
	}
	wg.Wait()

	if err := w.publisher.TrimStreams(w.ctx); err != nil {
		w.log.Error().Err(err).Msg("Failed to trim streams")
	}
}

// searchAndPublish runs one search and publishes its result
func (w *Worker) searchAndPublish(q listing.Query) {
	log := w.log.WithFields(logger.Fields{
		"crawler":  w.crawler.GetName(),
		"keywords": q.Keywords,
	})

	result, err := w.crawler.Search(w.ctx, q)
	if err != nil {
		log.Error().Err(err).Str("failure", failureKind(err)).Msg("Search failed")
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal result")
		return
	}

	if err := w.publisher.Publish(w.ctx, messageKey, data); err != nil {
		log.Error().Err(err).Msg("Failed to publish result")
	}

	if w.store != nil {
		if err := w.store.SaveResult(w.ctx, result); err != nil {
			log.Error().Err(err).Msg("Failed to store result")
		}
	}

	if cheapest, ok := result.Cheapest(); ok {
		log.Info().
			Int("extracted", result.Extracted).
			Int("matched", len(result.Listings)).
			Str("cheapest", cheapest.Title).
			Float64("total_price", cheapest.TotalPrice).
			Msg("Search published")
	} else {
		log.Info().
			Int("extracted", result.Extracted).
			Msg("No listings matched")
	}
}

// failureKind names the class of a failed search for the logs. A page_shape
// failure means the results page layout no longer matches the selectors.
func failureKind(err error) string {
	switch {
	case apperrors.IsStructural(err):
		return "page_shape"
	case apperrors.IsType(err, apperrors.ErrorTypeRateLimit):
		return "rate_limit"
	case apperrors.IsType(err, apperrors.ErrorTypeValidation):
		return "query"
	default:
		return "fetch"
	}
}
