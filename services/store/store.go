package store

import (
	"context"

	"github.com/ashphythian/bayscraper/internal/listing"
)

// Store keeps snapshots of search results
type Store interface {
	// SaveResult records the ranked listings of one search
	SaveResult(ctx context.Context, result *listing.Result) error

	// Close releases the store's connections
	Close()
}
