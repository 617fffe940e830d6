package store

import (
	"context"
	"fmt"
	"time"

	"github.com/ashphythian/bayscraper/internal/listing"
	"github.com/ashphythian/bayscraper/logger"
	apperrors "github.com/ashphythian/bayscraper/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS search_listings (
	id BIGSERIAL PRIMARY KEY,
	keywords TEXT NOT NULL,
	exclusions TEXT NOT NULL DEFAULT '',
	rank INTEGER NOT NULL,
	title TEXT NOT NULL,
	price NUMERIC(12,2) NOT NULL,
	postage NUMERIC(12,2) NOT NULL,
	total_price NUMERIC(12,2) NOT NULL,
	link TEXT NOT NULL,
	image TEXT NOT NULL DEFAULT '',
	searched_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_search_listings_keywords ON search_listings(keywords, searched_at);
`

const insertSQL = `
INSERT INTO search_listings (keywords, exclusions, rank, title, price, postage, total_price, link, image, searched_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

// PostgresStore writes search snapshots to Postgres
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to dsn and makes sure the schema exists
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, apperrors.NewStore("postgres", "failed to create pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.NewStore("postgres", "failed to connect", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the snapshot table if needed
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return apperrors.NewStore("postgres", "failed to ensure schema", err)
	}
	return nil
}

// SaveResult inserts every ranked listing of result in one batch
func (s *PostgresStore) SaveResult(ctx context.Context, result *listing.Result) error {
	if result == nil || result.Empty() {
		return nil
	}

	batch := snapshotBatch(result)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return apperrors.NewStore("postgres", fmt.Sprintf("batch insert failed at row %d", i), err)
		}
	}

	logger.ForStore().Debug().
		Str("keywords", result.Query.Keywords).
		Int("rows", batch.Len()).
		Msg("Stored search snapshot")
	return nil
}

// Close closes the pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func snapshotBatch(result *listing.Result) *pgx.Batch {
	batch := &pgx.Batch{}
	for rank, l := range result.Listings {
		batch.Queue(
			insertSQL,
			result.Query.Keywords,
			result.Query.Exclusions,
			rank+1,
			l.Title,
			l.Price,
			l.ShippingCost,
			l.TotalPrice,
			l.Link,
			l.Image,
			result.SearchedAt,
		)
	}
	return batch
}
