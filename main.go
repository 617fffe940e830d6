package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashphythian/bayscraper/config"
	"github.com/ashphythian/bayscraper/internal/crawler"
	"github.com/ashphythian/bayscraper/logger"
	"github.com/ashphythian/bayscraper/services/cache"
	"github.com/ashphythian/bayscraper/services/publisher"
	"github.com/ashphythian/bayscraper/services/store"
	"github.com/ashphythian/bayscraper/services/worker"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	logger.Init()
	log := logger.Default

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("environment", cfg.Environment).
		Dur("crawl_interval", cfg.CrawlInterval).
		Int("queries", len(cfg.Queries)).
		Msg("Starting application")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	services, err := initializeServices(ctx, &cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}
	defer services.Cleanup()

	w := worker.NewWorker(
		ctx,
		crawler.CreateCrawler(&cfg, services.Cache),
		cfg.Queries,
		services.Publisher,
		services.Store,
		cfg.CrawlInterval,
	)

	workerDone := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting search worker")
		workerDone <- w.Start()
	}()

	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
		<-workerDone
	case err := <-workerDone:
		if err != nil {
			log.Error().Err(err).Msg("Worker exited with error")
		} else {
			log.Info().Msg("Worker exited normally")
		}
	}

	log.Info().Msg("Shutting down gracefully...")
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
	Store     store.Store
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
	if s.Store != nil {
		s.Store.Close()
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	services := &Services{}

	memcache := cache.NewMemcacheService(cfg.MemcacheAddr)
	if err := memcache.Ping(); err != nil {
		logger.ForCache().Warn().Err(err).Msg("Memcache unreachable, rate-limit blocks will not be recorded")
	}
	services.Cache = memcache
	logger.Info("Using Memcache at %s", cfg.MemcacheAddr)

	redisPublisher := publisher.NewRedisPublisher(
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamCount,
		cfg.RedisStreamMaxLength,
	)
	if err := redisPublisher.Ping(ctx); err != nil {
		redisPublisher.Close()
		return nil, err
	}
	services.Publisher = redisPublisher
	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	if cfg.DatabaseURL != "" {
		pgStore, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			services.Cleanup()
			return nil, err
		}
		services.Store = pgStore
		logger.Info("Storing search snapshots in Postgres")
	}

	return services, nil
}
