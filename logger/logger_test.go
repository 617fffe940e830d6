package logger

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("BAYSCRAPER_ENVIRONMENT", "production")
	assert.Equal(t, zerolog.InfoLevel, getLogLevel())

	t.Setenv("BAYSCRAPER_ENVIRONMENT", "development")
	assert.Equal(t, zerolog.DebugLevel, getLogLevel())

	t.Setenv("LOG_LEVEL", "warn")
	assert.Equal(t, zerolog.WarnLevel, getLogLevel())

	t.Setenv("LOG_LEVEL", "loud")
	assert.Equal(t, zerolog.InfoLevel, getLogLevel())
}

func resetDefault() {
	Default = nil
	defaultOnce = sync.Once{}
}

func TestComponentLoggers(t *testing.T) {
	resetDefault()
	assert.NotNil(t, ForWorker())
	assert.NotNil(t, Default)
	assert.NotNil(t, ForCrawler("ebay"))
	assert.NotNil(t, ForStore())
}

func TestComponentLoggersConcurrentFirstUse(t *testing.T) {
	resetDefault()
	t.Setenv("LOG_LEVEL", "error")

	var wg sync.WaitGroup
	loggers := make([]*Logger, 16)
	for i := range loggers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = ForCrawler("EbayCrawler")
		}(i)
	}
	wg.Wait()

	first := Default
	assert.NotNil(t, first)
	for _, l := range loggers {
		assert.NotNil(t, l)
	}
	assert.Same(t, first, defaultLogger())
}
