package publisher

import "context"

// Publisher fans search results out to downstream consumers
type Publisher interface {
	// Publish publishes a message under key to one of the result streams
	Publish(ctx context.Context, key string, message []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams(ctx context.Context) error

	// Close closes the publisher connection
	Close() error
}
