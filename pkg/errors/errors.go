package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents transport failures while fetching a results page
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeNormalization represents price or postage text with no usable amount
	ErrorTypeNormalization ErrorType = "normalization"
	// ErrorTypeMismatch represents extracted field sequences of different lengths
	ErrorTypeMismatch ErrorType = "mismatch"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeStore represents snapshot store errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// SearchError is an error raised somewhere between building a search and
// delivering its listings.
type SearchError struct {
	Type    ErrorType
	Source  string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message)
}

// Unwrap returns the underlying error
func (e *SearchError) Unwrap() error {
	return e.Err
}

// IsStructural reports whether the error means the page did not have the
// expected shape, as opposed to the page being unreachable.
func (e *SearchError) IsStructural() bool {
	switch e.Type {
	case ErrorTypeParsing, ErrorTypeNormalization, ErrorTypeMismatch:
		return true
	default:
		return false
	}
}

// IsType reports whether err, or any error it wraps, is a SearchError of type t.
func IsType(err error, t ErrorType) bool {
	var se *SearchError
	if !stderrors.As(err, &se) {
		return false
	}
	return se.Type == t
}

// IsStructural reports whether err, or any error it wraps, is a SearchError
// saying the results page was not in the expected shape.
func IsStructural(err error) bool {
	var se *SearchError
	if !stderrors.As(err, &se) {
		return false
	}
	return se.IsStructural()
}

// New creates a new SearchError
func New(errType ErrorType, source, message string, err error) *SearchError {
	return &SearchError{
		Type:    errType,
		Source:  source,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(source, message string, err error) *SearchError {
	return New(ErrorTypeNetwork, source, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(source, message string, err error) *SearchError {
	return New(ErrorTypeParsing, source, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(source string, duration time.Duration) *SearchError {
	message := fmt.Sprintf("rate limited for %v", duration)
	return New(ErrorTypeRateLimit, source, message, nil)
}

// NewNormalization creates a new normalization error
func NewNormalization(source, message string) *SearchError {
	return New(ErrorTypeNormalization, source, message, nil)
}

// NewMismatch creates a new mismatch error
func NewMismatch(source, message string) *SearchError {
	return New(ErrorTypeMismatch, source, message, nil)
}

// NewPublisher creates a new publisher error
func NewPublisher(source, message string, err error) *SearchError {
	return New(ErrorTypePublisher, source, message, err)
}

// NewStore creates a new store error
func NewStore(source, message string, err error) *SearchError {
	return New(ErrorTypeStore, source, message, err)
}

// NewValidation creates a new validation error
func NewValidation(source, message string) *SearchError {
	return New(ErrorTypeValidation, source, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *SearchError {
	return New(ErrorTypeConfiguration, "", message, err)
}
