// Package listing turns a marketplace search results page into listings
// ranked by total cost.
package listing

import (
	"strings"
	"time"

	apperrors "github.com/ashphythian/bayscraper/pkg/errors"
)

// DefaultMaxPrice is the upper price bound used when a search sets none.
const DefaultMaxPrice = 999999

// Listing is one search result with its prices normalized
type Listing struct {
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	ShippingCost float64 `json:"postage"`
	TotalPrice   float64 `json:"total_price"`
	Link         string  `json:"link"`
	Image        string  `json:"image"`
}

// RawFields holds the positionally parallel text sequences pulled from a
// results page. Index i of every slice belongs to the same listing.
type RawFields struct {
	Titles   []string
	Prices   []string
	Shipping []string
	Links    []string
	Images   []string
}

// RawListing is the group of raw fields belonging to a single listing
type RawListing struct {
	Title        string
	PriceText    string
	ShippingText string
	Link         string
	Image        string
}

// Query describes one search
type Query struct {
	Keywords   string  `json:"keywords"`
	Exclusions string  `json:"exclusions,omitempty"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
}

// NewQuery returns a query for keywords with the default price window
func NewQuery(keywords string) Query {
	return Query{
		Keywords: keywords,
		MaxPrice: DefaultMaxPrice,
	}
}

// Validate checks that the query can be sent
func (q Query) Validate() error {
	if strings.TrimSpace(q.Keywords) == "" {
		return apperrors.NewValidation("query", "keywords are required")
	}
	return nil
}

// Result is the outcome of a search that produced a parsable page.
// An empty Listings slice is a valid answer, not a failure.
type Result struct {
	Query    Query     `json:"query"`
	Listings []Listing `json:"listings"`
	// Extracted counts listings on the page before the price window
	Extracted int `json:"extracted"`
	// Succeeded is false when the page held no listings at all
	Succeeded  bool      `json:"succeeded"`
	SearchedAt time.Time `json:"searched_at"`
}

// Empty reports whether no listing fell inside the price window
func (r *Result) Empty() bool {
	return len(r.Listings) == 0
}

// Cheapest returns the lowest total cost listing in the result
func (r *Result) Cheapest() (Listing, bool) {
	if r.Empty() {
		return Listing{}, false
	}
	return r.Listings[0], true
}
