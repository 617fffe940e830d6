package listing

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Process runs a parsed results page through extraction, normalization and
// ranking for q. The page is not modified.
func Process(doc *goquery.Document, sel Selectors, q Query) (*Result, error) {
	raw := Extract(doc, sel)

	listings, prices, shipping, err := assemble(raw)
	if err != nil {
		return nil, err
	}

	return &Result{
		Query:      q,
		Listings:   FilteredSorted(listings, q.MinPrice, q.MaxPrice),
		Extracted:  len(listings),
		Succeeded:  Succeeded(raw.Titles, prices, shipping, raw.Links),
		SearchedAt: time.Now(),
	}, nil
}
