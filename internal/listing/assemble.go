package listing

import (
	"fmt"
	"math"

	apperrors "github.com/ashphythian/bayscraper/pkg/errors"
)

// RoundCents rounds to two decimal places, halves away from zero
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// NewListing builds a listing and its total cost
func NewListing(title string, price, shipping float64, link, image string) Listing {
	return Listing{
		Title:        title,
		Price:        price,
		ShippingCost: shipping,
		TotalPrice:   RoundCents(price + shipping),
		Link:         link,
		Image:        image,
	}
}

// Zip combines the sequences index by index. Every sequence must have the
// same length.
func Zip(titles []string, prices, shipping []float64, links, images []string) ([]Listing, error) {
	n := len(titles)
	if len(prices) != n || len(shipping) != n || len(links) != n || len(images) != n {
		return nil, mismatchError(n, len(prices), len(shipping), len(links), len(images))
	}

	listings := make([]Listing, n)
	for i := range listings {
		listings[i] = NewListing(titles[i], prices[i], shipping[i], links[i], images[i])
	}
	return listings, nil
}

// Normalize converts every raw price and postage text into an amount.
// One unreadable amount fails the whole page.
func Normalize(raw RawFields) (prices, shipping []float64, err error) {
	prices = make([]float64, len(raw.Prices))
	for i, text := range raw.Prices {
		if prices[i], err = ParsePrice(text); err != nil {
			return nil, nil, fmt.Errorf("listing %d: %w", i, err)
		}
	}

	shipping = make([]float64, len(raw.Shipping))
	for i, text := range raw.Shipping {
		if shipping[i], err = ParseShipping(text); err != nil {
			return nil, nil, fmt.Errorf("listing %d: %w", i, err)
		}
	}

	return prices, shipping, nil
}

// Assemble normalizes the raw prices and postage and zips everything into
// listings.
func Assemble(raw RawFields) ([]Listing, error) {
	listings, _, _, err := assemble(raw)
	return listings, err
}

func assemble(raw RawFields) ([]Listing, []float64, []float64, error) {
	if _, ok := raw.Len(); !ok {
		return nil, nil, nil, mismatchError(len(raw.Titles), len(raw.Prices), len(raw.Shipping), len(raw.Links), len(raw.Images))
	}

	prices, shipping, err := Normalize(raw)
	if err != nil {
		return nil, nil, nil, err
	}

	listings, err := Zip(raw.Titles, prices, shipping, raw.Links, raw.Images)
	if err != nil {
		return nil, nil, nil, err
	}
	return listings, prices, shipping, nil
}

func mismatchError(titles, prices, shipping, links, images int) error {
	return apperrors.NewMismatch("listing", fmt.Sprintf(
		"field counts differ: %d titles, %d prices, %d postages, %d links, %d images",
		titles, prices, shipping, links, images,
	))
}
