package listing

import (
	"testing"

	apperrors "github.com/ashphythian/bayscraper/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 7.0, RoundCents(5+2))
	assert.Equal(t, 12.49, RoundCents(9.99+2.5))
	assert.Equal(t, 0.3, RoundCents(0.1+0.2))
	assert.Equal(t, 99.49, RoundCents(95+4.49))
}

func TestNewListingFreePostage(t *testing.T) {
	shipping, err := ParseShipping("Free postage")
	require.NoError(t, err)

	l := NewListing("pedal", 12.50, shipping, "/a", "i1")
	assert.Equal(t, 12.50, l.TotalPrice)
	assert.Equal(t, 0.0, l.ShippingCost)
}

func TestZip(t *testing.T) {
	listings, err := Zip(
		[]string{"A", "B"},
		[]float64{10.00, 5.00},
		[]float64{0, 2.00},
		[]string{"/a", "/b"},
		[]string{"i1", "i2"},
	)
	require.NoError(t, err)
	assert.Equal(t, []Listing{
		{Title: "A", Price: 10, ShippingCost: 0, TotalPrice: 10, Link: "/a", Image: "i1"},
		{Title: "B", Price: 5, ShippingCost: 2, TotalPrice: 7, Link: "/b", Image: "i2"},
	}, listings)
}

func TestZipMismatch(t *testing.T) {
	testCases := map[string]struct {
		titles, links, images []string
		prices, shipping      []float64
	}{
		"prices":   {titles: []string{"A", "B"}, prices: []float64{1}, shipping: []float64{0, 0}, links: []string{"/a", "/b"}, images: []string{"i", "j"}},
		"shipping": {titles: []string{"A"}, prices: []float64{1}, shipping: nil, links: []string{"/a"}, images: []string{"i"}},
		"links":    {titles: []string{"A"}, prices: []float64{1}, shipping: []float64{0}, links: []string{"/a", "/b"}, images: []string{"i"}},
		"images":   {titles: []string{"A"}, prices: []float64{1}, shipping: []float64{0}, links: []string{"/a"}, images: nil},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			listings, err := Zip(tc.titles, tc.prices, tc.shipping, tc.links, tc.images)
			assert.Nil(t, listings)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMismatch))
		})
	}
}

func TestZipEmpty(t *testing.T) {
	listings, err := Zip(nil, nil, nil, nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, listings)
}

func TestAssemble(t *testing.T) {
	raw := RawFields{
		Titles:   []string{"A", "B"},
		Prices:   []string{"£10.00", "Â£5.00"},
		Shipping: []string{"Free postage", "£ 2.00 Standard"},
		Links:    []string{"/a", "/b"},
		Images:   []string{"i1", "i2"},
	}

	listings, err := Assemble(raw)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, 10.0, listings[0].TotalPrice)
	assert.Equal(t, 5.0, listings[1].Price)
	assert.Equal(t, 2.0, listings[1].ShippingCost)
	assert.Equal(t, 7.0, listings[1].TotalPrice)
}

func TestAssembleMismatch(t *testing.T) {
	raw := RawFields{
		Titles:   []string{"A", "B"},
		Prices:   []string{"£10.00"},
		Shipping: []string{"Free", "Free"},
		Links:    []string{"/a", "/b"},
		Images:   []string{"i1", "i2"},
	}

	_, err := Assemble(raw)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMismatch))
}

func TestAssembleFailsWholeBatch(t *testing.T) {
	raw := RawFields{
		Titles:   []string{"A", "B", "C"},
		Prices:   []string{"£10.00", "Best offer", "£3.00"},
		Shipping: []string{"Free", "Free", "Free"},
		Links:    []string{"/a", "/b", "/c"},
		Images:   []string{"i1", "i2", "i3"},
	}

	listings, err := Assemble(raw)
	assert.Nil(t, listings)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNormalization))
	assert.Contains(t, err.Error(), "listing 1")
}

func TestAssembleEmpty(t *testing.T) {
	listings, err := Assemble(RawFields{})
	assert.NoError(t, err)
	assert.Empty(t, listings)
}

func TestNormalize(t *testing.T) {
	prices, shipping, err := Normalize(RawFields{
		Prices:   []string{"£9.99", "£1.00"},
		Shipping: []string{"£ 3.99 Standard", "Free"},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{9.99, 1}, prices)
	assert.Equal(t, []float64{3.99, 0}, shipping)
	assert.True(t, Succeeded([]string{"a", "b"}, prices, shipping, []string{"/a", "/b"}))

	_, _, err = Normalize(RawFields{Prices: []string{"£9.99"}, Shipping: []string{"£3.99"}})
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNormalization))
}
