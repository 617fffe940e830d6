package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleListings() []Listing {
	return []Listing{
		NewListing("first-12", 10, 2, "/1", "i1"),
		NewListing("cheap", 3, 0, "/2", "i2"),
		NewListing("second-12", 12, 0, "/3", "i3"),
		NewListing("dear", 150, 5, "/4", "i4"),
		NewListing("third-12", 11.5, 0.5, "/5", "i5"),
	}
}

func TestFilteredSortedOrdering(t *testing.T) {
	ranked := FilteredSorted(sampleListings(), 0, DefaultMaxPrice)

	assert.Len(t, ranked, 5)
	for i := 0; i < len(ranked)-1; i++ {
		assert.LessOrEqual(t, ranked[i].TotalPrice, ranked[i+1].TotalPrice)
	}
}

func TestFilteredSortedStable(t *testing.T) {
	ranked := FilteredSorted(sampleListings(), 0, DefaultMaxPrice)

	var titles []string
	for _, l := range ranked {
		titles = append(titles, l.Title)
	}
	assert.Equal(t, []string{"cheap", "first-12", "second-12", "third-12", "dear"}, titles)
}

func TestFilteredSortedWindow(t *testing.T) {
	ranked := FilteredSorted(sampleListings(), 3, 12)

	assert.Len(t, ranked, 4)
	for _, l := range ranked {
		assert.GreaterOrEqual(t, l.TotalPrice, 3.0)
		assert.LessOrEqual(t, l.TotalPrice, 12.0)
	}
	assert.Equal(t, "cheap", ranked[0].Title)

	assert.Empty(t, FilteredSorted(sampleListings(), 13, 150))
	assert.Empty(t, FilteredSorted(sampleListings(), 50, 10))
}

func TestFilteredSortedLeavesInputAlone(t *testing.T) {
	listings := sampleListings()
	FilteredSorted(listings, 0, DefaultMaxPrice)
	assert.Equal(t, sampleListings(), listings)
}

func TestCheapest(t *testing.T) {
	l, ok := Cheapest(sampleListings(), 0, DefaultMaxPrice)
	assert.True(t, ok)
	assert.Equal(t, FilteredSorted(sampleListings(), 0, DefaultMaxPrice)[0], l)

	l, ok = Cheapest(sampleListings(), 4, 20)
	assert.True(t, ok)
	assert.Equal(t, "first-12", l.Title)

	l, ok = Cheapest(sampleListings(), 1000, 2000)
	assert.False(t, ok)
	assert.Equal(t, Listing{}, l)

	_, ok = Cheapest(nil, 0, DefaultMaxPrice)
	assert.False(t, ok)
}

func TestSucceeded(t *testing.T) {
	assert.True(t, Succeeded([]string{"A", "B"}, []float64{1, 2}, []float64{0, 0}, []string{"/a", "/b"}))
	assert.False(t, Succeeded([]string{"A", "B"}, []float64{1}, []float64{0, 0}, []string{"/a", "/b"}))
	assert.False(t, Succeeded([]string{"A"}, []float64{1}, []float64{0}, nil))
	assert.False(t, Succeeded(nil, nil, nil, nil))
}

func TestResultCheapest(t *testing.T) {
	r := &Result{Listings: FilteredSorted(sampleListings(), 0, DefaultMaxPrice)}
	assert.False(t, r.Empty())
	l, ok := r.Cheapest()
	assert.True(t, ok)
	assert.Equal(t, "cheap", l.Title)

	r = &Result{Listings: []Listing{}}
	assert.True(t, r.Empty())
	_, ok = r.Cheapest()
	assert.False(t, ok)
}
