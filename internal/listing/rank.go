package listing

import "sort"

// FilteredSorted keeps listings whose total lies in [min, max] and orders
// them by total cost. Equal totals keep their page order.
func FilteredSorted(listings []Listing, min, max float64) []Listing {
	filtered := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.TotalPrice >= min && l.TotalPrice <= max {
			filtered = append(filtered, l)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TotalPrice < filtered[j].TotalPrice
	})
	return filtered
}

// Cheapest returns the lowest total cost listing inside the window
func Cheapest(listings []Listing, min, max float64) (Listing, bool) {
	ranked := FilteredSorted(listings, min, max)
	if len(ranked) == 0 {
		return Listing{}, false
	}
	return ranked[0], true
}

// Succeeded reports whether a page produced at least one listing with every
// sequence lined up. It is meant for the unfiltered extraction.
func Succeeded(titles []string, prices, shipping []float64, links []string) bool {
	n := len(titles)
	return n > 0 && len(prices) == n && len(shipping) == n && len(links) == n
}
