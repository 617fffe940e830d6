package listing

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors contains CSS selectors for the parts of a results page
type Selectors struct {
	// Container scopes every other selector
	Container string
	// Item, when set, selects one element per listing inside Container.
	// Fields are then read per item so they cannot drift apart.
	Item     string
	Title    string
	Price    string
	Shipping string
	Image    string
}

// DefaultSelectors matches the eBay UK list-view results page
var DefaultSelectors = Selectors{
	Container: "div#Results ul#ListViewInner",
	Item:      "li.sresult",
	Title:     "h3.lvtitle a",
	Price:     "li.lvprice span.bold",
	Shipping:  "li.lvshipping span.ship",
	Image:     "div.pic a img",
}

// Extract pulls the raw field sequences out of doc in document order.
// A page without the results container yields empty sequences.
func Extract(doc *goquery.Document, sel Selectors) RawFields {
	container := doc.Find(sel.Container)
	if sel.Item != "" {
		return extractItems(container.Find(sel.Item), sel)
	}
	return extractParallel(container, sel)
}

// extractParallel selects each field across the whole container. The
// sequences are only as aligned as the markup is.
func extractParallel(container *goquery.Selection, sel Selectors) RawFields {
	var raw RawFields

	container.Find(sel.Title).Each(func(_ int, s *goquery.Selection) {
		raw.Titles = append(raw.Titles, strings.TrimSpace(s.Text()))
		raw.Links = append(raw.Links, attr(s, "href"))
	})
	container.Find(sel.Price).Each(func(_ int, s *goquery.Selection) {
		raw.Prices = append(raw.Prices, s.Text())
	})
	container.Find(sel.Shipping).Each(func(_ int, s *goquery.Selection) {
		raw.Shipping = append(raw.Shipping, s.Text())
	})
	container.Find(sel.Image).Each(func(_ int, s *goquery.Selection) {
		raw.Images = append(raw.Images, attr(s, "src"))
	})

	return raw
}

// extractItems reads one field group per item
func extractItems(items *goquery.Selection, sel Selectors) RawFields {
	var raw RawFields

	items.Each(func(_ int, s *goquery.Selection) {
		title := s.Find(sel.Title).First()
		raw.Titles = append(raw.Titles, strings.TrimSpace(title.Text()))
		raw.Links = append(raw.Links, attr(title, "href"))
		raw.Prices = append(raw.Prices, s.Find(sel.Price).First().Text())
		raw.Shipping = append(raw.Shipping, s.Find(sel.Shipping).First().Text())
		raw.Images = append(raw.Images, attr(s.Find(sel.Image).First(), "src"))
	})

	return raw
}

func attr(s *goquery.Selection, name string) string {
	value, _ := s.Attr(name)
	return strings.TrimSpace(value)
}

// Len returns the common length of the sequences, or false when they differ
func (r RawFields) Len() (int, bool) {
	n := len(r.Titles)
	for _, l := range []int{len(r.Prices), len(r.Shipping), len(r.Links), len(r.Images)} {
		if l != n {
			return 0, false
		}
	}
	return n, true
}

// Groups zips the parallel sequences into one RawListing per index
func (r RawFields) Groups() ([]RawListing, error) {
	n, ok := r.Len()
	if !ok {
		return nil, mismatchError(len(r.Titles), len(r.Prices), len(r.Shipping), len(r.Links), len(r.Images))
	}

	groups := make([]RawListing, n)
	for i := range groups {
		groups[i] = RawListing{
			Title:        r.Titles[i],
			PriceText:    r.Prices[i],
			ShippingText: r.Shipping[i],
			Link:         r.Links[i],
			Image:        r.Images[i],
		}
	}
	return groups, nil
}
