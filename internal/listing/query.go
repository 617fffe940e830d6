package listing

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// sortByTotalCost asks the results page for "lowest price + postage" order
const sortByTotalCost = "15"

// SearchTerms joins the keywords with every exclusion term negated
func (q Query) SearchTerms() string {
	terms := []string{strings.TrimSpace(q.Keywords)}
	for _, ex := range strings.Fields(q.Exclusions) {
		ex = strings.TrimLeft(ex, "-")
		if ex == "" {
			continue
		}
		terms = append(terms, "-"+ex)
	}
	return strings.Join(terms, " ")
}

// URL builds the results page address for the query under base
func (q Query) URL(base string) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid search base URL %q: %w", base, err)
	}

	values := u.Query()
	values.Set("_nkw", q.SearchTerms())
	values.Set("_sop", sortByTotalCost)
	values.Set("_udlo", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	values.Set("_udhi", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	u.RawQuery = values.Encode()

	return u.String(), nil
}
