package listing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ashphythian/bayscraper/helpers"
	apperrors "github.com/ashphythian/bayscraper/pkg/errors"
)

// EncodingArtifact is what a UTF-8 non-breaking space (0xC2 0xA0) leaves
// behind when the page is decoded as Latin-1: a stray "Â" before the space.
const EncodingArtifact = "Â"

const (
	priceToken    = 0
	shippingToken = 1
)

var (
	amountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// Postage texts that mean nothing is charged
	freeShippingMarkers = []string{"Free", "not specified"}
)

// StripArtifact removes every EncodingArtifact from text
func StripArtifact(text string) string {
	return strings.ReplaceAll(text, EncodingArtifact, "")
}

// ExtractAmount parses the first run of digits, with an optional decimal
// part, found in token. "£1,299.99" gives 1: separators end the run.
func ExtractAmount(token string) (float64, error) {
	match := amountPattern.FindString(token)
	if match == "" {
		return 0, apperrors.NewNormalization("amount", fmt.Sprintf("no amount in %q", token))
	}
	amount, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrorTypeNormalization, "amount", fmt.Sprintf("bad amount %q", match), err)
	}
	return amount, nil
}

// ParsePrice reads the item price from the first token of text
func ParsePrice(text string) (float64, error) {
	return amountAt(text, priceToken, "price")
}

// ParseShipping reads the postage cost. Free and unspecified postage are 0,
// anything else is read from the second token, which follows a currency
// symbol or label in the list-view markup.
//
// The token index has only been checked against that markup; revalidate it
// if the page layout changes.
func ParseShipping(text string) (float64, error) {
	for _, marker := range freeShippingMarkers {
		if strings.Contains(text, marker) {
			return 0, nil
		}
	}
	return amountAt(text, shippingToken, "postage")
}

func amountAt(text string, index int, field string) (float64, error) {
	cleaned := strings.TrimSpace(StripArtifact(text))
	token, err := helpers.GetField(cleaned, index)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrorTypeNormalization, field, fmt.Sprintf("no token %d in %q", index, cleaned), err)
	}
	amount, err := ExtractAmount(token)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrorTypeNormalization, field, fmt.Sprintf("unreadable %s %q", field, cleaned), err)
	}
	return amount, nil
}
