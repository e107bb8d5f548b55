package usecase

import (
	"strings"
	"unicode"

	"github.com/felixbraun/storeradar/internal/core/domain"
)

const (
	topReviewMinRating = 4
	topReviewMinChars  = 20
	topReviewMaxChars  = 400
)

// topReview picks the first review in provider order that is positive
// (rating >= 4) and substantial (more than 20 characters), truncated to 400
// characters with a trailing ellipsis. Empty when none qualifies.
func topReview(reviews []domain.Review) string {
	for _, r := range reviews {
		if r.Rating < topReviewMinRating {
			continue
		}
		text := []rune(r.Text)
		if len(text) <= topReviewMinChars {
			continue
		}
		if len(text) > topReviewMaxChars {
			return string(text[:topReviewMaxChars]) + "..."
		}
		return r.Text
	}
	return ""
}

// priceSymbol maps provider price-level codes to display symbols. Unknown
// or absent codes map to the empty string.
func priceSymbol(code string) string {
	switch code {
	case "PRICE_LEVEL_INEXPENSIVE":
		return "€"
	case "PRICE_LEVEL_MODERATE":
		return "€€"
	case "PRICE_LEVEL_EXPENSIVE":
		return "€€€"
	case "PRICE_LEVEL_VERY_EXPENSIVE":
		return "€€€€"
	default:
		return ""
	}
}

// displayType derives a human label from the candidate's type tags: the
// first tag that is neither a generic marker nor the classified category,
// converted from snake_case to Title Case. Defaults to "Store".
func displayType(types []string, classified domain.StoreType) string {
	for _, t := range types {
		if t == "point_of_interest" || t == "establishment" || t == string(classified) {
			continue
		}
		return titleCase(strings.ReplaceAll(t, "_", " "))
	}
	return "Store"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
