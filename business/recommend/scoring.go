package recommend

import (
	"strings"

	"bookwise/domain"
)

// scoreBook computes the relevance score of one book against the
// extracted preferences and query tokens. The score may go negative.
//
//   - +50 when the book's category equals the preferred category
//   - with a budget set and a priced book: +20 within budget, -10 over
//   - +5 per token longer than 2 chars found in name+title+category
//
// Level is deliberately not scored; it only shows up in the reason text.
func scoreBook(book domain.Book, prefs Preferences, queryTokens []string) int {
	score := 0

	if prefs.Category != "" && strings.EqualFold(book.Category, prefs.Category) {
		score += 50
	}

	if prefs.Budget != nil && book.Price != nil {
		if *book.Price <= float64(*prefs.Budget) {
			score += 20
		} else {
			score -= 10
		}
	}

	searchable := strings.ToLower(book.Name + " " + book.Title + " " + book.Category)
	for _, token := range queryTokens {
		if len(token) > 2 && strings.Contains(searchable, token) {
			score += 5
		}
	}

	return score
}
