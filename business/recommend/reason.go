package recommend

import (
	"fmt"
	"strings"

	"bookwise/domain"
)

// buildReason explains a ranked book in one human-readable sentence.
// Clauses appear in a fixed order (category, budget, level) joined by
// ", ". Level appears here even though the scorer ignores it: reasons
// and scores are evaluated independently. A book that satisfies nothing
// still gets a generic fallback clause, the result is never empty.
func buildReason(book domain.Book, prefs Preferences) string {
	var reasons []string

	if prefs.Category != "" && strings.EqualFold(book.Category, prefs.Category) {
		reasons = append(reasons, fmt.Sprintf("matches your %s preference", strings.ToLower(prefs.Category)))
	}

	if prefs.Budget != nil && book.Price != nil && *book.Price <= float64(*prefs.Budget) {
		reasons = append(reasons, fmt.Sprintf("fits your budget (≤ $%d)", *prefs.Budget))
	}

	if prefs.Level != "" && strings.Contains(strings.ToLower(book.Title), prefs.Level) {
		reasons = append(reasons, fmt.Sprintf("looks suitable for %s learners", prefs.Level))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "matches your query topic based on available metadata")
	}

	return strings.Join(reasons, ", ")
}
