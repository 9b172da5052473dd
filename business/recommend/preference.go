package recommend

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	CategoryFree = "Free"
	CategoryPaid = "Paid"

	LevelBeginner = "beginner"
	LevelAdvanced = "advanced"
)

// Preferences are the structured constraints pulled out of a free-text
// query. Every field is optional; an unset field means "no constraint".
type Preferences struct {
	Category string
	Budget   *int
	Level    string
}

var (
	dollarBudgetRe = regexp.MustCompile(`\$(\d+)`)
	underBudgetRe  = regexp.MustCompile(`under\s*(\d+)`)
)

// ExtractPreferences derives Preferences from raw query text. Matching is
// case-insensitive and keyword-based; malformed or empty text simply
// yields a zero Preferences. When conflicting keywords appear the later
// rule wins: paid/premium over free, advanced over beginner. For the
// budget the "$N" form is checked before "under N".
func ExtractPreferences(query string) Preferences {
	text := strings.ToLower(query)

	var prefs Preferences

	if strings.Contains(text, "free") {
		prefs.Category = CategoryFree
	}
	if strings.Contains(text, "paid") || strings.Contains(text, "premium") {
		prefs.Category = CategoryPaid
	}

	match := dollarBudgetRe.FindStringSubmatch(text)
	if match == nil {
		match = underBudgetRe.FindStringSubmatch(text)
	}
	if match != nil {
		if budget, err := strconv.Atoi(match[1]); err == nil {
			prefs.Budget = &budget
		}
	}

	if strings.Contains(text, "beginner") {
		prefs.Level = LevelBeginner
	}
	if strings.Contains(text, "advanced") {
		prefs.Level = LevelAdvanced
	}

	return prefs
}

// tokenize splits the query into lowercase whitespace-separated tokens.
// Tokens are not deduplicated; scoring counts repeats.
func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}
