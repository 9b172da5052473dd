package recommend

import (
	"testing"

	"bookwise/domain"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func TestScoreBook_CategoryMatch(t *testing.T) {
	book := domain.Book{Name: "X", Category: "Free"}

	got := scoreBook(book, Preferences{Category: CategoryFree}, nil)
	if got != 50 {
		t.Errorf("category match score = %d, want 50", got)
	}

	got = scoreBook(book, Preferences{Category: CategoryPaid}, nil)
	if got != 0 {
		t.Errorf("category mismatch score = %d, want 0", got)
	}
}

func TestScoreBook_Budget(t *testing.T) {
	prefs := Preferences{Budget: intPtr(20)}

	within := domain.Book{Name: "X", Price: floatPtr(15)}
	if got := scoreBook(within, prefs, nil); got != 20 {
		t.Errorf("within budget score = %d, want 20", got)
	}

	over := domain.Book{Name: "X", Price: floatPtr(25)}
	if got := scoreBook(over, prefs, nil); got != -10 {
		t.Errorf("over budget score = %d, want -10", got)
	}

	// Raising the price past the ceiling drops the score by exactly 30.
	if delta := scoreBook(within, prefs, nil) - scoreBook(over, prefs, nil); delta != 30 {
		t.Errorf("budget penalty delta = %d, want 30", delta)
	}

	unpriced := domain.Book{Name: "X"}
	if got := scoreBook(unpriced, prefs, nil); got != 0 {
		t.Errorf("unpriced book score = %d, want 0", got)
	}
}

func TestScoreBook_NoBudgetSet(t *testing.T) {
	book := domain.Book{Name: "X", Price: floatPtr(999)}

	if got := scoreBook(book, Preferences{}, nil); got != 0 {
		t.Errorf("score without budget = %d, want 0", got)
	}
}

func TestScoreBook_TokenMatches(t *testing.T) {
	book := domain.Book{Name: "JS Basics", Title: "JavaScript from scratch", Category: "Free"}

	// "javascript" matches, "js" is too short, "golang" is absent.
	tokens := []string{"javascript", "js", "golang"}
	if got := scoreBook(book, Preferences{}, tokens); got != 5 {
		t.Errorf("token score = %d, want 5", got)
	}

	// Repeated tokens count every time.
	tokens = []string{"javascript", "javascript"}
	if got := scoreBook(book, Preferences{}, tokens); got != 10 {
		t.Errorf("repeated token score = %d, want 10", got)
	}
}

func TestScoreBook_Combined(t *testing.T) {
	book := domain.Book{
		Name:     "JS Basics",
		Title:    "JavaScript for beginners",
		Category: "Free",
		Price:    floatPtr(0),
	}
	prefs := Preferences{Category: CategoryFree, Budget: intPtr(10)}

	// +50 category, +20 budget, +5 for "javascript".
	if got := scoreBook(book, prefs, []string{"javascript"}); got != 75 {
		t.Errorf("combined score = %d, want 75", got)
	}
}

func TestScoreBook_LevelDoesNotScore(t *testing.T) {
	book := domain.Book{Name: "X", Title: "Advanced Go"}

	withLevel := scoreBook(book, Preferences{Level: LevelAdvanced}, nil)
	withoutLevel := scoreBook(book, Preferences{}, nil)

	if withLevel != withoutLevel {
		t.Errorf("level changed the score: %d vs %d", withLevel, withoutLevel)
	}
}
