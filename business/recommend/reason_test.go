package recommend

import (
	"testing"

	"bookwise/domain"
)

func TestBuildReason_AllClauses(t *testing.T) {
	book := domain.Book{
		Name:     "JS Basics",
		Title:    "JavaScript for beginner coders",
		Category: "Free",
		Price:    floatPtr(5),
	}
	prefs := Preferences{
		Category: CategoryFree,
		Budget:   intPtr(10),
		Level:    LevelBeginner,
	}

	got := buildReason(book, prefs)
	want := "matches your free preference, fits your budget (≤ $10), looks suitable for beginner learners"
	if got != want {
		t.Errorf("buildReason = %q, want %q", got, want)
	}
}

func TestBuildReason_Fallback(t *testing.T) {
	book := domain.Book{Name: "Some Book", Category: "Paid"}

	got := buildReason(book, Preferences{})
	want := "matches your query topic based on available metadata"
	if got != want {
		t.Errorf("buildReason = %q, want %q", got, want)
	}
}

func TestBuildReason_NeverEmpty(t *testing.T) {
	books := []domain.Book{
		{},
		{Name: "A", Category: "Free"},
		{Name: "B", Title: "Advanced stuff", Price: floatPtr(100)},
	}
	prefsList := []Preferences{
		{},
		{Category: CategoryPaid},
		{Budget: intPtr(1), Level: LevelAdvanced},
	}

	for _, book := range books {
		for _, prefs := range prefsList {
			if buildReason(book, prefs) == "" {
				t.Fatalf("buildReason returned empty string for book %+v prefs %+v", book, prefs)
			}
		}
	}
}

func TestBuildReason_LevelMatchesTitleOnly(t *testing.T) {
	book := domain.Book{Name: "advanced tricks", Title: "Go Patterns"}

	got := buildReason(book, Preferences{Level: LevelAdvanced})
	want := "matches your query topic based on available metadata"
	if got != want {
		t.Errorf("level should only match against the title, got %q", got)
	}
}

func TestBuildReason_BudgetRequiresPrice(t *testing.T) {
	book := domain.Book{Name: "No Price"}

	got := buildReason(book, Preferences{Budget: intPtr(50)})
	want := "matches your query topic based on available metadata"
	if got != want {
		t.Errorf("unpriced book should not get the budget clause, got %q", got)
	}
}
