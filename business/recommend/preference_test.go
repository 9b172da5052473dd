package recommend

import "testing"

func TestExtractPreferences_Category(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"free keyword", "free javascript course", CategoryFree},
		{"paid keyword", "good paid books", CategoryPaid},
		{"premium keyword", "premium go content", CategoryPaid},
		{"paid wins over free", "free or paid whatever", CategoryPaid},
		{"premium wins over free", "free premium stuff", CategoryPaid},
		{"case insensitive", "FREE Python", CategoryFree},
		{"no keyword", "rust for systems", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractPreferences(tc.query)
			if got.Category != tc.want {
				t.Errorf("ExtractPreferences(%q).Category = %q, want %q", tc.query, got.Category, tc.want)
			}
		})
	}
}

func TestExtractPreferences_Budget(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  int
		unset bool
	}{
		{"dollar form", "books for $25", 25, false},
		{"under form", "books under 20", 20, false},
		{"under without space", "under20 bucks", 20, false},
		{"dollar wins over under", "$30 but under 20", 30, false},
		{"no budget", "javascript basics", 0, true},
		{"bare number ignored", "top 10 books", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractPreferences(tc.query)
			if tc.unset {
				if got.Budget != nil {
					t.Errorf("ExtractPreferences(%q).Budget = %d, want unset", tc.query, *got.Budget)
				}
				return
			}
			if got.Budget == nil {
				t.Fatalf("ExtractPreferences(%q).Budget is unset, want %d", tc.query, tc.want)
			}
			if *got.Budget != tc.want {
				t.Errorf("ExtractPreferences(%q).Budget = %d, want %d", tc.query, *got.Budget, tc.want)
			}
		})
	}
}

func TestExtractPreferences_Level(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"beginner", "beginner python", LevelBeginner},
		{"advanced", "advanced algorithms", LevelAdvanced},
		{"advanced wins", "beginner to advanced", LevelAdvanced},
		{"none", "python", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractPreferences(tc.query)
			if got.Level != tc.want {
				t.Errorf("ExtractPreferences(%q).Level = %q, want %q", tc.query, got.Level, tc.want)
			}
		})
	}
}

func TestExtractPreferences_EmptyQuery(t *testing.T) {
	got := ExtractPreferences("")

	if got.Category != "" || got.Budget != nil || got.Level != "" {
		t.Errorf("ExtractPreferences(\"\") = %+v, want all fields unset", got)
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("  Free   Beginner JavaScript ")

	want := []string{"free", "beginner", "javascript"}
	if len(got) != len(want) {
		t.Fatalf("tokenize returned %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
