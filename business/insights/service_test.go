package insights

import (
	"context"
	"errors"
	"testing"

	"bookwise/domain"
)

type fakeEventRepo struct {
	counts   map[string]int64
	groups   map[string][]domain.KeyCount
	countErr error
	groupErr error
}

func (f *fakeEventRepo) CountByType(ctx context.Context, eventType string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[eventType], nil
}

func (f *fakeEventRepo) GroupCount(ctx context.Context, eventType, field string, limit int) ([]domain.KeyCount, error) {
	if f.groupErr != nil {
		return nil, f.groupErr
	}
	rows := f.groups[eventType+"/"+field]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

type fakeBookRepo struct {
	displays map[string]domain.BookDisplay
	err      error
	calls    int
}

func (f *fakeBookRepo) FindDisplayByIDs(ctx context.Context, ids []string) (map[string]domain.BookDisplay, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]domain.BookDisplay)
	for _, id := range ids {
		if display, ok := f.displays[id]; ok {
			out[id] = display
		}
	}
	return out, nil
}

func TestSummarize_CTR(t *testing.T) {
	cases := []struct {
		name    string
		served  int64
		clicked int64
		want    float64
	}{
		{"no serves", 0, 0, 0},
		{"no serves but clicks", 0, 3, 0},
		{"thirty percent", 10, 3, 30.00},
		{"rounded to two decimals", 3, 1, 33.33},
		{"two thirds", 3, 2, 66.67},
		{"over one hundred", 2, 3, 150.00},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eventRepo := &fakeEventRepo{counts: map[string]int64{
				domain.EventRecommendationServed:  tc.served,
				domain.EventRecommendationClicked: tc.clicked,
			}}
			svc := NewService(eventRepo, &fakeBookRepo{})

			summary, err := svc.Summarize(context.Background())
			if err != nil {
				t.Fatalf("Summarize returned error: %v", err)
			}
			if summary.CTR != tc.want {
				t.Errorf("CTR = %v, want %v", summary.CTR, tc.want)
			}
			if summary.Totals.RecommendationServed != tc.served {
				t.Errorf("served total = %d, want %d", summary.Totals.RecommendationServed, tc.served)
			}
			if summary.Totals.RecommendationClicked != tc.clicked {
				t.Errorf("clicked total = %d, want %d", summary.Totals.RecommendationClicked, tc.clicked)
			}
		})
	}
}

func TestSummarize_TopPrompts(t *testing.T) {
	eventRepo := &fakeEventRepo{
		counts: map[string]int64{domain.EventRecommendationServed: 7},
		groups: map[string][]domain.KeyCount{
			domain.EventRecommendationServed + "/query": {
				{Key: "free javascript", Count: 4},
				{Key: "go under 20", Count: 3},
			},
		},
	}
	svc := NewService(eventRepo, &fakeBookRepo{})

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if len(summary.TopPrompts) != 2 {
		t.Fatalf("got %d top prompts, want 2", len(summary.TopPrompts))
	}
	if summary.TopPrompts[0].Query != "free javascript" || summary.TopPrompts[0].Count != 4 {
		t.Errorf("top prompt = %+v", summary.TopPrompts[0])
	}
}

func TestSummarize_TopClickedBooksResolution(t *testing.T) {
	eventRepo := &fakeEventRepo{
		counts: map[string]int64{
			domain.EventRecommendationServed:  10,
			domain.EventRecommendationClicked: 3,
		},
		groups: map[string][]domain.KeyCount{
			domain.EventRecommendationClicked + "/selected_book_id": {
				{Key: "known-book", Count: 2},
				{Key: "deleted-book", Count: 1},
			},
		},
	}
	bookRepo := &fakeBookRepo{displays: map[string]domain.BookDisplay{
		"known-book": {Name: "JS Basics", Category: "Free"},
	}}
	svc := NewService(eventRepo, bookRepo)

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if len(summary.TopClickedBooks) != 2 {
		t.Fatalf("got %d top clicked books, want 2", len(summary.TopClickedBooks))
	}

	known := summary.TopClickedBooks[0]
	if known.Name != "JS Basics" || known.Category == nil || *known.Category != "Free" || known.Clicks != 2 {
		t.Errorf("resolved book = %+v", known)
	}

	missing := summary.TopClickedBooks[1]
	if missing.Name != "Unknown" || missing.Category != nil || missing.Clicks != 1 {
		t.Errorf("unresolved book = %+v, want Unknown name and nil category", missing)
	}
}

func TestSummarize_DistinctClicksScenario(t *testing.T) {
	// 10 serves, 3 clicks on distinct books: CTR 30.00 and one click each.
	eventRepo := &fakeEventRepo{
		counts: map[string]int64{
			domain.EventRecommendationServed:  10,
			domain.EventRecommendationClicked: 3,
		},
		groups: map[string][]domain.KeyCount{
			domain.EventRecommendationClicked + "/selected_book_id": {
				{Key: "a", Count: 1},
				{Key: "b", Count: 1},
				{Key: "c", Count: 1},
			},
		},
	}
	svc := NewService(eventRepo, &fakeBookRepo{})

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if summary.CTR != 30.00 {
		t.Errorf("CTR = %v, want 30.00", summary.CTR)
	}
	if len(summary.TopClickedBooks) != 3 {
		t.Fatalf("got %d top clicked books, want 3", len(summary.TopClickedBooks))
	}
	for _, book := range summary.TopClickedBooks {
		if book.Clicks != 1 {
			t.Errorf("book %s clicks = %d, want 1", book.BookID, book.Clicks)
		}
	}
}

func TestSummarize_NoClicksSkipsResolution(t *testing.T) {
	eventRepo := &fakeEventRepo{counts: map[string]int64{
		domain.EventRecommendationServed: 5,
	}}
	bookRepo := &fakeBookRepo{}
	svc := NewService(eventRepo, bookRepo)

	summary, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if len(summary.TopClickedBooks) != 0 {
		t.Errorf("got %d top clicked books, want 0", len(summary.TopClickedBooks))
	}
	if bookRepo.calls != 0 {
		t.Errorf("catalog resolved %d times with no clicks, want 0", bookRepo.calls)
	}
}

func TestSummarize_StoreFailurePropagates(t *testing.T) {
	svc := NewService(&fakeEventRepo{countErr: errors.New("store down")}, &fakeBookRepo{})

	if _, err := svc.Summarize(context.Background()); err == nil {
		t.Fatal("Summarize did not propagate the store failure")
	}

	svc = NewService(&fakeEventRepo{
		counts:   map[string]int64{},
		groupErr: errors.New("aggregation failed"),
	}, &fakeBookRepo{})

	if _, err := svc.Summarize(context.Background()); err == nil {
		t.Fatal("Summarize did not propagate the aggregation failure")
	}
}
