package domain

// RankedBook is one recommendation returned to the caller. The ranking
// score is an internal sort key and is not part of this payload.
type RankedBook struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Price    *float64 `json:"price,omitempty"`
	Image    string   `json:"image,omitempty"`
	Reason   string   `json:"reason"`
}

type RecommendationResult struct {
	Query           string       `json:"query"`
	EventID         string       `json:"eventId,omitempty"`
	Recommendations []RankedBook `json:"recommendations"`
}

type AIMetricsTotals struct {
	RecommendationServed  int64 `json:"recommendationServed"`
	RecommendationClicked int64 `json:"recommendationClicked"`
}

type TopPrompt struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type TopClickedBook struct {
	BookID   string  `json:"bookId"`
	Clicks   int64   `json:"clicks"`
	Name     string  `json:"name"`
	Category *string `json:"category"`
}

type AIMetricsSummary struct {
	Totals          AIMetricsTotals  `json:"totals"`
	CTR             float64          `json:"ctr"`
	TopPrompts      []TopPrompt      `json:"topPrompts"`
	TopClickedBooks []TopClickedBook `json:"topClickedBooks"`
}
