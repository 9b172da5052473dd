package insights

import (
	"context"
	"fmt"
	"math"

	"bookwise/domain"
	"bookwise/pkg/logger"
)

const topN = 5

// AIEventRepository is the aggregation side of the event log.
type AIEventRepository interface {
	CountByType(ctx context.Context, eventType string) (int64, error)
	GroupCount(ctx context.Context, eventType, field string, limit int) ([]domain.KeyCount, error)
}

// BookRepository resolves display fields for clicked book IDs,
// best-effort: missing IDs are simply absent from the returned map.
type BookRepository interface {
	FindDisplayByIDs(ctx context.Context, ids []string) (map[string]domain.BookDisplay, error)
}

type Service struct {
	eventRepo AIEventRepository
	bookRepo  BookRepository
}

func NewService(eventRepo AIEventRepository, bookRepo BookRepository) *Service {
	return &Service{
		eventRepo: eventRepo,
		bookRepo:  bookRepo,
	}
}

// Summarize recomputes the usage summary from the full event log. There
// is no incremental state; every call reads the store fresh.
func (s *Service) Summarize(ctx context.Context) (domain.AIMetricsSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.AIMetricsSummary{}, fmt.Errorf("context error: %w", err)
	}

	served, err := s.eventRepo.CountByType(ctx, domain.EventRecommendationServed)
	if err != nil {
		logger.Error("Failed to count served events", err)
		return domain.AIMetricsSummary{}, fmt.Errorf("failed to count served events: %w", err)
	}

	clicked, err := s.eventRepo.CountByType(ctx, domain.EventRecommendationClicked)
	if err != nil {
		logger.Error("Failed to count click events", err)
		return domain.AIMetricsSummary{}, fmt.Errorf("failed to count click events: %w", err)
	}

	ctr := 0.0
	if served > 0 {
		ctr = math.Round(float64(clicked)/float64(served)*100*100) / 100
	}

	prompts, err := s.eventRepo.GroupCount(ctx, domain.EventRecommendationServed, "query", topN)
	if err != nil {
		logger.Error("Failed to aggregate top prompts", err)
		return domain.AIMetricsSummary{}, fmt.Errorf("failed to aggregate top prompts: %w", err)
	}

	clicks, err := s.eventRepo.GroupCount(ctx, domain.EventRecommendationClicked, "selected_book_id", topN)
	if err != nil {
		logger.Error("Failed to aggregate top clicked books", err)
		return domain.AIMetricsSummary{}, fmt.Errorf("failed to aggregate top clicked books: %w", err)
	}

	topPrompts := make([]domain.TopPrompt, 0, len(prompts))
	for _, p := range prompts {
		topPrompts = append(topPrompts, domain.TopPrompt{Query: p.Key, Count: p.Count})
	}

	topClicked, err := s.resolveClickedBooks(ctx, clicks)
	if err != nil {
		return domain.AIMetricsSummary{}, err
	}

	return domain.AIMetricsSummary{
		Totals: domain.AIMetricsTotals{
			RecommendationServed:  served,
			RecommendationClicked: clicked,
		},
		CTR:             ctr,
		TopPrompts:      topPrompts,
		TopClickedBooks: topClicked,
	}, nil
}

func (s *Service) resolveClickedBooks(ctx context.Context, clicks []domain.KeyCount) ([]domain.TopClickedBook, error) {
	topClicked := make([]domain.TopClickedBook, 0, len(clicks))
	if len(clicks) == 0 {
		return topClicked, nil
	}

	ids := make([]string, 0, len(clicks))
	for _, c := range clicks {
		ids = append(ids, c.Key)
	}

	displays, err := s.bookRepo.FindDisplayByIDs(ctx, ids)
	if err != nil {
		logger.Error("Failed to resolve clicked books", err)
		return nil, fmt.Errorf("failed to resolve clicked books: %w", err)
	}

	for _, c := range clicks {
		entry := domain.TopClickedBook{
			BookID: c.Key,
			Clicks: c.Count,
			Name:   "Unknown",
		}
		if display, ok := displays[c.Key]; ok {
			entry.Name = display.Name
			category := display.Category
			entry.Category = &category
		}
		topClicked = append(topClicked, entry)
	}

	return topClicked, nil
}
