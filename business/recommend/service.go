package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"bookwise/domain"
	"bookwise/pkg/logger"

	"gorm.io/datatypes"
)

const defaultLimit = 3

var (
	ErrQueryRequired  = errors.New("query is required")
	ErrBookIDRequired = errors.New("bookId and query are required")
)

// BookRepository is the read side of the catalog this service needs.
type BookRepository interface {
	FindAll(ctx context.Context) ([]domain.Book, error)
}

// AIEventRepository appends interaction events. Events are immutable;
// there is intentionally no update or delete here.
type AIEventRepository interface {
	Create(ctx context.Context, event *domain.AIEvent) error
}

type Service struct {
	bookRepo  BookRepository
	eventRepo AIEventRepository
}

func NewService(bookRepo BookRepository, eventRepo AIEventRepository) *Service {
	return &Service{
		bookRepo:  bookRepo,
		eventRepo: eventRepo,
	}
}

type rankedBook struct {
	book  domain.Book
	score int
}

// Recommend ranks the full catalog against the query and returns the top
// results, each with an explanation. A recommendation_served event
// referencing the returned IDs (in order) is appended as a side effect.
// An empty catalog yields an empty result and records nothing.
func (s *Service) Recommend(ctx context.Context, query string, limit int) (domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationResult{}, fmt.Errorf("context error: %w", err)
	}

	if strings.TrimSpace(query) == "" {
		return domain.RecommendationResult{}, ErrQueryRequired
	}

	books, err := s.bookRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load catalog for ranking", err)
		return domain.RecommendationResult{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	if len(books) == 0 {
		return domain.RecommendationResult{
			Query:           query,
			Recommendations: []domain.RankedBook{},
		}, nil
	}

	prefs := ExtractPreferences(query)
	tokens := tokenize(query)

	ranked := make([]rankedBook, len(books))
	for i, book := range books {
		ranked[i] = rankedBook{book: book, score: scoreBook(book, prefs, tokens)}
	}

	// Stable sort: ties keep the original catalog order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}

	top := ranked[:limit]

	recommendations := make([]domain.RankedBook, 0, len(top))
	servedIDs := make([]string, 0, len(top))
	for _, rb := range top {
		recommendations = append(recommendations, domain.RankedBook{
			ID:       rb.book.ID,
			Name:     rb.book.Name,
			Title:    rb.book.Title,
			Category: rb.book.Category,
			Price:    rb.book.Price,
			Image:    rb.book.Image,
			Reason:   buildReason(rb.book, prefs),
		})
		servedIDs = append(servedIDs, rb.book.ID)
	}

	event := &domain.AIEvent{
		EventType:          domain.EventRecommendationServed,
		Query:              query,
		RecommendedBookIDs: datatypes.NewJSONSlice(servedIDs),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		logger.Error("Failed to record served event", err)
		return domain.RecommendationResult{}, fmt.Errorf("failed to record served event: %w", err)
	}

	return domain.RecommendationResult{
		Query:           query,
		EventID:         event.ID,
		Recommendations: recommendations,
	}, nil
}

// TrackClick appends a recommendation_clicked event. When no serving
// event ID accompanies the click, the clicked book is stored in
// recommended_book_ids as well so the event stands on its own. A
// supplied serving event ID is not cross-checked against the serve
// event or the catalog.
func (s *Service) TrackClick(ctx context.Context, eventID, bookID, query string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if bookID == "" || query == "" {
		return ErrBookIDRequired
	}

	event := &domain.AIEvent{
		EventType:      domain.EventRecommendationClicked,
		Query:          query,
		SelectedBookID: &bookID,
	}

	if eventID == "" {
		event.RecommendedBookIDs = datatypes.NewJSONSlice([]string{bookID})
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		logger.Error("Failed to record click event", err)
		return fmt.Errorf("failed to record click event: %w", err)
	}

	return nil
}
