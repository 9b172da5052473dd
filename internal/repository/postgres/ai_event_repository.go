package postgres

import (
	"context"
	"fmt"

	"bookwise/domain"

	"gorm.io/gorm"
)

type AIEventRepository struct {
	DB *gorm.DB
}

func NewAIEventRepository(db *gorm.DB) *AIEventRepository {
	return &AIEventRepository{
		DB: db,
	}
}

// groupableColumns whitelists the columns GroupCount may group by,
// keeping column names out of callers' hands.
var groupableColumns = map[string]string{
	"query":            "query",
	"selected_book_id": "selected_book_id",
}

func (r *AIEventRepository) Create(ctx context.Context, event *domain.AIEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create ai event: %w", err)
	}

	return nil
}

func (r *AIEventRepository) CountByType(ctx context.Context, eventType string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).
		Model(&domain.AIEvent{}).
		Where("event_type = ?", eventType).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count ai events: %w", err)
	}

	return count, nil
}

// GroupCount buckets events of one type by a whitelisted column and
// returns the top buckets by descending count.
func (r *AIEventRepository) GroupCount(ctx context.Context, eventType, field string, limit int) ([]domain.KeyCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	column, ok := groupableColumns[field]
	if !ok {
		return nil, fmt.Errorf("cannot group ai events by %q", field)
	}

	var rows []domain.KeyCount
	err := r.DB.WithContext(ctx).
		Model(&domain.AIEvent{}).
		Select(column+` AS "key", COUNT(*) AS "count"`).
		Where("event_type = ?", eventType).
		Where(column + " IS NOT NULL").
		Group(column).
		Order(`"count" DESC`).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group ai events: %w", err)
	}

	return rows, nil
}
