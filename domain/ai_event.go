package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	EventRecommendationServed  = "recommendation_served"
	EventRecommendationClicked = "recommendation_clicked"
)

// CREATE TABLE public.ai_events (
//     id                   UUID PRIMARY KEY,
//     event_type           TEXT NOT NULL,
//     query                TEXT NOT NULL,
//     recommended_book_ids JSONB,
//     selected_book_id     UUID,
//     created_at           TIMESTAMPTZ DEFAULT NOW()
// );

// AIEvent is append-only: rows are created once and never updated or
// deleted, the event log is the source of truth for usage metrics.
type AIEvent struct {
	ID                 string                      `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	EventType          string                      `gorm:"column:event_type;type:text;not null;index" json:"event_type"`
	Query              string                      `gorm:"column:query;type:text;not null" json:"query"`
	RecommendedBookIDs datatypes.JSONSlice[string] `gorm:"column:recommended_book_ids;type:jsonb" json:"recommended_book_ids,omitempty"`
	SelectedBookID     *string                     `gorm:"column:selected_book_id;type:uuid;index" json:"selected_book_id,omitempty"`
	CreatedAt          time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AIEvent) TableName() string {
	return "ai_events"
}

func (e *AIEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// KeyCount is one bucket of a grouped event count.
type KeyCount struct {
	Key   string `gorm:"column:key" json:"key"`
	Count int64  `gorm:"column:count" json:"count"`
}
