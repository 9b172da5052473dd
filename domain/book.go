package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CREATE TABLE public.books (
//     id          UUID PRIMARY KEY,
//     name        TEXT NOT NULL,
//     title       TEXT,
//     category    TEXT,
//     price       NUMERIC,
//     image       TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Book struct {
	ID        string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	Name      string    `gorm:"column:name;type:text;not null" json:"name"`
	Title     string    `gorm:"column:title;type:text" json:"title"`
	Category  string    `gorm:"column:category;type:text" json:"category"`
	Price     *float64  `gorm:"column:price;type:numeric" json:"price,omitempty"`
	Image     string    `gorm:"column:image;type:text" json:"image,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookDisplay is the subset of book fields joined into metrics breakdowns.
type BookDisplay struct {
	Name     string
	Category string
}
