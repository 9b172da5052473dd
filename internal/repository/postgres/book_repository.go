package postgres

import (
	"context"
	"errors"
	"fmt"

	"bookwise/domain"

	"gorm.io/gorm"
)

type BookRepository struct {
	DB *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{
		DB: db,
	}
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return domain.Book{}, fmt.Errorf("context error: %w", err)
	}

	var book domain.Book

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Book{}, errors.New("book not found")
		}
		return domain.Book{}, fmt.Errorf("failed to find book: %w", err)
	}

	return book, nil
}

func (r *BookRepository) FindAll(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var books []domain.Book
	err := r.DB.WithContext(ctx).Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find books: %w", err)
	}

	return books, nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Book{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("book not found")
	}

	return nil
}

// FindDisplayByIDs resolves name and category for the given book IDs.
// IDs that no longer exist are simply absent from the result map.
func (r *BookRepository) FindDisplayByIDs(ctx context.Context, ids []string) (map[string]domain.BookDisplay, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	displays := make(map[string]domain.BookDisplay, len(ids))
	if len(ids) == 0 {
		return displays, nil
	}

	var rows []domain.Book
	err := r.DB.WithContext(ctx).
		Select("id", "name", "category").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve book display fields: %w", err)
	}

	for _, row := range rows {
		displays[row.ID] = domain.BookDisplay{
			Name:     row.Name,
			Category: row.Category,
		}
	}

	return displays, nil
}
