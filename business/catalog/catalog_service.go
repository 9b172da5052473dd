package catalog

import (
	"context"
	"errors"
	"fmt"

	"bookwise/domain"
	"bookwise/pkg/logger"
)

// BookRepository contract interface
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	FindByID(ctx context.Context, id string) (domain.Book, error)
	FindAll(ctx context.Context) ([]domain.Book, error)
	Delete(ctx context.Context, id string) error
}

// CacheInvalidator drops cached catalog listings after a mutation.
// Nil when caching is disabled.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type bookService struct {
	bookRepo BookRepository
	cache    CacheInvalidator
}

func NewBookService(bookRepo BookRepository, cache CacheInvalidator) *bookService {
	return &bookService{
		bookRepo: bookRepo,
		cache:    cache,
	}
}

func (s *bookService) GetAllBooks(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all books")
		return nil, fmt.Errorf("context error: %w", err)
	}

	books, err := s.bookRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all books", err)
		return nil, err
	}

	return books, nil
}

func (s *bookService) GetBookByID(ctx context.Context, id string) (domain.Book, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get book by id")
		return domain.Book{}, fmt.Errorf("context error: %w", err)
	}

	if id == "" {
		logger.Error("Invalid book id")
		return domain.Book{}, errors.New("invalid book id")
	}

	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to find book", err)
		return domain.Book{}, err
	}

	return book, nil
}

func (s *bookService) CreateBook(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create book")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if book.Name == "" {
		logger.Error("Invalid book data: name is required")
		return nil, errors.New("book name is required")
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		logger.Error("failed to create new book", err)
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.invalidateCache(ctx)

	logger.Info("book created successfully", "book_id", book.ID)

	return book, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id string) error {
	if id == "" {
		logger.Error("Invalid book id when deleting book")
		return errors.New("invalid book id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting book")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify book exists
	_, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("book not found", err)
		return errors.New("book not found")
	}

	if err := s.bookRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete book", err)
		return fmt.Errorf("failed to delete book: %w", err)
	}

	s.invalidateCache(ctx)

	logger.Info("book deleted successfully", "book_id", id)

	return nil
}

func (s *bookService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn("Failed to invalidate catalog cache", "error", err)
	}
}
