package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookwise/domain"
	"bookwise/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const bookListKey = "catalog:books:all"

// BookLister is the inner repository the cache wraps.
type BookLister interface {
	FindAll(ctx context.Context) ([]domain.Book, error)
}

// CachedBookRepository is a read-through cache over the book catalog.
// Cache failures degrade to the inner repository; they never fail the
// request. Staleness is bounded by the TTL plus explicit invalidation
// on catalog mutations.
type CachedBookRepository struct {
	inner  BookLister
	client *redis.Client
	ttl    time.Duration
}

func NewCachedBookRepository(inner BookLister, client *redis.Client, ttl time.Duration) *CachedBookRepository {
	return &CachedBookRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (r *CachedBookRepository) FindAll(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	raw, err := r.client.Get(ctx, bookListKey).Bytes()
	if err == nil {
		var books []domain.Book
		if err := json.Unmarshal(raw, &books); err == nil {
			return books, nil
		}
		logger.Warn("Corrupt catalog cache entry, falling through", "key", bookListKey)
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("Catalog cache read failed, falling through", "error", err)
	}

	books, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(books); err == nil {
		if err := r.client.Set(ctx, bookListKey, raw, r.ttl).Err(); err != nil {
			logger.Warn("Catalog cache write failed", "error", err)
		}
	}

	return books, nil
}

// Invalidate drops the cached listing, called after catalog mutations.
func (r *CachedBookRepository) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, bookListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}

	return nil
}
