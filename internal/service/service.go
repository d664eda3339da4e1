package service

import (
	"context"
	"errors"
	"time"

	"catalog-service/internal/model"

	"github.com/google/uuid"
)

// CategoryStore defines the persistence operations the category service needs.
type CategoryStore interface {
	List(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Create(ctx context.Context, category *model.Category) error
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductStore defines the persistence operations the product service needs.
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetByIDWithReviews(ctx context.Context, id uuid.UUID) (*model.ProductWithReviews, error)
	Create(ctx context.Context, product *model.Product, categoryID uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, version int32, updatedAt int64, patch model.ProductPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewStore defines the persistence operations the review service needs.
type ReviewStore interface {
	Create(ctx context.Context, review *model.ProductReview) error
}

// CategoryGetter resolves a category by id.
type CategoryGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
}

// ProductGetter resolves a product by id.
type ProductGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

// Clock returns the current time as epoch milliseconds.
type Clock func() int64

// SystemClock reads the wall clock.
func SystemClock() int64 {
	return time.Now().UnixMilli()
}

// IDGenerator produces new record ids.
type IDGenerator func() uuid.UUID

// missingReference turns notFound into unknown. Write paths use it so a
// missing target or referenced row is reported as a bad request.
func missingReference(err error, notFound, unknown *model.DomainError) error {
	if errors.Is(err, notFound) {
		return unknown
	}
	return err
}
