package service

import (
	"context"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryStore is a mock implementation of CategoryStore.
type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryStore) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryStore) Update(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductStore is a mock implementation of ProductStore.
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductStore) GetByIDWithReviews(ctx context.Context, id uuid.UUID) (*model.ProductWithReviews, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductWithReviews), args.Error(1)
}

func (m *MockProductStore) Create(ctx context.Context, product *model.Product, categoryID uuid.UUID) error {
	args := m.Called(ctx, product, categoryID)
	return args.Error(0)
}

func (m *MockProductStore) Update(ctx context.Context, id uuid.UUID, version int32, updatedAt int64, patch model.ProductPatch) error {
	args := m.Called(ctx, id, version, updatedAt, patch)
	return args.Error(0)
}

func (m *MockProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewStore is a mock implementation of ReviewStore.
type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(ctx context.Context, review *model.ProductReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func fixedClock(ms int64) Clock {
	return func() int64 { return ms }
}

func fixedID(id uuid.UUID) IDGenerator {
	return func() uuid.UUID { return id }
}
