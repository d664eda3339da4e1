package service

import (
	"context"
	"errors"
	"testing"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testNow int64 = 1_700_000_000_000

func newTestProductService(store ProductStore, categories CategoryGetter) *ProductService {
	svc := NewProductService(store, categories, zerolog.Nop())
	svc.now = fixedClock(testNow)
	return svc
}

func strPtr(s string) *string { return &s }

func int32Ptr(i int32) *int32 { return &i }

func TestProductService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mockReturn  []model.Product
		mockError   error
		expectError bool
	}{
		{
			name: "Success",
			mockReturn: []model.Product{
				{ID: uuid.New(), Name: "Go Guide", Price: decimal.RequireFromString("19.99"), CategoryName: "Books"},
			},
		},
		{
			name:        "Store error",
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockProductStore)
			svc := newTestProductService(store, new(MockCategoryStore))

			store.On("List", ctx).Return(tt.mockReturn, tt.mockError)

			products, err := svc.List(ctx)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, products)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, products)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByIDWithReviews(t *testing.T) {
	ctx := context.Background()
	store := new(MockProductStore)
	svc := newTestProductService(store, new(MockCategoryStore))

	id := uuid.New()
	expected := &model.ProductWithReviews{
		ID:   id,
		Name: "Go Guide",
		Reviews: []model.Review{
			{UserID: uuid.New(), Rating: int32Ptr(5)},
		},
	}
	store.On("GetByIDWithReviews", ctx, id).Return(expected, nil)

	product, err := svc.GetByIDWithReviews(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, expected, product)
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()
	productID := uuid.New()
	price := decimal.RequireFromString("19.99")

	tests := []struct {
		name        string
		setupMocks  func(*MockProductStore, *MockCategoryStore)
		expectError error
	}{
		{
			name: "Success",
			setupMocks: func(p *MockProductStore, c *MockCategoryStore) {
				c.On("GetByID", ctx, categoryID).Return(&model.Category{ID: categoryID, Name: "Books"}, nil)
				p.On("Create", ctx, mock.MatchedBy(func(prod *model.Product) bool {
					return prod.ID == productID && prod.CategoryName == "Books" && prod.Price.Equal(price)
				}), categoryID).Return(nil)
			},
		},
		{
			name: "Category not found writes nothing",
			setupMocks: func(p *MockProductStore, c *MockCategoryStore) {
				c.On("GetByID", ctx, categoryID).Return(nil, model.ErrCategoryNotFound)
			},
			expectError: model.ErrUnknownCategory,
		},
		{
			name: "Category removed between lookup and insert",
			setupMocks: func(p *MockProductStore, c *MockCategoryStore) {
				c.On("GetByID", ctx, categoryID).Return(&model.Category{ID: categoryID, Name: "Books"}, nil)
				p.On("Create", ctx, mock.Anything, categoryID).Return(model.ErrCategoryNotFound)
			},
			expectError: model.ErrUnknownCategory,
		},
		{
			name: "Store error",
			setupMocks: func(p *MockProductStore, c *MockCategoryStore) {
				c.On("GetByID", ctx, categoryID).Return(&model.Category{ID: categoryID, Name: "Books"}, nil)
				p.On("Create", ctx, mock.Anything, categoryID).Return(model.ErrConstraintViolation)
			},
			expectError: model.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockProductStore)
			categories := new(MockCategoryStore)
			tt.setupMocks(store, categories)

			svc := newTestProductService(store, categories)
			svc.newID = fixedID(productID)

			product, err := svc.Create(ctx, "Go Guide", strPtr("A book"), price, 5, categoryID)

			if tt.expectError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, product)
			} else {
				require.NoError(t, err)
				assert.Equal(t, productID, product.ID)
				assert.Equal(t, "Books", product.CategoryName)
				assert.Equal(t, int32(5), product.Stock)
				assert.Equal(t, testNow, product.CreatedAt)
				assert.Equal(t, product.CreatedAt, product.UpdatedAt)
				assert.Equal(t, int32(0), product.Version)
			}

			store.AssertExpectations(t)
			categories.AssertExpectations(t)
			if tt.name == "Category not found writes nothing" {
				store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProductService_Update_EmptyPatchSkipsWrite(t *testing.T) {
	ctx := context.Background()
	store := new(MockProductStore)
	svc := newTestProductService(store, new(MockCategoryStore))

	id := uuid.New()
	current := &model.Product{ID: id, Name: "Go Guide", Stock: 5, CreatedAt: 1_000, UpdatedAt: 1_000}
	store.On("GetByID", ctx, id).Return(current, nil)

	product, err := svc.Update(ctx, id, model.ProductPatch{})

	require.NoError(t, err)
	assert.Equal(t, current, product)
	assert.Equal(t, int64(1_000), product.UpdatedAt)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Update_ChangesOnlyPresentFields(t *testing.T) {
	ctx := context.Background()
	store := new(MockProductStore)
	svc := newTestProductService(store, new(MockCategoryStore))

	id := uuid.New()
	current := &model.Product{
		ID:           id,
		Name:         "Go Guide",
		Description:  strPtr("First edition"),
		Price:        decimal.RequireFromString("19.99"),
		Stock:        5,
		CategoryName: "Books",
		CreatedAt:    1_000,
		UpdatedAt:    1_000,
		Version:      2,
	}
	patch := model.ProductPatch{Stock: int32Ptr(7)}

	store.On("GetByID", ctx, id).Return(current, nil)
	store.On("Update", ctx, id, int32(2), testNow, patch).Return(nil)

	product, err := svc.Update(ctx, id, patch)

	require.NoError(t, err)
	assert.Equal(t, int32(7), product.Stock)
	assert.Equal(t, "Go Guide", product.Name)
	assert.Equal(t, "First edition", *product.Description)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, int64(1_000), product.CreatedAt)
	assert.Equal(t, testNow, product.UpdatedAt)
	assert.Equal(t, int32(3), product.Version)
	store.AssertExpectations(t)
}

func TestProductService_Update_Errors(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	patch := model.ProductPatch{Name: strPtr("Renamed")}

	tests := []struct {
		name        string
		setupMock   func(*MockProductStore)
		expectError error
	}{
		{
			name: "Product not found",
			setupMock: func(m *MockProductStore) {
				m.On("GetByID", ctx, id).Return(nil, model.ErrProductNotFound)
			},
			expectError: model.ErrUnknownProduct,
		},
		{
			name: "Product removed between read and write",
			setupMock: func(m *MockProductStore) {
				m.On("GetByID", ctx, id).Return(&model.Product{ID: id}, nil)
				m.On("Update", ctx, id, int32(0), testNow, patch).Return(model.ErrProductNotFound)
			},
			expectError: model.ErrUnknownProduct,
		},
		{
			name: "Concurrent update",
			setupMock: func(m *MockProductStore) {
				m.On("GetByID", ctx, id).Return(&model.Product{ID: id}, nil)
				m.On("Update", ctx, id, int32(0), testNow, patch).Return(model.ErrConcurrentUpdate)
			},
			expectError: model.ErrConcurrentUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockProductStore)
			tt.setupMock(store)
			svc := newTestProductService(store, new(MockCategoryStore))

			product, err := svc.Update(ctx, id, patch)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectError)
			assert.Nil(t, product)
			store.AssertExpectations(t)
		})
	}
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	store := new(MockProductStore)
	svc := newTestProductService(store, new(MockCategoryStore))

	id := uuid.New()
	store.On("Delete", ctx, id).Return(model.ErrProductNotFound)

	err := svc.Delete(ctx, id)

	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}
