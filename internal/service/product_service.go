package service

import (
	"context"
	"fmt"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ProductService implements the product operations.
type ProductService struct {
	store      ProductStore
	categories CategoryGetter
	now        Clock
	newID      IDGenerator
	logger     zerolog.Logger
}

// NewProductService creates a new product service. Categories are resolved
// through categories before a product is written.
func NewProductService(store ProductStore, categories CategoryGetter, logger zerolog.Logger) *ProductService {
	return &ProductService{
		store:      store,
		categories: categories,
		now:        SystemClock,
		newID:      uuid.New,
		logger:     logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves all products.
func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

// GetByID retrieves a single product.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// GetByIDWithReviews retrieves a product together with its reviews.
func (s *ProductService) GetByIDWithReviews(ctx context.Context, id uuid.UUID) (*model.ProductWithReviews, error) {
	product, err := s.store.GetByIDWithReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product with reviews: %w", err)
	}
	return product, nil
}

// Create stores a new product in the category categoryID. Nothing is
// written when the category does not exist; that case fails with
// ErrUnknownCategory.
func (s *ProductService) Create(ctx context.Context, name string, description *string, price decimal.Decimal, stock int32, categoryID uuid.UUID) (*model.Product, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		s.logger.Warn().Err(err).Str("category_id", categoryID.String()).Msg("category lookup failed")
		return nil, fmt.Errorf("failed to resolve category: %w", missingReference(err, model.ErrCategoryNotFound, model.ErrUnknownCategory))
	}

	now := s.now()
	product := &model.Product{
		ID:           s.newID(),
		Name:         name,
		Description:  description,
		Price:        price,
		Stock:        stock,
		CategoryName: category.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, product, category.ID); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", missingReference(err, model.ErrCategoryNotFound, model.ErrUnknownCategory))
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("category_id", category.ID.String()).
		Msg("product created")

	return product, nil
}

// Update applies a sparse patch. An empty patch returns the stored product
// without writing. A missing product fails with ErrUnknownProduct.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error) {
	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", missingReference(err, model.ErrProductNotFound, model.ErrUnknownProduct))
	}

	if patch.IsEmpty() {
		s.logger.Debug().Str("product_id", id.String()).Msg("empty product update, nothing to write")
		return product, nil
	}

	updatedAt := s.now()
	if err := s.store.Update(ctx, id, product.Version, updatedAt, patch); err != nil {
		s.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", missingReference(err, model.ErrProductNotFound, model.ErrUnknownProduct))
	}

	patch.ApplyTo(product)
	product.UpdatedAt = updatedAt
	product.Version++

	s.logger.Info().Str("product_id", id.String()).Msg("product updated")
	return product, nil
}

// Delete removes a product and its reviews.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}
