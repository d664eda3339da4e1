package service

import (
	"context"
	"fmt"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CategoryService implements the category operations.
type CategoryService struct {
	store  CategoryStore
	now    Clock
	newID  IDGenerator
	logger zerolog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(store CategoryStore, logger zerolog.Logger) *CategoryService {
	return &CategoryService{
		store:  store,
		now:    SystemClock,
		newID:  uuid.New,
		logger: logger.With().Str("service", "category").Logger(),
	}
}

// List retrieves all categories.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")
	return categories, nil
}

// GetByID retrieves a single category.
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// Create stores a new category named name.
func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	now := s.now()
	category := &model.Category{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, category); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().
		Str("category_id", category.ID.String()).
		Str("name", category.Name).
		Msg("category created")

	return category, nil
}

// Update renames the category with the given id. A missing category fails
// with ErrUnknownCategory.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, name string) (*model.Category, error) {
	category, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", missingReference(err, model.ErrCategoryNotFound, model.ErrUnknownCategory))
	}

	category.Name = name
	category.UpdatedAt = s.now()

	if err := s.store.Update(ctx, category); err != nil {
		s.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", missingReference(err, model.ErrCategoryNotFound, model.ErrUnknownCategory))
	}

	s.logger.Info().Str("category_id", id.String()).Msg("category updated")
	return category, nil
}

// Delete removes the category with the given id.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("category_id", id.String()).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info().Str("category_id", id.String()).Msg("category deleted")
	return nil
}
