package service

import (
	"context"
	"fmt"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ReviewService implements adding reviews to products.
type ReviewService struct {
	store    ReviewStore
	products ProductGetter
	now      Clock
	newID    IDGenerator
	logger   zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(store ReviewStore, products ProductGetter, logger zerolog.Logger) *ReviewService {
	return &ReviewService{
		store:    store,
		products: products,
		now:      SystemClock,
		newID:    uuid.New,
		logger:   logger.With().Str("service", "review").Logger(),
	}
}

// AddReview records a review by userID on the product productID.
func (s *ReviewService) AddReview(ctx context.Context, productID, userID uuid.UUID, comment *string, rating *int32) (*model.ProductReview, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		s.logger.Warn().Err(err).Str("product_id", productID.String()).Msg("product lookup failed")
		return nil, fmt.Errorf("failed to resolve product: %w", missingReference(err, model.ErrProductNotFound, model.ErrUnknownProduct))
	}

	now := s.now()
	review := &model.ProductReview{
		ID:        s.newID(),
		ProductID: productID,
		UserID:    userID,
		Comment:   comment,
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("product_id", productID.String()).Msg("failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", missingReference(err, model.ErrProductNotFound, model.ErrUnknownProduct))
	}

	s.logger.Info().
		Str("review_id", review.ID.String()).
		Str("product_id", productID.String()).
		Msg("review created")

	return review, nil
}
