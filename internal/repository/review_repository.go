package repository

import (
	"context"
	"fmt"

	"catalog-service/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ReviewRepository stores product reviews in PostgreSQL.
type ReviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) *ReviewRepository {
	return &ReviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// Create inserts a review. A missing product surfaces as ErrProductNotFound.
func (r *ReviewRepository) Create(ctx context.Context, review *model.ProductReview) error {
	query := `
		INSERT INTO product_reviews (id, product_id, user_id, comment, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.ProductID,
		review.UserID,
		review.Comment,
		review.Rating,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("review_id", review.ID.String()).
			Str("product_id", review.ProductID.String()).
			Msg("failed to create review")
		if domainErr := translateError(err, model.ErrProductNotFound); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	r.logger.Debug().
		Str("review_id", review.ID.String()).
		Str("product_id", review.ProductID.String()).
		Msg("review created successfully")

	return nil
}
