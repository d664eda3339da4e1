package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CategoryRepository stores categories in PostgreSQL.
type CategoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) *CategoryRepository {
	return &CategoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// List retrieves every category in insertion order.
func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at, version
		FROM categories
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.Version); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at, version
		FROM categories
		WHERE id = $1
	`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt, &c.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("category_id", id.String()).Msg("category not found")
			return nil, model.ErrCategoryNotFound
		}
		r.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &c, nil
}

// Create inserts a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	query := `
		INSERT INTO categories (id, name, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		category.ID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
		category.Version,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", category.ID.String()).Msg("failed to create category")
		if domainErr := translateError(err, nil); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Debug().Str("category_id", category.ID.String()).Msg("category created successfully")
	return nil
}

// Update writes the name and updated_at of category if its version still
// matches, then advances the in-memory version. A category deleted in the
// meantime fails with ErrCategoryNotFound.
func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	query := `
		UPDATE categories
		SET name = $1, updated_at = $2, version = version + 1
		WHERE id = $3 AND version = $4
	`

	tag, err := r.pool.Exec(ctx, query, category.Name, category.UpdatedAt, category.ID, category.Version)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", category.ID.String()).Msg("failed to update category")
		if domainErr := translateError(err, nil); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	if tag.RowsAffected() != 1 {
		var found bool
		err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, category.ID).Scan(&found)
		if err != nil {
			r.logger.Error().Err(err).Str("category_id", category.ID.String()).Msg("failed to check category existence")
			return fmt.Errorf("failed to check category existence: %w", err)
		}
		if !found {
			return model.ErrCategoryNotFound
		}

		r.logger.Warn().
			Str("category_id", category.ID.String()).
			Int32("version", category.Version).
			Msg("category changed since it was read")
		return model.ErrConcurrentUpdate
	}

	category.Version++
	return nil
}

// Delete removes a category. It fails with ErrCategoryNotFound unless exactly
// one row was deleted.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("category_id", id.String()).Msg("failed to delete category")
		if domainErr := translateError(err, model.ErrCategoryInUse); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if tag.RowsAffected() != 1 {
		r.logger.Debug().Str("category_id", id.String()).Msg("category not found")
		return model.ErrCategoryNotFound
	}

	return nil
}
