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

const productSelect = `
	SELECT products.id, products.name, products.description, products.price, products.stock,
		categories.name AS category_name, products.created_at, products.updated_at, products.version
	FROM products
	INNER JOIN categories ON categories.id = products.category_id
`

// ProductRepository stores products in PostgreSQL.
type ProductRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) *ProductRepository {
	return &ProductRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.CategoryName,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Version,
	)
}

// List retrieves every product with its category name, in insertion order.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := productSelect + `ORDER BY products.created_at, products.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := productSelect + `WHERE products.id = $1`

	var p model.Product
	if err := scanProduct(r.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, model.ErrProductNotFound
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetByIDWithReviews retrieves a product and all of its reviews in one query.
func (r *ProductRepository) GetByIDWithReviews(ctx context.Context, id uuid.UUID) (*model.ProductWithReviews, error) {
	query := `
		SELECT products.id, products.name, products.description, products.price, products.stock,
			categories.name AS category_name, products.created_at, products.updated_at,
			product_reviews.user_id, product_reviews.comment, product_reviews.rating,
			product_reviews.created_at AS review_created_at
		FROM products
		LEFT JOIN categories ON categories.id = products.category_id
		LEFT JOIN product_reviews ON product_reviews.product_id = products.id
		WHERE products.id = $1
		ORDER BY product_reviews.created_at, product_reviews.id
	`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product with reviews")
		return nil, fmt.Errorf("failed to query product with reviews: %w", err)
	}
	defer rows.Close()

	var joined []productReviewRow
	for rows.Next() {
		var row productReviewRow
		err := rows.Scan(
			&row.ProductID,
			&row.Name,
			&row.Description,
			&row.Price,
			&row.Stock,
			&row.CategoryName,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.ReviewUserID,
			&row.ReviewComment,
			&row.ReviewRating,
			&row.ReviewCreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product review row")
			return nil, fmt.Errorf("failed to scan product with reviews: %w", err)
		}
		joined = append(joined, row)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product review rows")
		return nil, fmt.Errorf("error iterating product with reviews: %w", err)
	}

	product, err := collapseProductReviews(joined)
	if err != nil {
		r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return nil, err
	}

	r.logger.Debug().
		Str("product_id", id.String()).
		Int("review_count", len(product.Reviews)).
		Msg("retrieved product with reviews")

	return product, nil
}

// Create inserts a new product referencing categoryID.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product, categoryID uuid.UUID) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		categoryID,
		product.CreatedAt,
		product.UpdatedAt,
		product.Version,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("product_id", product.ID.String()).
			Str("category_id", categoryID.String()).
			Msg("failed to create product")
		if domainErr := translateError(err, model.ErrCategoryNotFound); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Str("product_id", product.ID.String()).Msg("product created successfully")
	return nil
}

// Update applies patch to the product with the given id and version. An empty
// patch issues no statement. When no row matches, ErrProductNotFound means
// the product is gone and ErrConcurrentUpdate means its version moved on.
func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, version int32, updatedAt int64, patch model.ProductPatch) error {
	query, args, ok := buildProductUpdate(id, version, updatedAt, patch)
	if !ok {
		return nil
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to update product")
		if domainErr := translateError(err, nil); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() != 1 {
		found, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			r.logger.Debug().Str("product_id", id.String()).Msg("product deleted before update")
			return model.ErrProductNotFound
		}

		r.logger.Warn().
			Str("product_id", id.String()).
			Int32("version", version).
			Msg("product changed since it was read")
		return model.ErrConcurrentUpdate
	}

	return nil
}

func (r *ProductRepository) exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&found)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to check product existence")
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return found, nil
}

// Delete removes a product and, through the foreign key, its reviews.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() != 1 {
		r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
		return model.ErrProductNotFound
	}

	return nil
}
