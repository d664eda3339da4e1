package repository

import (
	"fmt"
	"strings"

	"catalog-service/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// buildProductUpdate assembles the UPDATE statement for a sparse patch. Only
// present fields get a SET clause; updated_at and version are always advanced.
// ok is false when the patch changes nothing and no statement should be run.
func buildProductUpdate(id uuid.UUID, version int32, updatedAt int64, patch model.ProductPatch) (query string, args []any, ok bool) {
	if patch.IsEmpty() {
		return "", nil, false
	}

	var sets []string
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Price != nil {
		set("price", *patch.Price)
	}
	if patch.Stock != nil {
		set("stock", *patch.Stock)
	}
	set("updated_at", updatedAt)
	sets = append(sets, "version = version + 1")

	args = append(args, id, version)
	query = fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d AND version = $%d",
		strings.Join(sets, ", "),
		len(args)-1,
		len(args),
	)

	return query, args, true
}

// productReviewRow is one row of the product/category/review left join.
// The review columns are all NULL when the product has no reviews.
type productReviewRow struct {
	ProductID    uuid.UUID
	Name         string
	Description  *string
	Price        decimal.Decimal
	Stock        int32
	CategoryName *string
	CreatedAt    int64
	UpdatedAt    int64

	ReviewUserID    *uuid.UUID
	ReviewComment   *string
	ReviewRating    *int32
	ReviewCreatedAt *int64
}

// collapseProductReviews folds the joined rows of one product back into a
// ProductWithReviews. Product fields come from the first row. A row carries a
// review only when its review user id is set; comment and rating are nullable
// on their own and cannot mark presence.
func collapseProductReviews(rows []productReviewRow) (*model.ProductWithReviews, error) {
	if len(rows) == 0 {
		return nil, model.ErrProductNotFound
	}

	first := rows[0]
	product := &model.ProductWithReviews{
		ID:          first.ProductID,
		Name:        first.Name,
		Description: first.Description,
		Price:       first.Price,
		Stock:       first.Stock,
		CreatedAt:   first.CreatedAt,
		UpdatedAt:   first.UpdatedAt,
	}
	if first.CategoryName != nil {
		product.CategoryName = *first.CategoryName
	}

	var reviews []model.Review
	for _, row := range rows {
		if row.ReviewUserID == nil {
			continue
		}

		review := model.Review{
			UserID:  *row.ReviewUserID,
			Comment: row.ReviewComment,
			Rating:  row.ReviewRating,
		}
		if row.ReviewCreatedAt != nil {
			review.CreatedAt = *row.ReviewCreatedAt
		}
		reviews = append(reviews, review)
	}

	if len(reviews) > 0 {
		product.Reviews = reviews
	}

	return product, nil
}
