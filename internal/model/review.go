package model

import "github.com/google/uuid"

// ProductReview is a review row as stored.
type ProductReview struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Comment   *string   `json:"comment" db:"comment"`
	Rating    *int32    `json:"rating" db:"rating"`
	CreatedAt int64     `json:"created_at" db:"created_at"`
	UpdatedAt int64     `json:"updated_at" db:"updated_at"`
}

// Review is the view of a review embedded in ProductWithReviews.
type Review struct {
	UserID    uuid.UUID `json:"user_id"`
	Comment   *string   `json:"comment"`
	Rating    *int32    `json:"rating"`
	CreatedAt int64     `json:"created_at"`
}

// CreateReviewRequest represents the request payload for reviewing a product.
type CreateReviewRequest struct {
	UserID  string  `json:"user_id" validate:"required,uuid"`
	Comment *string `json:"comment,omitempty"`
	Rating  *int32  `json:"rating,omitempty"`
}
