package model

import "github.com/google/uuid"

// Category groups products in the catalogue.
type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt int64     `json:"created_at" db:"created_at"`
	UpdatedAt int64     `json:"updated_at" db:"updated_at"`
	Version   int32     `json:"-" db:"version"`
}

// CreateCategoryRequest represents the request payload for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}

// UpdateCategoryRequest represents the request payload for renaming a category.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,notblank"`
}
