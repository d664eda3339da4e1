package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalogue. CategoryName is resolved
// through the categories table on read.
type Product struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	Name         string          `json:"name" db:"name"`
	Description  *string         `json:"description" db:"description"`
	Price        decimal.Decimal `json:"price" db:"price"`
	Stock        int32           `json:"stock" db:"stock"`
	CategoryName string          `json:"category_name" db:"category_name"`
	CreatedAt    int64           `json:"created_at" db:"created_at"`
	UpdatedAt    int64           `json:"updated_at" db:"updated_at"`
	Version      int32           `json:"-" db:"version"`
}

// ProductWithReviews is a product together with the reviews written for it.
// Reviews is nil when the product has none.
type ProductWithReviews struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int32           `json:"stock"`
	CategoryName string          `json:"category_name"`
	Reviews      []Review        `json:"reviews,omitempty"`
	CreatedAt    int64           `json:"created_at"`
	UpdatedAt    int64           `json:"updated_at"`
}

// ProductPatch holds the fields of a sparse product update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int32
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Stock == nil
}

// ApplyTo copies every present field onto product.
func (p ProductPatch) ApplyTo(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		description := *p.Description
		product.Description = &description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Stock != nil {
		product.Stock = *p.Stock
	}
}

// CreateProductRequest represents the request payload for creating a product.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,notblank"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Stock       *int32           `json:"stock" validate:"required"`
	CategoryID  string           `json:"category_id" validate:"required,uuid"`
}

// UpdateProductRequest represents the request payload for a sparse product update.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,notblank"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int32           `json:"stock,omitempty"`
}

// Patch converts the request into a ProductPatch.
func (r UpdateProductRequest) Patch() ProductPatch {
	return ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}
