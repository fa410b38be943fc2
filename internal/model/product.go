package model

import (
	"strings"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/shopspring/decimal"
)

const DefaultCategory = "outros"

type Product struct {
	Code         string          `db:"code" json:"code"`
	Name         string          `db:"name" json:"name"`
	Price        decimal.Decimal `db:"price" json:"price"`
	Quantity     int             `db:"quantity" json:"quantity"`
	Category     string          `db:"category" json:"category"`
	Description  *string         `db:"description" json:"description"` // Nullable
	ImageRef     *string         `db:"image_ref" json:"image_ref"`     // Nullable
	RegisteredAt time.Time       `db:"registered_at" json:"registered_at"`
}

// NewProduct validates and normalizes a product record. Price is rounded to
// two places and an empty category falls back to DefaultCategory.
func NewProduct(code, name string, price decimal.Decimal, quantity int, category string) (*Product, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)

	if code == "" {
		return nil, apperr.Validation("product code is required")
	}
	if name == "" {
		return nil, apperr.Validation("product name is required")
	}
	price = RoundMoney(price)
	if !price.IsPositive() {
		return nil, apperr.Validation("price must be greater than zero")
	}
	if quantity < 0 {
		return nil, apperr.Validation("quantity cannot be negative")
	}
	if category == "" {
		category = DefaultCategory
	}

	return &Product{
		Code:     code,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		Category: category,
	}, nil
}

func (p *Product) SetDescription(desc string) {
	p.Description = optional(desc)
}

func (p *Product) SetImageRef(ref string) {
	p.ImageRef = optional(ref)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
