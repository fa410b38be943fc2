package product

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/model"
)

type Repository interface {
	// Upsert inserts or fully replaces the product keyed by code.
	Upsert(ctx context.Context, product *model.Product) error
	FindByCode(ctx context.Context, code string) (*model.Product, error)
	// Search matches code or name case-insensitively, ordered by name.
	Search(ctx context.Context, filter string) ([]model.Product, error)
	Delete(ctx context.Context, code string) error

	// AdjustStock applies quantity += delta. Callers check availability first.
	AdjustStock(ctx context.Context, code string, delta int) error
}
