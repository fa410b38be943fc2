package report

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/model"
)

type Repository interface {
	TopStock(ctx context.Context, limit int) ([]model.StockLevel, error)
	SalesByCategory(ctx context.Context, limit int) ([]model.CategorySales, error)
}
