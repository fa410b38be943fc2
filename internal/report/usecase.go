package report

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/model"
)

// UseCase serves read-only projections for the charts screen.
type UseCase interface {
	TopStock(ctx context.Context) ([]model.StockLevel, error)
	SalesByCategory(ctx context.Context) ([]model.CategorySales, error)
}
