package product

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/product/dto"
)

type UseCase interface {
	RegisterProduct(ctx context.Context, input *dto.RegisterProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, code string) (*model.Product, error)
	SearchProducts(ctx context.Context, filter string) ([]model.Product, error)
	DeleteProduct(ctx context.Context, code string) error

	Restock(ctx context.Context, code string, quantity int) (*model.Product, error)
}
