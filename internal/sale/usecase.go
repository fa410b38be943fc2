package sale

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/sale/dto"
)

type UseCase interface {
	FinalizeSale(ctx context.Context, input *dto.FinalizeSaleInput) (*model.Sale, error)
	GetSale(ctx context.Context, id int64) (*model.Sale, error)
}
