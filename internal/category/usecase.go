package category

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
}
