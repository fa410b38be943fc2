package category

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/model"
)

type Repository interface {
	// CountProducts returns every category in use with its product count.
	CountProducts(ctx context.Context) ([]model.Category, error)
}
