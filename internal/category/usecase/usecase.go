package usecase

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/category"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

// ListCategories returns the standard categories first, in their fixed order,
// followed by any other category already used by a product.
func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	used, err := uc.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(used))
	for _, c := range used {
		counts[c.Code] = c.ProductCount
	}

	out := make([]model.Category, 0, len(model.StandardCategories)+len(used))
	for _, c := range model.StandardCategories {
		c.ProductCount = counts[c.Code]
		delete(counts, c.Code)
		out = append(out, c)
	}
	// used is ordered by code already
	for _, c := range used {
		if _, extra := counts[c.Code]; !extra {
			continue
		}
		c.Label = model.CategoryLabel(c.Code)
		out = append(out, c)
	}
	return out, nil
}
