package handler

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/api/posv1"
	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/category"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

var _ posv1.CategoryServiceServer = (*CategoryHandler)(nil)

func (h *CategoryHandler) ListCategories(ctx context.Context, _ *posv1.Empty) (*posv1.ListCategoriesResponse, error) {
	categories, err := h.uc.ListCategories(ctx)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	protos := make([]*posv1.Category, len(categories))
	for i, c := range categories {
		protos[i] = &posv1.Category{
			Code:         c.Code,
			Label:        c.Label,
			ProductCount: c.ProductCount,
		}
	}
	return &posv1.ListCategoriesResponse{Categories: protos}, nil
}
