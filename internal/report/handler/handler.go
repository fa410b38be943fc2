package handler

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/api/posv1"
	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/report"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
)

type ReportHandler struct {
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: log,
	}
}

var _ posv1.ReportServiceServer = (*ReportHandler)(nil)

func (h *ReportHandler) TopStock(ctx context.Context, _ *posv1.Empty) (*posv1.TopStockResponse, error) {
	levels, err := h.uc.TopStock(ctx)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	items := make([]*posv1.StockLevel, len(levels))
	for i, l := range levels {
		items[i] = &posv1.StockLevel{Name: l.Name, Quantity: l.Quantity}
	}
	return &posv1.TopStockResponse{Items: items}, nil
}

func (h *ReportHandler) SalesByCategory(ctx context.Context, _ *posv1.Empty) (*posv1.SalesByCategoryResponse, error) {
	sales, err := h.uc.SalesByCategory(ctx)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	items := make([]*posv1.CategorySales, len(sales))
	for i, s := range sales {
		items[i] = &posv1.CategorySales{Category: s.Category, UnitsSold: s.UnitsSold}
	}
	return &posv1.SalesByCategoryResponse{Items: items}, nil
}
