package handler

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/api/posv1"
	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/product"
	"github.com/fekuna/omnipos-pos-service/internal/product/dto"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

var _ posv1.ProductServiceServer = (*ProductHandler)(nil)

func (h *ProductHandler) RegisterProduct(ctx context.Context, req *posv1.RegisterProductRequest) (*posv1.ProductResponse, error) {
	input := &dto.RegisterProductInput{
		Code:        req.Code,
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Description: req.Description,
		ImageRef:    req.ImageRef,
	}

	p, err := h.uc.RegisterProduct(ctx, input)
	if err != nil {
		h.logger.Debug("register product rejected", zap.String("code", req.Code), zap.Error(err))
		return nil, apperr.GRPCStatus(err)
	}

	return &posv1.ProductResponse{Product: mapProductToProto(p)}, nil
}

func (h *ProductHandler) GetProduct(ctx context.Context, req *posv1.GetProductRequest) (*posv1.ProductResponse, error) {
	p, err := h.uc.GetProduct(ctx, req.Code)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	return &posv1.ProductResponse{Product: mapProductToProto(p)}, nil
}

func (h *ProductHandler) SearchProducts(ctx context.Context, req *posv1.SearchProductsRequest) (*posv1.SearchProductsResponse, error) {
	products, err := h.uc.SearchProducts(ctx, req.Filter)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}

	protos := make([]*posv1.Product, len(products))
	for i := range products {
		protos[i] = mapProductToProto(&products[i])
	}

	return &posv1.SearchProductsResponse{Products: protos}, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *posv1.DeleteProductRequest) (*posv1.Empty, error) {
	if err := h.uc.DeleteProduct(ctx, req.Code); err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return &posv1.Empty{}, nil
}

func (h *ProductHandler) Restock(ctx context.Context, req *posv1.RestockRequest) (*posv1.ProductResponse, error) {
	p, err := h.uc.Restock(ctx, req.Code, req.Quantity)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return &posv1.ProductResponse{Product: mapProductToProto(p)}, nil
}

func mapProductToProto(m *model.Product) *posv1.Product {
	if m == nil {
		return nil
	}

	desc := ""
	if m.Description != nil {
		desc = *m.Description
	}

	imageRef := ""
	if m.ImageRef != nil {
		imageRef = *m.ImageRef
	}

	return &posv1.Product{
		Code:         m.Code,
		Name:         m.Name,
		Price:        m.Price.StringFixed(2),
		Quantity:     m.Quantity,
		Category:     m.Category,
		Description:  desc,
		ImageRef:     imageRef,
		RegisteredAt: m.RegisteredAt,
	}
}
