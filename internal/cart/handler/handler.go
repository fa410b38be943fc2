package handler

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/api/posv1"
	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/cart"
	"github.com/fekuna/omnipos-pos-service/internal/cart/dto"
	"github.com/fekuna/omnipos-pos-service/internal/session"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"go.uber.org/zap"
)

type CartHandler struct {
	uc     cart.UseCase
	logger logger.ZapLogger
}

func NewCartHandler(uc cart.UseCase, log logger.ZapLogger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: log,
	}
}

var _ posv1.CartServiceServer = (*CartHandler)(nil)

func (h *CartHandler) StartSession(ctx context.Context, _ *posv1.Empty) (*posv1.CartResponse, error) {
	return respond(h.uc.StartSession(ctx))
}

func (h *CartHandler) ViewCart(ctx context.Context, _ *posv1.Empty) (*posv1.CartResponse, error) {
	return respond(h.uc.ViewCart(ctx, session.GetSessionID(ctx)))
}

func (h *CartHandler) AddToCart(ctx context.Context, req *posv1.AddToCartRequest) (*posv1.CartResponse, error) {
	sessionID := session.GetSessionID(ctx)
	view, err := h.uc.AddToCart(ctx, sessionID, req.Code, req.Quantity)
	if err != nil {
		h.logger.Debug("add to cart rejected",
			zap.String("session_id", sessionID),
			zap.String("code", req.Code),
			zap.Error(err),
		)
	}
	return respond(view, err)
}

func (h *CartHandler) RemoveFromCart(ctx context.Context, req *posv1.RemoveFromCartRequest) (*posv1.CartResponse, error) {
	return respond(h.uc.RemoveFromCart(ctx, session.GetSessionID(ctx), req.Code))
}

func (h *CartHandler) ClearCart(ctx context.Context, _ *posv1.Empty) (*posv1.CartResponse, error) {
	return respond(h.uc.ClearCart(ctx, session.GetSessionID(ctx)))
}

func (h *CartHandler) OpenCheckout(ctx context.Context, _ *posv1.Empty) (*posv1.CartResponse, error) {
	return respond(h.uc.OpenCheckout(ctx, session.GetSessionID(ctx)))
}

func respond(view *dto.CartView, err error) (*posv1.CartResponse, error) {
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return &posv1.CartResponse{Cart: mapCartToProto(view)}, nil
}

func mapCartToProto(v *dto.CartView) *posv1.Cart {
	lines := make([]*posv1.CartLine, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = &posv1.CartLine{
			Code:      l.Code,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal.StringFixed(2),
		}
	}

	return &posv1.Cart{
		SessionID: v.SessionID,
		Lines:     lines,
		Total:     v.Total.StringFixed(2),
	}
}
