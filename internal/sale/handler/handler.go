package handler

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-pos-service/internal/api/posv1"
	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/notice"
	"github.com/fekuna/omnipos-pos-service/internal/sale"
	"github.com/fekuna/omnipos-pos-service/internal/sale/dto"
	"github.com/fekuna/omnipos-pos-service/internal/session"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"go.uber.org/zap"
)

type SaleHandler struct {
	uc     sale.UseCase
	board  *notice.Board
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, board *notice.Board, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		board:  board,
		logger: log,
	}
}

var _ posv1.SaleServiceServer = (*SaleHandler)(nil)

func (h *SaleHandler) FinalizeSale(ctx context.Context, req *posv1.FinalizeSaleRequest) (*posv1.SaleResponse, error) {
	sessionID := session.GetSessionID(ctx)
	s, err := h.uc.FinalizeSale(ctx, &dto.FinalizeSaleInput{
		SessionID:     sessionID,
		PaymentMethod: req.PaymentMethod,
		Tendered:      req.Tendered,
	})
	if err != nil {
		h.logger.Debug("finalize sale rejected", zap.String("session_id", sessionID), zap.Error(err))
		return nil, apperr.GRPCStatus(err)
	}

	msg := saleNotice(s)
	h.board.Post(msg)

	return &posv1.SaleResponse{
		Sale:   mapSaleToProto(s),
		Notice: msg,
	}, nil
}

func (h *SaleHandler) GetSale(ctx context.Context, req *posv1.GetSaleRequest) (*posv1.SaleResponse, error) {
	s, err := h.uc.GetSale(ctx, req.ID)
	if err != nil {
		return nil, apperr.GRPCStatus(err)
	}
	return &posv1.SaleResponse{Sale: mapSaleToProto(s)}, nil
}

func (h *SaleHandler) GetNotice(ctx context.Context, _ *posv1.Empty) (*posv1.NoticeResponse, error) {
	return &posv1.NoticeResponse{Message: h.board.Current()}, nil
}

func saleNotice(s *model.Sale) string {
	msg := fmt.Sprintf("Sale #%d finalized", s.ID)
	if s.Change.Valid {
		msg += ". Change: " + model.FormatMoney(s.Change.Decimal)
	}
	return msg
}

func mapSaleToProto(s *model.Sale) *posv1.Sale {
	items := make([]*posv1.SaleItem, len(s.Items))
	for i, it := range s.Items {
		items[i] = &posv1.SaleItem{
			ProductCode: it.ProductCode,
			Name:        it.Name,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal.StringFixed(2),
		}
	}

	out := &posv1.Sale{
		ID:            s.ID,
		SoldAt:        s.SoldAt,
		Total:         s.Total.StringFixed(2),
		PaymentMethod: string(s.PaymentMethod),
		Items:         items,
	}
	if s.Tendered.Valid {
		out.Tendered = s.Tendered.Decimal.StringFixed(2)
	}
	if s.Change.Valid {
		out.Change = s.Change.Decimal.StringFixed(2)
	}
	return out
}
