package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/cart"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/sale"
	"github.com/fekuna/omnipos-pos-service/internal/sale/dto"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const publishTimeout = 3 * time.Second

type saleUseCase struct {
	repo      sale.Repository
	sessions  *cart.SessionStore
	publisher sale.EventPublisher
	logger    logger.ZapLogger
	now       func() time.Time
}

// NewSaleUseCase builds the sale recorder. publisher may be nil.
func NewSaleUseCase(repo sale.Repository, sessions *cart.SessionStore, publisher sale.EventPublisher, log logger.ZapLogger) sale.UseCase {
	return &saleUseCase{
		repo:      repo,
		sessions:  sessions,
		publisher: publisher,
		logger:    log,
		now:       time.Now,
	}
}

// FinalizeSale turns the session's reservations into a recorded sale. Stock
// is not touched: it was taken when the lines were added.
func (uc *saleUseCase) FinalizeSale(ctx context.Context, input *dto.FinalizeSaleInput) (*model.Sale, error) {
	method, err := model.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	s, ok := uc.sessions.Lookup(input.SessionID)
	if !ok {
		return nil, apperr.EmptyCart()
	}

	var recorded *model.Sale
	err = s.Checkout(func(lines []model.CartLine) error {
		var tendered *decimal.Decimal
		if method == model.PaymentCash {
			amount, err := model.ParseAmount("amount received", input.Tendered)
			if err != nil {
				return err
			}
			tendered = &amount
		}

		pending, err := model.NewSale(lines, method, tendered, uc.now().UTC())
		if err != nil {
			return err
		}

		if _, err := uc.repo.Record(ctx, pending); err != nil {
			uc.logger.Error("failed to record sale", zap.String("session_id", s.ID), zap.Error(err))
			return err
		}
		recorded = pending
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("sale finalized",
		zap.Int64("sale_id", recorded.ID),
		zap.String("session_id", s.ID),
		zap.String("total", recorded.Total.StringFixed(2)),
		zap.String("payment_method", string(recorded.PaymentMethod)),
	)

	uc.publish(recorded)
	return recorded, nil
}

func (uc *saleUseCase) publish(s *model.Sale) {
	if uc.publisher == nil {
		return
	}
	// The sale is committed; a lost event must not undo it.
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := uc.publisher.PublishSaleFinalized(ctx, s); err != nil {
		uc.logger.Warn("failed to publish sale event", zap.Int64("sale_id", s.ID), zap.Error(err))
	}
}

func (uc *saleUseCase) GetSale(ctx context.Context, id int64) (*model.Sale, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.NotFound("sale #%d not found", id)
	}
	return s, nil
}
