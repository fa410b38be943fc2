package usecase

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/cart"
	"github.com/fekuna/omnipos-pos-service/internal/cart/dto"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type cartUseCase struct {
	engine   *cart.Engine
	sessions *cart.SessionStore
	logger   logger.ZapLogger
}

func NewCartUseCase(engine *cart.Engine, sessions *cart.SessionStore, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		engine:   engine,
		sessions: sessions,
		logger:   log,
	}
}

func (uc *cartUseCase) StartSession(ctx context.Context) (*dto.CartView, error) {
	s := uc.sessions.Start()
	uc.logger.Info("cart session started", zap.String("session_id", s.ID))
	return view(s), nil
}

func (uc *cartUseCase) ViewCart(ctx context.Context, sessionID string) (*dto.CartView, error) {
	s, ok := uc.sessions.Lookup(sessionID)
	if !ok {
		return emptyView(sessionID), nil
	}
	return view(s), nil
}

func (uc *cartUseCase) AddToCart(ctx context.Context, sessionID, code string, quantity int) (*dto.CartView, error) {
	s := uc.sessions.Get(sessionID)
	if _, err := uc.engine.Add(ctx, s, code, quantity); err != nil {
		uc.logFailure("failed to add to cart", s, code, err)
		return nil, err
	}
	return view(s), nil
}

func (uc *cartUseCase) RemoveFromCart(ctx context.Context, sessionID, code string) (*dto.CartView, error) {
	s, ok := uc.sessions.Lookup(sessionID)
	if !ok {
		return nil, apperr.NotFound("item %s is not in the cart", code)
	}
	if err := uc.engine.Remove(ctx, s, code); err != nil {
		uc.logFailure("failed to remove from cart", s, code, err)
		return nil, err
	}
	return view(s), nil
}

func (uc *cartUseCase) ClearCart(ctx context.Context, sessionID string) (*dto.CartView, error) {
	s, ok := uc.sessions.Lookup(sessionID)
	if !ok {
		return emptyView(sessionID), nil
	}
	if err := uc.engine.Clear(ctx, s); err != nil {
		return nil, err
	}
	uc.logger.Info("cart cleared", zap.String("session_id", s.ID))
	return view(s), nil
}

func (uc *cartUseCase) OpenCheckout(ctx context.Context, sessionID string) (*dto.CartView, error) {
	s, ok := uc.sessions.Lookup(sessionID)
	if !ok || s.IsEmpty() {
		return nil, apperr.EmptyCart()
	}
	return view(s), nil
}

func (uc *cartUseCase) ReleaseAll(ctx context.Context) error {
	var errs []error
	for _, s := range uc.sessions.All() {
		if s.IsEmpty() {
			continue
		}
		if err := uc.engine.Clear(ctx, s); err != nil {
			errs = append(errs, err)
			continue
		}
		uc.logger.Info("open cart released", zap.String("session_id", s.ID))
	}
	return errors.Join(errs...)
}

func (uc *cartUseCase) logFailure(msg string, s *cart.Session, code string, err error) {
	fields := []zap.Field{zap.String("session_id", s.ID), zap.String("code", code), zap.Error(err)}
	if apperr.Is(err, apperr.KindPersistence) {
		uc.logger.Error(msg, fields...)
		return
	}
	uc.logger.Debug(msg, fields...)
}

func emptyView(sessionID string) *dto.CartView {
	return &dto.CartView{
		SessionID: sessionID,
		Lines:     []model.CartLine{},
		Total:     decimal.Zero,
	}
}

func view(s *cart.Session) *dto.CartView {
	lines := s.Lines()
	return &dto.CartView{
		SessionID: s.ID,
		Lines:     lines,
		Total:     model.LinesTotal(lines),
	}
}
