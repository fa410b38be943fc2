package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"go.uber.org/zap"
)

// Catalog is the part of the product repository the engine reserves stock
// through.
type Catalog interface {
	FindByCode(ctx context.Context, code string) (*model.Product, error)
	AdjustStock(ctx context.Context, code string, delta int) error
}

// Engine keeps sessions consistent with stock: adding a line takes the
// quantity out of the catalog right away and removing it puts it back.
type Engine struct {
	catalog Catalog
	logger  logger.ZapLogger
}

func NewEngine(catalog Catalog, log logger.ZapLogger) *Engine {
	return &Engine{catalog: catalog, logger: log}
}

// Add reserves qty units of code for the session. The stored quantity is
// already net of what the session holds, so qty is checked against it alone.
func (e *Engine) Add(ctx context.Context, s *Session, code string, qty int) (model.CartLine, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.CartLine{}, apperr.Validation("select a product")
	}
	if qty <= 0 {
		return model.CartLine{}, apperr.Validation("quantity must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := e.catalog.FindByCode(ctx, code)
	if err != nil {
		return model.CartLine{}, err
	}
	if p == nil {
		return model.CartLine{}, apperr.NotFound("product %s not found", code)
	}

	idx := s.indexOf(code)
	if qty > p.Quantity {
		if idx >= 0 {
			return model.CartLine{}, apperr.Stock("limit exceeded: %d already in cart, only %d more available", s.lines[idx].Quantity, p.Quantity)
		}
		return model.CartLine{}, apperr.Stock("quantity unavailable, stock: %d", p.Quantity)
	}

	if err := e.catalog.AdjustStock(ctx, code, -qty); err != nil {
		return model.CartLine{}, err
	}

	if idx >= 0 {
		s.lines[idx].SetQuantity(s.lines[idx].Quantity + qty)
	} else {
		s.lines = append(s.lines, model.NewCartLine(p, qty))
		idx = len(s.lines) - 1
	}

	e.logger.Debug("stock reserved", zap.String("session_id", s.ID), zap.String("code", code), zap.Int("quantity", qty))
	return s.lines[idx], nil
}

// Remove drops the line for code and releases its whole reservation.
func (e *Engine) Remove(ctx context.Context, s *Session, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(code)
	if idx < 0 {
		return apperr.NotFound("item %s is not in the cart", code)
	}

	line := s.lines[idx]
	if err := e.release(ctx, s, line); err != nil {
		return err
	}
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)

	e.logger.Debug("stock released", zap.String("session_id", s.ID), zap.String("code", code), zap.Int("quantity", line.Quantity))
	return nil
}

// Clear releases every line one by one. The releases are not one
// transaction: when line N fails, lines before it are already back in stock
// and removed, while line N and the rest stay in the cart still reserved.
func (e *Engine) Clear(ctx context.Context, s *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.lines) > 0 {
		line := s.lines[0]
		if err := e.release(ctx, s, line); err != nil {
			e.logger.Error("cart partially cleared",
				zap.String("session_id", s.ID),
				zap.String("code", line.Code),
				zap.Int("lines_left", len(s.lines)),
				zap.Error(err),
			)
			return fmt.Errorf("release %s: %w", line.Code, err)
		}
		s.lines = s.lines[1:]
	}
	s.lines = nil
	return nil
}

// release puts a line's reservation back. A product deleted while reserved
// has no stock to return to, so the line is simply dropped.
func (e *Engine) release(ctx context.Context, s *Session, line model.CartLine) error {
	err := e.catalog.AdjustStock(ctx, line.Code, line.Quantity)
	if apperr.Is(err, apperr.KindNotFound) {
		e.logger.Warn("released line of a deleted product",
			zap.String("session_id", s.ID),
			zap.String("code", line.Code),
			zap.Int("quantity", line.Quantity),
		)
		return nil
	}
	return err
}
