package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/product"
	"github.com/fekuna/omnipos-pos-service/internal/product/dto"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo            product.Repository
	logger          logger.ZapLogger
	defaultCategory string
	now             func() time.Time
}

type Option func(*productUseCase)

// WithDefaultCategory sets the category given to products registered without one.
func WithDefaultCategory(category string) Option {
	return func(uc *productUseCase) {
		if c := strings.TrimSpace(category); c != "" {
			uc.defaultCategory = c
		}
	}
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger, opts ...Option) product.UseCase {
	uc := &productUseCase{
		repo:            repo,
		logger:          log,
		defaultCategory: model.DefaultCategory,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *productUseCase) RegisterProduct(ctx context.Context, input *dto.RegisterProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.Code) == "" || strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Price) == "" || strings.TrimSpace(input.Quantity) == "" {
		return nil, apperr.Validation("fill in all required fields: code, name, price and quantity")
	}

	price, err := model.ParseAmount("price", input.Price)
	if err != nil {
		return nil, err
	}
	quantity, err := model.ParseQuantity("quantity", input.Quantity)
	if err != nil {
		return nil, err
	}

	category := input.Category
	if strings.TrimSpace(category) == "" {
		category = uc.defaultCategory
	}

	p, err := model.NewProduct(input.Code, input.Name, price, quantity, category)
	if err != nil {
		return nil, err
	}
	p.SetDescription(input.Description)
	p.SetImageRef(input.ImageRef)
	p.RegisteredAt = uc.now().UTC()

	if err := uc.repo.Upsert(ctx, p); err != nil {
		uc.logger.Error("failed to save product", zap.String("code", p.Code), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("product saved", zap.String("code", p.Code), zap.Int("quantity", p.Quantity))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, code string) (*model.Product, error) {
	p, err := uc.repo.FindByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("product %s not found", code)
	}
	return p, nil
}

func (uc *productUseCase) SearchProducts(ctx context.Context, filter string) ([]model.Product, error) {
	return uc.repo.Search(ctx, filter)
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return apperr.Validation("product code is required")
	}

	if err := uc.repo.Delete(ctx, code); err != nil {
		if apperr.Is(err, apperr.KindPersistence) {
			uc.logger.Error("failed to delete product", zap.String("code", code), zap.Error(err))
		}
		return err
	}

	uc.logger.Info("product deleted", zap.String("code", code))
	return nil
}

func (uc *productUseCase) Restock(ctx context.Context, code string, quantity int) (*model.Product, error) {
	if quantity <= 0 {
		return nil, apperr.Validation("restock quantity must be greater than zero")
	}

	if err := uc.repo.AdjustStock(ctx, code, quantity); err != nil {
		if apperr.Is(err, apperr.KindPersistence) {
			uc.logger.Error("failed to restock product", zap.String("code", code), zap.Error(err))
		}
		return nil, err
	}

	uc.logger.Info("product restocked", zap.String("code", code), zap.Int("quantity", quantity))
	return uc.GetProduct(ctx, code)
}
