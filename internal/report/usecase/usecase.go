package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/report"
	"github.com/fekuna/omnipos-pos-service/pkg/cache"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	reportLimit = 5

	keyTopStock        = "reports:top_stock"
	keySalesByCategory = "reports:sales_by_category"
)

type reportUseCase struct {
	repo   report.Repository
	cache  *cache.RedisClient
	ttl    time.Duration
	logger logger.ZapLogger
}

// NewReportUseCase caches results for ttl. A nil cache disables caching.
func NewReportUseCase(repo report.Repository, cache *cache.RedisClient, ttl time.Duration, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: log,
	}
}

func (uc *reportUseCase) TopStock(ctx context.Context) ([]model.StockLevel, error) {
	var levels []model.StockLevel
	if uc.fromCache(ctx, keyTopStock, &levels) {
		return levels, nil
	}

	levels, err := uc.repo.TopStock(ctx, reportLimit)
	if err != nil {
		return nil, err
	}
	uc.toCache(ctx, keyTopStock, levels)
	return levels, nil
}

func (uc *reportUseCase) SalesByCategory(ctx context.Context) ([]model.CategorySales, error) {
	var rows []model.CategorySales
	if uc.fromCache(ctx, keySalesByCategory, &rows) {
		return rows, nil
	}

	rows, err := uc.repo.SalesByCategory(ctx, reportLimit)
	if err != nil {
		return nil, err
	}
	uc.toCache(ctx, keySalesByCategory, rows)
	return rows, nil
}

func (uc *reportUseCase) fromCache(ctx context.Context, key string, dst interface{}) bool {
	if uc.cache == nil {
		return false
	}
	hit, err := uc.cache.GetJSON(ctx, key, dst)
	if err != nil {
		// Fall through to the database
		uc.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

func (uc *reportUseCase) toCache(ctx context.Context, key string, v interface{}) {
	if uc.cache == nil || uc.ttl <= 0 {
		return
	}
	if err := uc.cache.SetJSON(ctx, key, v, uc.ttl); err != nil {
		uc.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
