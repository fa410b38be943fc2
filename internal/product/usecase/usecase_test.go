package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/product/dto"
	"github.com/fekuna/omnipos-pos-service/internal/product/producttest"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(repo *producttest.Repository) *productUseCase {
	uc := NewProductUseCase(repo, logger.NewNop()).(*productUseCase)
	uc.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestRegisterProduct(t *testing.T) {
	repo := producttest.NewRepository()
	uc := newUseCase(repo)

	p, err := uc.RegisterProduct(context.Background(), &dto.RegisterProductInput{
		Code:     " A1 ",
		Name:     "Caneca",
		Price:    "9,90",
		Quantity: "10",
	})
	require.NoError(t, err)
	assert.Equal(t, "A1", p.Code)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("9.90")))
	assert.Equal(t, model.DefaultCategory, p.Category)
	assert.Nil(t, p.Description)
	assert.Equal(t, time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC), p.RegisteredAt)

	stored, err := uc.GetProduct(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, *p, *stored)
}

func TestRegisterProductReplacesExisting(t *testing.T) {
	repo := producttest.NewRepository()
	uc := newUseCase(repo)
	ctx := context.Background()

	_, err := uc.RegisterProduct(ctx, &dto.RegisterProductInput{Code: "A1", Name: "Caneca", Price: "9.90", Quantity: "10"})
	require.NoError(t, err)
	_, err = uc.RegisterProduct(ctx, &dto.RegisterProductInput{Code: "A1", Name: "Caneca grande", Price: "12", Quantity: "4", Category: "cozinha"})
	require.NoError(t, err)

	got, err := uc.GetProduct(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Caneca grande", got.Name)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, "cozinha", got.Category)
}

func TestRegisterProductValidation(t *testing.T) {
	uc := newUseCase(producttest.NewRepository())

	cases := map[string]dto.RegisterProductInput{
		"missing field":    {Code: "A1", Name: "", Price: "1", Quantity: "1"},
		"non numeric":      {Code: "A1", Name: "Caneca", Price: "nove", Quantity: "1"},
		"zero price":       {Code: "A1", Name: "Caneca", Price: "0", Quantity: "1"},
		"negative stock":   {Code: "A1", Name: "Caneca", Price: "1", Quantity: "-1"},
		"fractional stock": {Code: "A1", Name: "Caneca", Price: "1", Quantity: "1,5"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			in := in
			_, err := uc.RegisterProduct(context.Background(), &in)
			assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
		})
	}
}

func TestGetProductMissing(t *testing.T) {
	uc := newUseCase(producttest.NewRepository())
	_, err := uc.GetProduct(context.Background(), "nope")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestDeleteProduct(t *testing.T) {
	repo := producttest.NewRepository(
		model.Product{Code: "A1", Name: "Caneca", Price: decimal.NewFromInt(10), Quantity: 5},
		model.Product{Code: "B2", Name: "Vela", Price: decimal.NewFromInt(4), Quantity: 5},
	)
	repo.Reference("A1")
	uc := newUseCase(repo)
	ctx := context.Background()

	err := uc.DeleteProduct(ctx, "A1")
	assert.True(t, apperr.Is(err, apperr.KindReferential))

	require.NoError(t, uc.DeleteProduct(ctx, "B2"))
	found, err := uc.SearchProducts(ctx, "vela")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = uc.SearchProducts(ctx, "")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "A1", found[0].Code)
}

func TestRestock(t *testing.T) {
	repo := producttest.NewRepository(model.Product{Code: "A1", Name: "Caneca", Price: decimal.NewFromInt(10), Quantity: 5})
	uc := newUseCase(repo)

	p, err := uc.Restock(context.Background(), "A1", 7)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Quantity)

	_, err = uc.Restock(context.Background(), "A1", 0)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	repo.AdjustHook = func(string, int) error { return apperr.Persistence("adjust stock", errors.New("timeout")) }
	_, err = uc.Restock(context.Background(), "A1", 1)
	assert.True(t, apperr.Is(err, apperr.KindPersistence))
	assert.Equal(t, 12, repo.Quantity("A1"))
}

func TestRegisterProductUsesConfiguredDefaultCategory(t *testing.T) {
	uc := NewProductUseCase(producttest.NewRepository(), logger.NewNop(), WithDefaultCategory("misc"))

	p, err := uc.RegisterProduct(context.Background(), &dto.RegisterProductInput{
		Code:     "A1",
		Name:     "Caneca",
		Price:    "9.90",
		Quantity: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, "misc", p.Category)

	p, err = uc.RegisterProduct(context.Background(), &dto.RegisterProductInput{
		Code:     "A2",
		Name:     "Vela",
		Price:    "2",
		Quantity: "1",
		Category: "decor",
	})
	require.NoError(t, err)
	assert.Equal(t, "decor", p.Category)
}
