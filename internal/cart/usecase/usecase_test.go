package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/cart"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/internal/product/producttest"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*cartUseCase, *producttest.Repository) {
	repo := producttest.NewRepository(
		model.Product{Code: "A1", Name: "Caneca", Price: decimal.RequireFromString("12.50"), Quantity: 10},
		model.Product{Code: "B2", Name: "Vela", Price: decimal.RequireFromString("4.25"), Quantity: 2},
	)
	log := logger.NewNop()
	uc := NewCartUseCase(cart.NewEngine(repo, log), cart.NewSessionStore(), log).(*cartUseCase)
	return uc, repo
}

func TestCartFlow(t *testing.T) {
	uc, repo := setup()
	ctx := context.Background()

	started, err := uc.StartSession(ctx)
	require.NoError(t, err)
	id := started.SessionID
	assert.Empty(t, started.Lines)

	_, err = uc.OpenCheckout(ctx, id)
	assert.True(t, apperr.Is(err, apperr.KindEmptyCart))

	v, err := uc.AddToCart(ctx, id, "A1", 2)
	require.NoError(t, err)
	v, err = uc.AddToCart(ctx, id, "B2", 1)
	require.NoError(t, err)
	assert.Len(t, v.Lines, 2)
	assert.True(t, v.Total.Equal(decimal.RequireFromString("29.25")))

	v, err = uc.OpenCheckout(ctx, id)
	require.NoError(t, err)
	assert.True(t, v.Total.Equal(decimal.RequireFromString("29.25")))

	v, err = uc.RemoveFromCart(ctx, id, "B2")
	require.NoError(t, err)
	assert.Len(t, v.Lines, 1)
	assert.Equal(t, 2, repo.Quantity("B2"))

	v, err = uc.ClearCart(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, v.Lines)
	assert.True(t, v.Total.IsZero())
	assert.Equal(t, 10, repo.Quantity("A1"))
}

func TestAddToCartStockError(t *testing.T) {
	uc, repo := setup()
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "terminal-1", "B2", 3)
	assert.True(t, apperr.Is(err, apperr.KindStock))

	v, err := uc.ViewCart(ctx, "terminal-1")
	require.NoError(t, err)
	assert.Empty(t, v.Lines)
	assert.Equal(t, 2, repo.Quantity("B2"))
}

func TestSessionsAreIndependent(t *testing.T) {
	uc, repo := setup()
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "terminal-1", "A1", 4)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "terminal-2", "A1", 6)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "terminal-2", "A1", 1)
	assert.True(t, apperr.Is(err, apperr.KindStock))

	one, _ := uc.ViewCart(ctx, "terminal-1")
	two, _ := uc.ViewCart(ctx, "terminal-2")
	assert.Equal(t, 4, one.Lines[0].Quantity)
	assert.Equal(t, 6, two.Lines[0].Quantity)
	assert.Equal(t, 0, repo.Quantity("A1"))
}

func TestReleaseAllReturnsHeldStock(t *testing.T) {
	uc, repo := setup()
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "t1", "A1", 3)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "t2", "A1", 1)
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "t2", "B2", 2)
	require.NoError(t, err)
	_, err = uc.ViewCart(ctx, "t3")
	require.NoError(t, err)

	require.NoError(t, uc.ReleaseAll(ctx))
	assert.Equal(t, 10, repo.Quantity("A1"))
	assert.Equal(t, 2, repo.Quantity("B2"))

	for _, id := range []string{"t1", "t2"} {
		v, err := uc.ViewCart(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, v.Lines)
	}
}

func TestReadsDoNotOpenSessions(t *testing.T) {
	uc, _ := setup()
	ctx := context.Background()

	v, err := uc.ViewCart(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, "ghost", v.SessionID)
	assert.Empty(t, v.Lines)
	assert.True(t, v.Total.IsZero())

	_, err = uc.OpenCheckout(ctx, "ghost")
	assert.True(t, apperr.Is(err, apperr.KindEmptyCart))

	_, err = uc.RemoveFromCart(ctx, "ghost", "A1")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = uc.ClearCart(ctx, "ghost")
	require.NoError(t, err)

	assert.Empty(t, uc.sessions.All())

	_, err = uc.AddToCart(ctx, "ghost", "A1", 1)
	require.NoError(t, err)
	assert.Len(t, uc.sessions.All(), 1)
}
