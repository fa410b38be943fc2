package cart

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/cart/dto"
)

type UseCase interface {
	StartSession(ctx context.Context) (*dto.CartView, error)
	ViewCart(ctx context.Context, sessionID string) (*dto.CartView, error)
	AddToCart(ctx context.Context, sessionID, code string, quantity int) (*dto.CartView, error)
	RemoveFromCart(ctx context.Context, sessionID, code string) (*dto.CartView, error)
	ClearCart(ctx context.Context, sessionID string) (*dto.CartView, error)
	// OpenCheckout returns the cart for payment, failing when it is empty.
	OpenCheckout(ctx context.Context, sessionID string) (*dto.CartView, error)
	// ReleaseAll returns the stock held by every open cart, for shutdown.
	ReleaseAll(ctx context.Context) error
}
