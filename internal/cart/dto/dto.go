package dto

import (
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/shopspring/decimal"
)

// CartView is what the register shows: the lines and their running total.
type CartView struct {
	SessionID string
	Lines     []model.CartLine
	Total     decimal.Decimal
}
