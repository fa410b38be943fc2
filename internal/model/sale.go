package model

import (
	"strings"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentPix  PaymentMethod = "pix"
)

// ParsePaymentMethod also accepts the labels printed on the register keys.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cash", "dinheiro":
		return PaymentCash, nil
	case "card", "cartao", "cartão":
		return PaymentCard, nil
	case "pix":
		return PaymentPix, nil
	}
	return "", apperr.Validation("unknown payment method %q", raw)
}

type Sale struct {
	ID            int64               `db:"id" json:"id"`
	SoldAt        time.Time           `db:"sold_at" json:"sold_at"`
	Total         decimal.Decimal     `db:"total" json:"total"`
	PaymentMethod PaymentMethod       `db:"payment_method" json:"payment_method"`
	Tendered      decimal.NullDecimal `db:"tendered" json:"tendered"` // cash only
	Change        decimal.NullDecimal `db:"change" json:"change"`     // cash only
	Items         []SaleLineItem      `db:"-" json:"items"`
}

type SaleLineItem struct {
	ID          int64           `db:"id" json:"id"`
	SaleID      int64           `db:"sale_id" json:"sale_id"`
	ProductCode string          `db:"product_code" json:"product_code"`
	Name        string          `db:"name" json:"name"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	Quantity    int             `db:"quantity" json:"quantity"`
	Subtotal    decimal.Decimal `db:"subtotal" json:"subtotal"`
}

// NewSale builds an unsaved sale from the cart lines. Cash requires a
// tendered amount covering the total; other methods record neither tendered
// nor change.
func NewSale(lines []CartLine, method PaymentMethod, tendered *decimal.Decimal, soldAt time.Time) (*Sale, error) {
	if len(lines) == 0 {
		return nil, apperr.EmptyCart()
	}

	total := LinesTotal(lines)
	sale := &Sale{
		SoldAt:        soldAt,
		Total:         total,
		PaymentMethod: method,
	}

	switch method {
	case PaymentCash:
		if tendered == nil {
			return nil, apperr.Validation("amount received is required for cash payments")
		}
		paid := RoundMoney(*tendered)
		if paid.LessThan(total) {
			return nil, apperr.Payment("insufficient amount: received %s, total %s", FormatMoney(paid), FormatMoney(total))
		}
		sale.Tendered = decimal.NewNullDecimal(paid)
		sale.Change = decimal.NewNullDecimal(paid.Sub(total))
	case PaymentCard, PaymentPix:
	default:
		return nil, apperr.Validation("unknown payment method %q", method)
	}

	sale.Items = make([]SaleLineItem, 0, len(lines))
	for _, l := range lines {
		sale.Items = append(sale.Items, SaleLineItem{
			ProductCode: l.Code,
			Name:        l.Name,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal,
		})
	}
	return sale, nil
}
