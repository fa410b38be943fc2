package model

import "github.com/shopspring/decimal"

// CartLine lives only in memory until checkout. Name and UnitPrice are
// snapshots taken on the first add.
type CartLine struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

func NewCartLine(p *Product, quantity int) CartLine {
	line := CartLine{
		Code:      p.Code,
		Name:      p.Name,
		UnitPrice: p.Price,
	}
	line.SetQuantity(quantity)
	return line
}

func (l *CartLine) SetQuantity(quantity int) {
	l.Quantity = quantity
	l.Subtotal = RoundMoney(l.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

func LinesTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal)
	}
	return total
}
