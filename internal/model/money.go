package model

import (
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/shopspring/decimal"
)

// RoundMoney rounds half away from zero to cents.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseAmount reads an operator-typed amount such as "9,99", "R$ 10.50" or "3".
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return decimal.Zero, apperr.Validation("%s is required", field)
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validation("%s must be a number (e.g. 9.99)", field)
	}
	return RoundMoney(d), nil
}

// ParseQuantity reads an operator-typed whole quantity.
func ParseQuantity(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, apperr.Validation("%s is required", field)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.Validation("%s must be a whole number", field)
	}
	return n, nil
}

// FormatMoney renders an amount the way the register shows it.
func FormatMoney(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}
