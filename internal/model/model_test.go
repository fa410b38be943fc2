package model

import (
	"testing"
	"time"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("  A1 ", " Caneca ", dec("9.999"), 10, "")
	require.NoError(t, err)
	assert.Equal(t, "A1", p.Code)
	assert.Equal(t, "Caneca", p.Name)
	assert.True(t, p.Price.Equal(dec("10.00")))
	assert.Equal(t, DefaultCategory, p.Category)

	p.SetDescription("  ")
	assert.Nil(t, p.Description)
	p.SetImageRef("uploads/a1.png")
	require.NotNil(t, p.ImageRef)
	assert.Equal(t, "uploads/a1.png", *p.ImageRef)
}

func TestNewProductRejectsInvalidInput(t *testing.T) {
	cases := map[string]struct {
		code, name string
		price      decimal.Decimal
		qty        int
	}{
		"missing code":    {"", "Caneca", dec("1"), 1},
		"missing name":    {"A1", " ", dec("1"), 1},
		"zero price":      {"A1", "Caneca", dec("0"), 1},
		"rounds to zero":  {"A1", "Caneca", dec("0.004"), 1},
		"negative price":  {"A1", "Caneca", dec("-2"), 1},
		"negative amount": {"A1", "Caneca", dec("2"), -1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewProduct(tc.code, tc.name, tc.price, tc.qty, "")
			assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
		})
	}
}

func TestParseAmount(t *testing.T) {
	for raw, want := range map[string]string{
		"9,99":     "9.99",
		" 9.99 ":   "9.99",
		"R$ 50,5":  "50.50",
		"3":        "3.00",
		"12.345":   "12.35",
		"R$10,00 ": "10.00",
	} {
		got, err := ParseAmount("price", raw)
		require.NoError(t, err, raw)
		assert.True(t, got.Equal(dec(want)), "%s -> %s", raw, got)
	}

	for _, raw := range []string{"", "abc", "1,2,3", "R$"} {
		_, err := ParseAmount("price", raw)
		assert.True(t, apperr.Is(err, apperr.KindValidation), raw)
	}
}

func TestParseQuantity(t *testing.T) {
	n, err := ParseQuantity("quantity", " 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = ParseQuantity("quantity", "1.5")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = ParseQuantity("quantity", "")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestCartLineSubtotal(t *testing.T) {
	p := &Product{Code: "A1", Name: "Caneca", Price: dec("2.35")}
	line := NewCartLine(p, 3)
	assert.True(t, line.Subtotal.Equal(dec("7.05")))

	line.SetQuantity(7)
	assert.True(t, line.Subtotal.Equal(dec("16.45")))
	assert.True(t, LinesTotal([]CartLine{line, NewCartLine(p, 1)}).Equal(dec("18.80")))
}

func TestParsePaymentMethod(t *testing.T) {
	for raw, want := range map[string]PaymentMethod{
		"cash": PaymentCash, "Dinheiro": PaymentCash,
		"card": PaymentCard, "cartao": PaymentCard,
		" PIX ": PaymentPix,
	} {
		got, err := ParsePaymentMethod(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParsePaymentMethod("cheque")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func sampleLines() []CartLine {
	a := &Product{Code: "A1", Name: "Caneca", Price: dec("12.50")}
	b := &Product{Code: "B2", Name: "Vela", Price: dec("4.25")}
	return []CartLine{NewCartLine(a, 2), NewCartLine(b, 1)}
}

func TestNewSaleCash(t *testing.T) {
	now := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	tendered := dec("50")

	sale, err := NewSale(sampleLines(), PaymentCash, &tendered, now)
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(dec("29.25")))
	assert.True(t, sale.Tendered.Valid)
	assert.True(t, sale.Change.Decimal.Equal(dec("20.75")))
	assert.Equal(t, now, sale.SoldAt)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, "A1", sale.Items[0].ProductCode)
	assert.True(t, sale.Items[0].Subtotal.Equal(dec("25.00")))
}

func TestNewSaleExactCashGivesZeroChange(t *testing.T) {
	tendered := dec("29.25")
	sale, err := NewSale(sampleLines(), PaymentCash, &tendered, time.Now())
	require.NoError(t, err)
	assert.True(t, sale.Change.Decimal.IsZero())
}

func TestNewSaleRejections(t *testing.T) {
	short := dec("20")

	_, err := NewSale(sampleLines(), PaymentCash, &short, time.Now())
	assert.True(t, apperr.Is(err, apperr.KindPayment))

	_, err = NewSale(sampleLines(), PaymentCash, nil, time.Now())
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = NewSale(nil, PaymentPix, nil, time.Now())
	assert.True(t, apperr.Is(err, apperr.KindEmptyCart))

	_, err = NewSale(sampleLines(), PaymentMethod("cheque"), nil, time.Now())
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestNewSaleCardRecordsNoTendered(t *testing.T) {
	tendered := dec("100")
	sale, err := NewSale(sampleLines(), PaymentCard, &tendered, time.Now())
	require.NoError(t, err)
	assert.False(t, sale.Tendered.Valid)
	assert.False(t, sale.Change.Valid)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Cosméticos", CategoryLabel("cosmeticos"))
	assert.Equal(t, "Velas", CategoryLabel("velas"))
	assert.Equal(t, "Ágata", CategoryLabel("ágata"))
	assert.Equal(t, "", CategoryLabel(""))
}
