package dto

type FinalizeSaleInput struct {
	SessionID     string
	PaymentMethod string // cash, card, pix
	Tendered      string // Cash only, as typed: "50,00"
}
