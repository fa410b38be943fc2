package dto

// RegisterProductInput holds the form fields as the operator typed them.
type RegisterProductInput struct {
	Code        string
	Name        string
	Price       string // "9,99" or "9.99"
	Quantity    string
	Category    string // Optional, defaults to "outros"
	Description string
	ImageRef    string
}
