package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is a product grouping as offered on the registration form.
// Products store only the code.
type Category struct {
	Code         string `db:"code" json:"code"`
	Label        string `db:"-" json:"label"`
	ProductCount int    `db:"product_count" json:"product_count"`
}

// StandardCategories are always offered, in this order, even when empty.
var StandardCategories = []Category{
	{Code: "cosmeticos", Label: "Cosméticos"},
	{Code: "perfumes", Label: "Perfumes"},
	{Code: "cestas", Label: "Cestas"},
	{Code: "higiene", Label: "Higiene"},
	{Code: DefaultCategory, Label: "Outros"},
}

// CategoryLabel returns the display label for code, capitalizing codes
// outside the standard list.
func CategoryLabel(code string) string {
	for _, c := range StandardCategories {
		if c.Code == code {
			return c.Label
		}
	}
	code = strings.TrimSpace(code)
	r, size := utf8.DecodeRuneInString(code)
	if r == utf8.RuneError {
		return code
	}
	return string(unicode.ToUpper(r)) + code[size:]
}
