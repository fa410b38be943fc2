package model

type StockLevel struct {
	Name     string `db:"name" json:"name"`
	Quantity int    `db:"quantity" json:"quantity"`
}

type CategorySales struct {
	Category  string `db:"category" json:"category"`
	UnitsSold int    `db:"units_sold" json:"units_sold"`
}
