package posv1

import "time"

// Money fields are decimal strings with two places ("12.50").

type Empty struct{}

type Product struct {
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Price        string    `json:"price"`
	Quantity     int       `json:"quantity"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	ImageRef     string    `json:"image_ref,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RegisterProductRequest carries the form fields as typed by the operator.
type RegisterProductRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageRef    string `json:"image_ref"`
}

type GetProductRequest struct {
	Code string `json:"code"`
}

type SearchProductsRequest struct {
	Filter string `json:"filter"`
}

type DeleteProductRequest struct {
	Code string `json:"code"`
}

type RestockRequest struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

type SearchProductsResponse struct {
	Products []*Product `json:"products"`
}

type CartLine struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type Cart struct {
	SessionID string      `json:"session_id"`
	Lines     []*CartLine `json:"lines"`
	Total     string      `json:"total"`
}

type CartResponse struct {
	Cart *Cart `json:"cart"`
}

type AddToCartRequest struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type RemoveFromCartRequest struct {
	Code string `json:"code"`
}

type SaleItem struct {
	ProductCode string `json:"product_code"`
	Name        string `json:"name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type Sale struct {
	ID            int64       `json:"id"`
	SoldAt        time.Time   `json:"sold_at"`
	Total         string      `json:"total"`
	PaymentMethod string      `json:"payment_method"`
	Tendered      string      `json:"tendered,omitempty"`
	Change        string      `json:"change,omitempty"`
	Items         []*SaleItem `json:"items"`
}

type FinalizeSaleRequest struct {
	PaymentMethod string `json:"payment_method"`
	Tendered      string `json:"tendered"`
}

type GetSaleRequest struct {
	ID int64 `json:"id"`
}

type SaleResponse struct {
	Sale   *Sale  `json:"sale"`
	Notice string `json:"notice,omitempty"`
}

type NoticeResponse struct {
	Message string `json:"message"`
}

type StockLevel struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type CategorySales struct {
	Category  string `json:"category"`
	UnitsSold int    `json:"units_sold"`
}

type TopStockResponse struct {
	Items []*StockLevel `json:"items"`
}

type SalesByCategoryResponse struct {
	Items []*CategorySales `json:"items"`
}

type Category struct {
	Code         string `json:"code"`
	Label        string `json:"label"`
	ProductCount int    `json:"product_count"`
}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}
