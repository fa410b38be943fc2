package repository

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) TopStock(ctx context.Context, limit int) ([]model.StockLevel, error) {
	levels := []model.StockLevel{}
	err := r.DB.SelectContext(ctx, &levels, `
        SELECT name, quantity::integer AS quantity
        FROM products
        ORDER BY quantity DESC, name
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, apperr.Persistence("load stock report", err)
	}
	return levels, nil
}

func (r *PGRepository) SalesByCategory(ctx context.Context, limit int) ([]model.CategorySales, error) {
	rows := []model.CategorySales{}
	err := r.DB.SelectContext(ctx, &rows, `
        SELECT p.category, SUM(i.quantity)::integer AS units_sold
        FROM sale_line_items i
        JOIN products p ON i.product_code = p.code
        GROUP BY p.category
        ORDER BY units_sold DESC, p.category
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, apperr.Persistence("load sales report", err)
	}
	return rows, nil
}
