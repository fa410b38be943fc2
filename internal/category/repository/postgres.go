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

func (r *PGRepository) CountProducts(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `
        SELECT category AS code, COUNT(*)::integer AS product_count
        FROM products
        GROUP BY category
        ORDER BY category
    `
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, apperr.Persistence("load categories", err)
	}
	return categories, nil
}
