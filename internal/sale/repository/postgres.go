package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Record(ctx context.Context, s *model.Sale) (int64, error) {
	var id int64
	err := postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		// 1. Header, to obtain the id
		err := tx.QueryRowxContext(ctx, `
            INSERT INTO sales (sold_at, total, payment_method, tendered, change)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING id
        `, s.SoldAt, s.Total, s.PaymentMethod, s.Tendered, s.Change).Scan(&id)
		if err != nil {
			return err
		}

		// 2. Items
		for _, item := range s.Items {
			_, err := tx.ExecContext(ctx, `
                INSERT INTO sale_line_items (sale_id, product_code, name, unit_price, quantity, subtotal)
                VALUES ($1, $2, $3, $4, $5, $6)
            `, id, item.ProductCode, item.Name, item.UnitPrice, item.Quantity, item.Subtotal)
			if err != nil {
				if postgres.IsForeignKeyViolation(err) {
					return apperr.Referential("cannot record sale: product "+item.ProductCode+" no longer exists", err)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, apperr.Persistence("record sale", err)
	}

	s.ID = id
	for i := range s.Items {
		s.Items[i].SaleID = id
	}
	return id, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Sale, error) {
	var s model.Sale
	err := r.DB.GetContext(ctx, &s, `
        SELECT id, sold_at, total::numeric(12,2) AS total, payment_method,
               tendered::numeric(12,2) AS tendered, change::numeric(12,2) AS change
        FROM sales WHERE id = $1
    `, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Persistence("load sale", err)
	}

	s.Items = []model.SaleLineItem{}
	err = r.DB.SelectContext(ctx, &s.Items, `
        SELECT id, sale_id, product_code, name, unit_price::numeric(12,2) AS unit_price,
               quantity::integer AS quantity, subtotal::numeric(12,2) AS subtotal
        FROM sale_line_items WHERE sale_id = $1 ORDER BY id
    `, id)
	if err != nil {
		return nil, apperr.Persistence("load sale items", err)
	}
	return &s, nil
}
