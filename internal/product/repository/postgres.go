package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/fekuna/omnipos-pos-service/internal/model"
	"github.com/fekuna/omnipos-pos-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

// Numeric columns are cast on the way out so scanning does not depend on how
// the driver reports NUMERIC.
const selectColumns = `
        SELECT code, name, price::numeric(12,2) AS price, quantity::integer AS quantity,
               category, description, registered_at, image_ref
        FROM products`

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Upsert(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (code, name, price, quantity, category, description, registered_at, image_ref)
        VALUES (:code, :name, :price, :quantity, :category, :description, :registered_at, :image_ref)
        ON CONFLICT (code) DO UPDATE SET
            name = EXCLUDED.name,
            price = EXCLUDED.price,
            quantity = EXCLUDED.quantity,
            category = EXCLUDED.category,
            description = EXCLUDED.description,
            registered_at = EXCLUDED.registered_at,
            image_ref = EXCLUDED.image_ref
    `
	err := postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.NamedExecContext(ctx, query, p)
		return err
	})
	return apperr.Persistence("save product", err)
}

func (r *PGRepository) FindByCode(ctx context.Context, code string) (*model.Product, error) {
	var product model.Product
	err := r.DB.GetContext(ctx, &product, selectColumns+` WHERE code = $1`, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Persistence("load product", err)
	}
	return &product, nil
}

func (r *PGRepository) Search(ctx context.Context, filter string) ([]model.Product, error) {
	products := []model.Product{}

	filter = strings.TrimSpace(filter)
	var err error
	if filter == "" {
		err = r.DB.SelectContext(ctx, &products, selectColumns+` ORDER BY name`)
	} else {
		pattern := "%" + escapeLike(filter) + "%"
		err = r.DB.SelectContext(ctx, &products, selectColumns+` WHERE code ILIKE $1 OR name ILIKE $1 ORDER BY name`, pattern)
	}
	if err != nil {
		return nil, apperr.Persistence("search products", err)
	}
	return products, nil
}

func (r *PGRepository) Delete(ctx context.Context, code string) error {
	err := postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE code = $1`, code)
		if err != nil {
			if postgres.IsForeignKeyViolation(err) {
				return apperr.Referential("cannot delete: product is referenced by sales", err)
			}
			return err
		}
		return requireRow(res, code)
	})
	return apperr.Persistence("delete product", err)
}

func (r *PGRepository) AdjustStock(ctx context.Context, code string, delta int) error {
	err := postgres.WithTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, `UPDATE products SET quantity = quantity + $1 WHERE code = $2`, delta, code)
		if err != nil {
			// Another session took the stock after our availability check.
			if postgres.IsCheckViolation(err) {
				return apperr.Stock("quantity unavailable for %s, stock changed", code)
			}
			return err
		}
		return requireRow(res, code)
	})
	return apperr.Persistence("adjust stock", err)
}

func requireRow(res sql.Result, code string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NotFound("product %s not found", code)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
