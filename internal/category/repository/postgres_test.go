package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-pos-service/internal/apperr"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestCountProducts(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT category AS code, COUNT\(\*\)::integer AS product_count FROM products GROUP BY category`).
		WillReturnRows(sqlmock.NewRows([]string{"code", "product_count"}).
			AddRow("cestas", 2).
			AddRow("velas", 1))

	got, err := repo.CountProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cestas", got[0].Code)
	assert.Equal(t, 2, got[0].ProductCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountProductsFailure(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT category`).WillReturnError(errors.New("connection reset"))

	_, err := repo.CountProducts(context.Background())
	assert.True(t, apperr.Is(err, apperr.KindPersistence))
}
