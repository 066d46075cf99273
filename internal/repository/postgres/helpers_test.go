// internal/repository/postgres/helpers_test.go
package postgres

import (
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestUnitOfWork returns a unit of work backed by sqlmock. SQL is matched
// verbatim and in order.
func newTestUnitOfWork(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	uow := NewUnitOfWork(sqlx.NewDb(db, "sqlmock"), slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	t.Cleanup(func() { _ = uow.Close() })
	return uow, mock
}

// affected is the single-column result of a routine without output parameters.
func affected(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"affected"}).AddRow(n)
}
