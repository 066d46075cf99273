// pkg/db/transaction_manager.go
package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// TxController defines methods for controlling a database transaction.
// *sqlx.Tx implicitly implements this interface.
type TxController interface {
	Commit() error
	Rollback() error
}

// DBTxBeginner defines the interface for beginning transactions.
// *sqlx.DB and *sqlx.Conn implement this.
type DBTxBeginner interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// ConnOpener hands out a dedicated connection. *sqlx.DB implements this.
type ConnOpener interface {
	Connx(ctx context.Context) (*sqlx.Conn, error)
}

// BeginTx starts a new database transaction on conn.
func BeginTx(ctx context.Context, conn DBTxBeginner, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return conn.BeginTxx(ctx, opts)
}

// CommitTx commits the transaction.
func CommitTx(tx TxController) error {
	return tx.Commit()
}

// RollbackTx rolls back the transaction. A transaction that already ended is not an error.
func RollbackTx(tx TxController) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
