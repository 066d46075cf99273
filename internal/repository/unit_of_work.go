// internal/repository/unit_of_work.go
package repository

import (
	"context"
	"errors"
)

var (
	// ErrTransactionActive is returned by BeginTransaction when a transaction is already open.
	ErrTransactionActive = errors.New("transaction already active")
	// ErrUnitOfWorkClosed is returned by any call made after Close.
	ErrUnitOfWorkClosed = errors.New("unit of work is closed")
)

// UnitOfWork owns one database connection and at most one transaction, and
// exposes the repositories bound to them. Repositories run inside the
// transaction while one is active; otherwise each statement commits on its own.
//
// A UnitOfWork belongs to a single caller: its methods and its repositories
// must not be used concurrently. Close must run on every exit path.
type UnitOfWork interface {
	Owners() OwnerRepository
	Properties() PropertyRepository
	PropertyImages() PropertyImageRepository
	PropertyTraces() PropertyTraceRepository
	Users() UserRepository

	// BeginTransaction opens the connection if needed and starts a transaction.
	// It fails with ErrTransactionActive if one is already active.
	BeginTransaction(ctx context.Context) error
	// Commit commits the active transaction. It is a no-op when none is active.
	Commit() error
	// Rollback rolls back the active transaction. It is a no-op when none is active.
	Rollback() error
	InTransaction() bool
	// Close rolls back any active transaction and releases the connection.
	Close() error
}

// UnitOfWorkFactory creates a fresh UnitOfWork per request.
type UnitOfWorkFactory interface {
	New() UnitOfWork
}

// WithTransaction runs fn inside a transaction on uow. The transaction is
// committed when fn succeeds and rolled back otherwise; fn's error is returned
// unchanged.
func WithTransaction(ctx context.Context, uow UnitOfWork, fn func() error) error {
	if err := uow.BeginTransaction(ctx); err != nil {
		return err
	}
	if err := fn(); err != nil {
		_ = uow.Rollback()
		return err
	}
	return uow.Commit()
}
