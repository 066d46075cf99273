// internal/repository/postgres/unit_of_work.go
package postgres

import (
	"context"
	"log/slog"
	"time"

	"realestate-api/internal/repository"
	"realestate-api/pkg/db"

	"github.com/jmoiron/sqlx"
)

// UnitOfWork implements repository.UnitOfWork over one *sqlx.Conn.
//
// States: idle (no transaction) -> in transaction -> committed or rolled back
// -> idle. The connection is taken from the pool lazily, on the first statement
// or BeginTransaction, and returned by Close.
type UnitOfWork struct {
	opener db.ConnOpener
	logger *slog.Logger

	conn   *sqlx.Conn
	tx     *sqlx.Tx
	closed bool

	owners     repository.OwnerRepository
	properties repository.PropertyRepository
	images     repository.PropertyImageRepository
	traces     repository.PropertyTraceRepository
	users      repository.UserRepository
}

// NewUnitOfWork creates a UnitOfWork whose repositories share one command
// executor bound to this unit's connection and transaction.
func NewUnitOfWork(opener db.ConnOpener, logger *slog.Logger, statementTimeout time.Duration) *UnitOfWork {
	if logger == nil {
		logger = slog.Default()
	}
	u := &UnitOfWork{opener: opener, logger: logger}
	exec := repository.NewCommandExecutor(u, statementTimeout)
	u.owners = NewOwnerRepository(exec)
	u.properties = NewPropertyRepository(exec)
	u.images = NewPropertyImageRepository(exec)
	u.traces = NewPropertyTraceRepository(exec)
	u.users = NewUserRepository(exec)
	return u
}

func (u *UnitOfWork) Owners() repository.OwnerRepository                 { return u.owners }
func (u *UnitOfWork) Properties() repository.PropertyRepository          { return u.properties }
func (u *UnitOfWork) PropertyImages() repository.PropertyImageRepository { return u.images }
func (u *UnitOfWork) PropertyTraces() repository.PropertyTraceRepository { return u.traces }
func (u *UnitOfWork) Users() repository.UserRepository                   { return u.users }

// Executor returns the active transaction, or the connection when there is none.
func (u *UnitOfWork) Executor(ctx context.Context) (repository.DBExecutor, error) {
	if u.closed {
		return nil, repository.ErrUnitOfWorkClosed
	}
	if u.tx != nil {
		return u.tx, nil
	}
	if err := u.open(ctx); err != nil {
		return nil, err
	}
	return u.conn, nil
}

// InTransaction reports whether a transaction is active.
func (u *UnitOfWork) InTransaction() bool {
	return u.tx != nil
}

// BeginTransaction starts a transaction on the unit's connection.
func (u *UnitOfWork) BeginTransaction(ctx context.Context) error {
	if u.closed {
		return repository.ErrUnitOfWorkClosed
	}
	if u.tx != nil {
		return repository.ErrTransactionActive
	}
	if err := u.open(ctx); err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, u.conn, nil)
	if err != nil {
		return err
	}
	u.tx = tx
	return nil
}

// Commit commits the active transaction and clears it, even when the commit fails.
func (u *UnitOfWork) Commit() error {
	if u.tx == nil {
		return nil
	}
	tx := u.tx
	u.tx = nil
	return db.CommitTx(tx)
}

// Rollback rolls back the active transaction and clears it.
func (u *UnitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}
	tx := u.tx
	u.tx = nil
	return db.RollbackTx(tx)
}

// Close releases the active transaction, if any, and returns the connection to
// the pool. Calling Close more than once is safe.
func (u *UnitOfWork) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	if err := u.Rollback(); err != nil {
		// Close usually runs deferred, where this error would be lost.
		u.logger.Error("Failed to roll back transaction on close", "error", err)
	}
	if u.conn == nil {
		return nil
	}
	conn := u.conn
	u.conn = nil
	return conn.Close()
}

func (u *UnitOfWork) open(ctx context.Context) error {
	if u.conn != nil {
		return nil
	}
	conn, err := u.opener.Connx(ctx)
	if err != nil {
		return err
	}
	u.conn = conn
	return nil
}

// UnitOfWorkFactory creates PostgreSQL units of work sharing one pool.
type UnitOfWorkFactory struct {
	opener           db.ConnOpener
	logger           *slog.Logger
	statementTimeout time.Duration
}

// NewUnitOfWorkFactory creates a new UnitOfWorkFactory.
func NewUnitOfWorkFactory(opener db.ConnOpener, logger *slog.Logger, statementTimeout time.Duration) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{opener: opener, logger: logger, statementTimeout: statementTimeout}
}

// New returns a fresh UnitOfWork. The caller owns it and must Close it.
func (f *UnitOfWorkFactory) New() repository.UnitOfWork {
	return NewUnitOfWork(f.opener, f.logger, f.statementTimeout)
}
