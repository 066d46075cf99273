// internal/repository/db_executor.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DBExecutor defines the common database operations needed by the command executor.
// *sqlx.DB, *sqlx.Conn and *sqlx.Tx all implement these methods, so routines run
// either directly on a connection or inside a transaction.
type DBExecutor interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Session is the connection scope a CommandExecutor runs against. A unit of work
// is a Session: it hands out its transaction while one is active and its plain
// connection otherwise.
type Session interface {
	Executor(ctx context.Context) (DBExecutor, error)
	InTransaction() bool
}

// ErrInvalidIdentifier is returned when a routine, parameter or savepoint name
// is not a plain SQL identifier.
var ErrInvalidIdentifier = errors.New("invalid SQL identifier")

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// CommandExecutor binds named parameters to store routines and runs them on the
// session's connection. It performs no validation or retry: store errors are
// returned exactly as the driver reported them. It is not safe for concurrent use;
// calls run in the order they are issued.
type CommandExecutor struct {
	session Session
	timeout time.Duration
}

// NewCommandExecutor creates a CommandExecutor over session. A positive timeout
// bounds every call in addition to the caller's context.
func NewCommandExecutor(session Session, timeout time.Duration) *CommandExecutor {
	return &CommandExecutor{session: session, timeout: timeout}
}

// InTransaction reports whether calls currently run inside a transaction.
func (c *CommandExecutor) InTransaction() bool {
	return c.session.InTransaction()
}

// Execute runs routine and returns the affected row count.
//
// Without output parameters the routine is invoked as `SELECT routine(...)` and
// must return its affected row count. With output parameters it is invoked as
// `SELECT out1, ... FROM routine(...)`; the single returned row is scanned into
// the registered destinations and the count is 1.
func (c *CommandExecutor) Execute(ctx context.Context, routine string, params *Params) (int64, error) {
	call, args, err := buildCall(routine, params)
	if err != nil {
		return 0, err
	}
	q, err := c.session.Executor(ctx)
	if err != nil {
		return 0, err
	}
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	names, dests := params.outputs()
	if len(dests) == 0 {
		var affected sql.NullInt64
		if err := q.QueryRowContext(ctx, "SELECT "+call, args...).Scan(&affected); err != nil {
			return 0, err
		}
		return affected.Int64, nil
	}

	for _, name := range names {
		if !identifierPattern.MatchString(name) {
			return 0, fmt.Errorf("output parameter %q: %w", name, ErrInvalidIdentifier)
		}
	}
	query := "SELECT " + strings.Join(names, ", ") + " FROM " + call
	if err := q.QueryRowContext(ctx, query, args...).Scan(dests...); err != nil {
		return 0, err
	}
	params.captureOutputs()
	return 1, nil
}

// Query runs a set-returning routine and maps every row onto T by its `db` tags.
// An empty result is an empty slice, never an error.
func Query[T any](ctx context.Context, c *CommandExecutor, routine string, params *Params) ([]T, error) {
	call, args, err := buildCall(routine, params)
	if err != nil {
		return nil, err
	}
	q, err := c.session.Executor(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	rows := []T{}
	if err := q.SelectContext(ctx, &rows, "SELECT * FROM "+call, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// QueryOne runs routine and returns its first row, or nil when there is none.
func QueryOne[T any](ctx context.Context, c *CommandExecutor, routine string, params *Params) (*T, error) {
	rows, err := Query[T](ctx, c, routine, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// Atomically runs fn so that, inside an active transaction, either all of its
// statements apply or none do: a savepoint is taken first and rolled back to if
// fn fails. The transaction itself stays open for the caller to commit or roll
// back. Outside a transaction fn runs as is and statements it already issued
// stay applied when it fails.
func (c *CommandExecutor) Atomically(ctx context.Context, savepoint string, fn func() error) error {
	if !c.session.InTransaction() {
		return fn()
	}
	if !identifierPattern.MatchString(savepoint) {
		return fmt.Errorf("savepoint %q: %w", savepoint, ErrInvalidIdentifier)
	}
	q, err := c.session.Executor(ctx)
	if err != nil {
		return err
	}
	if _, err := q.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
		return err
	}
	if err := fn(); err != nil {
		// A failed ROLLBACK TO leaves the transaction aborted; the caller's
		// rollback ends it.
		_, _ = q.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint)
		return err
	}
	_, err = q.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint)
	return err
}

func (c *CommandExecutor) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return ctx, func() {}
}

// buildCall renders `routine(Name1 => $1, Name2 => $2)` using PostgreSQL named
// notation, so unbound parameters fall back to the routine's defaults.
func buildCall(routine string, params *Params) (string, []interface{}, error) {
	if !identifierPattern.MatchString(routine) {
		return "", nil, fmt.Errorf("routine %q: %w", routine, ErrInvalidIdentifier)
	}
	inputs := params.inputs()
	parts := make([]string, 0, len(inputs))
	args := make([]interface{}, 0, len(inputs))
	for i, prm := range inputs {
		if !identifierPattern.MatchString(prm.Name) || strings.Contains(prm.Name, ".") {
			return "", nil, fmt.Errorf("parameter %q: %w", prm.Name, ErrInvalidIdentifier)
		}
		parts = append(parts, fmt.Sprintf("%s => $%d", prm.Name, i+1))
		args = append(args, prm.Value)
	}
	return routine + "(" + strings.Join(parts, ", ") + ")", args, nil
}
