package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"user-access-management/go-backend/internal/domain/repository"
)

const uniqueViolation = "23505"

// querier is the subset of pgx shared by pgxpool.Pool and pgx.Tx, so reads
// see uncommitted staged writes once a transaction is open.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// database is the pool-level seam: queries plus transaction start.
// Satisfied by pgxpool.Pool.
type database interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

type SessionFactory struct {
	pool *pgxpool.Pool
}

func NewSessionFactory(pool *pgxpool.Pool) *SessionFactory {
	return &SessionFactory{pool: pool}
}

func (f *SessionFactory) NewSession() repository.Session {
	return &Session{pool: f.pool}
}

type command struct {
	sql  string
	args []any
}

// Session is the per-request unit of work. Repository writes stage commands
// here; SaveChanges flushes them in one transaction. Not safe for use by
// multiple goroutines.
type Session struct {
	pool   database
	tx     pgx.Tx
	staged []command
}

func (s *Session) Users() repository.UserRepository {
	return &UserRepository{sess: s}
}

func (s *Session) stage(sql string, args ...any) {
	s.staged = append(s.staged, command{sql: sql, args: args})
}

func (s *Session) db() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.pool
}

// SaveChanges flushes staged commands atomically. Without an explicit
// transaction it opens one for the flush; inside one it executes against
// the open transaction and leaves the commit to the caller.
func (s *Session) SaveChanges(ctx context.Context) (int, error) {
	if len(s.staged) == 0 {
		return 0, nil
	}

	if s.tx != nil {
		return s.flush(ctx, s.tx)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	affected, err := s.flush(ctx, tx)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, translateErr(err)
	}
	return affected, nil
}

func (s *Session) flush(ctx context.Context, tx pgx.Tx) (int, error) {
	affected := 0
	for _, cmd := range s.staged {
		tag, err := tx.Exec(ctx, cmd.sql, cmd.args...)
		if err != nil {
			return 0, translateErr(err)
		}
		affected += int(tag.RowsAffected())
	}
	s.staged = nil
	return affected, nil
}

// BeginTransaction opens an explicit transaction. No-op when one is open.
func (s *Session) BeginTransaction(ctx context.Context) error {
	if s.tx != nil {
		return nil
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	s.tx = tx
	return nil
}

// Commit saves pending changes first, then commits the transaction. Any
// failure rolls everything back. Safe to call with no open transaction.
func (s *Session) Commit(ctx context.Context) error {
	if _, err := s.SaveChanges(ctx); err != nil {
		_ = s.Rollback(ctx)
		return err
	}
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit(ctx)
	s.tx = nil
	if err != nil {
		return translateErr(err)
	}
	return nil
}

// Rollback discards staged commands and releases the transaction. Safe to
// call with no open transaction.
func (s *Session) Rollback(ctx context.Context) error {
	s.staged = nil
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback(ctx)
	s.tx = nil
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateEmail
	}
	return err
}

var _ repository.Session = (*Session)(nil)
var _ repository.SessionFactory = (*SessionFactory)(nil)
