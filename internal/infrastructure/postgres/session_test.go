package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-access-management/go-backend/internal/domain/repository"
)

// stubTx records transaction calls so the session's flush/commit/rollback
// ordering can be observed without a live database.
type stubTx struct {
	execs      []string
	execErr    error
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *stubTx) Begin(context.Context) (pgx.Tx, error) { return t, nil }

func (t *stubTx) Commit(context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *stubTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *stubTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	t.execs = append(t.execs, sql)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (t *stubTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (t *stubTx) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (t *stubTx) Conn() *pgx.Conn                                         { return nil }
func (t *stubTx) LargeObjects() pgx.LargeObjects                          { return pgx.LargeObjects{} }
func (t *stubTx) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults  { return nil }

func (t *stubTx) Prepare(context.Context, string, string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *stubTx) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

type stubDB struct {
	tx       *stubTx
	beginErr error
	begins   int
}

func (d *stubDB) Begin(context.Context) (pgx.Tx, error) {
	d.begins++
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

func (d *stubDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (d *stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (d *stubDB) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }

func newStubSession() (*Session, *stubDB, *stubTx) {
	tx := &stubTx{}
	db := &stubDB{tx: tx}
	return &Session{pool: db}, db, tx
}

func TestSaveChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("no staged commands is a no-op", func(t *testing.T) {
		sess, db, _ := newStubSession()

		n, err := sess.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Equal(t, 0, db.begins)
	})

	t.Run("flushes in its own transaction and commits", func(t *testing.T) {
		sess, db, tx := newStubSession()
		sess.stage("INSERT 1")
		sess.stage("UPDATE 2")

		n, err := sess.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 1, db.begins)
		assert.True(t, tx.committed)
		assert.Nil(t, sess.tx)
		assert.Empty(t, sess.staged)
	})

	t.Run("inside an explicit transaction the commit stays with the caller", func(t *testing.T) {
		sess, db, tx := newStubSession()
		require.NoError(t, sess.BeginTransaction(ctx))
		sess.stage("INSERT 1")

		n, err := sess.SaveChanges(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, 1, db.begins)
		assert.Len(t, tx.execs, 1)
		assert.False(t, tx.committed)

		require.NoError(t, sess.Commit(ctx))
		assert.True(t, tx.committed)
	})

	t.Run("failed flush rolls back its own transaction", func(t *testing.T) {
		sess, _, tx := newStubSession()
		tx.execErr = errors.New("boom")
		sess.stage("INSERT 1")

		_, err := sess.SaveChanges(ctx)

		require.Error(t, err)
		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
	})

	t.Run("commit-time unique violation maps to the duplicate sentinel", func(t *testing.T) {
		sess, _, tx := newStubSession()
		tx.commitErr = &pgconn.PgError{Code: uniqueViolation}
		sess.stage("INSERT 1")

		_, err := sess.SaveChanges(ctx)

		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})
}

func TestBeginTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("opens one transaction", func(t *testing.T) {
		sess, db, tx := newStubSession()

		require.NoError(t, sess.BeginTransaction(ctx))

		assert.Equal(t, 1, db.begins)
		assert.Equal(t, tx, sess.tx)
	})

	t.Run("no-op when one is already open", func(t *testing.T) {
		sess, db, _ := newStubSession()
		require.NoError(t, sess.BeginTransaction(ctx))

		require.NoError(t, sess.BeginTransaction(ctx))

		assert.Equal(t, 1, db.begins)
	})
}

func TestCommit(t *testing.T) {
	ctx := context.Background()

	t.Run("safe with no open transaction", func(t *testing.T) {
		sess, db, _ := newStubSession()

		require.NoError(t, sess.Commit(ctx))

		assert.Equal(t, 0, db.begins)
	})

	t.Run("saves staged writes before committing", func(t *testing.T) {
		sess, _, tx := newStubSession()
		require.NoError(t, sess.BeginTransaction(ctx))
		sess.stage("UPDATE 1")

		require.NoError(t, sess.Commit(ctx))

		assert.Len(t, tx.execs, 1)
		assert.True(t, tx.committed)
		assert.Nil(t, sess.tx)
	})

	t.Run("failed save rolls the transaction back", func(t *testing.T) {
		sess, _, tx := newStubSession()
		require.NoError(t, sess.BeginTransaction(ctx))
		tx.execErr = errors.New("boom")
		sess.stage("UPDATE 1")

		err := sess.Commit(ctx)

		require.Error(t, err)
		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
		assert.Nil(t, sess.tx)
		assert.Empty(t, sess.staged)
	})

	t.Run("failed commit surfaces the error and releases the transaction", func(t *testing.T) {
		sess, _, tx := newStubSession()
		require.NoError(t, sess.BeginTransaction(ctx))
		tx.commitErr = errors.New("deadline")
		sess.stage("UPDATE 1")

		err := sess.Commit(ctx)

		require.Error(t, err)
		assert.Nil(t, sess.tx)
		// a later deferred Rollback must still be a no-op
		require.NoError(t, sess.Rollback(ctx))
		assert.False(t, tx.rolledBack)
	})
}

func TestRollback(t *testing.T) {
	ctx := context.Background()

	t.Run("safe with no open transaction", func(t *testing.T) {
		sess, _, _ := newStubSession()
		sess.stage("INSERT 1")

		require.NoError(t, sess.Rollback(ctx))

		assert.Empty(t, sess.staged)
	})

	t.Run("discards staged writes and releases the transaction", func(t *testing.T) {
		sess, _, tx := newStubSession()
		require.NoError(t, sess.BeginTransaction(ctx))
		sess.stage("INSERT 1")

		require.NoError(t, sess.Rollback(ctx))

		assert.True(t, tx.rolledBack)
		assert.Empty(t, tx.execs)
		assert.Nil(t, sess.tx)
		assert.Empty(t, sess.staged)
	})
}
