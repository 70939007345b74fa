package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// fakeTx is a no-op pgx.Tx that records commit and rollback calls.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (t *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }

func (t *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (t *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                               { return nil }

// fakeBeginner records the transaction options it was started with.
type fakeBeginner struct {
	opts pgx.TxOptions
	tx   *fakeTx
	err  error
}

func (b *fakeBeginner) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	b.opts = txOptions
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestWithTransactionOptions_PassesIsolationLevel(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

	ran := false
	err := WithTransactionOptions(context.Background(), beginner, opts, func(ctx context.Context, tx pgx.Tx) error {
		ran = true
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, pgx.RepeatableRead, beginner.opts.IsoLevel)
	assert.Equal(t, pgx.ReadOnly, beginner.opts.AccessMode)
	assert.True(t, beginner.tx.committed)
	assert.False(t, beginner.tx.rolledBack)
}

func TestWithTransaction_DefaultOptions(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, pgx.TxOptions{}, beginner.opts)
	assert.True(t, beginner.tx.committed)
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, beginner.tx.committed)
	assert.True(t, beginner.tx.rolledBack)
}

func TestWithTransaction_BeginFailure(t *testing.T) {
	beginner := &fakeBeginner{err: errors.New("pool exhausted")}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		t.Fatal("fn must not run when begin fails")
		return nil
	})

	assert.Error(t, err)
}
