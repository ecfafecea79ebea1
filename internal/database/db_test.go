package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "") })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.Begin(context.Background()) })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	called := map[string]bool{}
	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		called["exec"] = true
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		called["query"] = true
		return &FakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		called["row"] = true
		return &FakeRow{}
	}
	db.BeginFn = func(context.Context) (pgx.Tx, error) { called["begin"] = true; return &FakeTx{}, nil }
	db.PingFn = func(ctx context.Context) error { called["ping"] = true; return nil }
	db.CloseFn = func() { called["close"] = true }

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	_, err = db.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, db.Ping(context.Background()))
	db.Close()
	for _, k := range []string{"exec", "query", "row", "begin", "ping", "close"} {
		require.True(t, called[k], k)
	}
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		tx := &FakeTx{}
		require.NoError(t, WithTx(ctx, TxDB(tx), func(pgx.Tx) error { return nil }))
		require.True(t, tx.Committed)
		require.False(t, tx.RolledBack)
	})

	t.Run("rollback on error", func(t *testing.T) {
		tx := &FakeTx{}
		err := WithTx(ctx, TxDB(tx), func(pgx.Tx) error { return errors.New("boom") })
		require.EqualError(t, err, "boom")
		require.False(t, tx.Committed)
		require.True(t, tx.RolledBack)
	})

	t.Run("commit error", func(t *testing.T) {
		tx := &FakeTx{CommitErr: errors.New("commit")}
		require.EqualError(t, WithTx(ctx, TxDB(tx), func(pgx.Tx) error { return nil }), "commit")
	})

	t.Run("begin error", func(t *testing.T) {
		db := &FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) { return nil, errors.New("begin") }}
		require.EqualError(t, WithTx(ctx, db, func(pgx.Tx) error { return nil }), "begin")
	})
}

func TestFakeTxUnexpected(t *testing.T) {
	tx := &FakeTx{}
	require.Panics(t, func() { tx.Exec(context.Background(), "") })
	require.Panics(t, func() { tx.Query(context.Background(), "") })
	require.Panics(t, func() { tx.QueryRow(context.Background(), "") })
}

func TestFakeRows(t *testing.T) {
	var (
		id   int
		name string
		note *string
	)
	row := &FakeRow{Values: []any{7, "Ada", nil}}
	require.NoError(t, row.Scan(&id, &name, &note))
	require.Equal(t, 7, id)
	require.Equal(t, "Ada", name)
	require.Nil(t, note)
	require.Error(t, row.Scan(&id))

	rows := &FakeRows{Data: [][]any{{1}, {2}}}
	var got []int
	for rows.Next() {
		require.NoError(t, rows.Scan(&id))
		got = append(got, id)
	}
	rows.Close()
	require.Equal(t, []int{1, 2}, got)
	require.True(t, rows.Closed)
	require.EqualValues(t, 3, Tag(3).RowsAffected())
}
