package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"urenregistratie/internal/database"
	"urenregistratie/internal/model"
	"urenregistratie/internal/worktime"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func entryVals(e model.TimeEntry) []any {
	return []any{e.ID, e.UserID, e.Date, e.StartTime.PgTime(), e.EndTime.PgTime(), e.BreakMinutes, e.Description, e.Project, e.CreatedAt}
}

func sampleEntry(id int, project string) model.TimeEntry {
	e := model.TimeEntry{
		ID:           id,
		UserID:       3,
		Date:         time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime:    worktime.MustClock("09:00"),
		EndTime:      worktime.MustClock("17:00"),
		BreakMinutes: 30,
		CreatedAt:    time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
	}
	if project != "" {
		e.Project = strPtr(project)
	}
	return e
}

func TestEntryStore(t *testing.T) {
	ctx := context.Background()
	sample := sampleEntry(11, "Alpha")

	t.Run("CreateEntry", func(t *testing.T) {
		e := sample
		e.ID = 0
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO hours")
				require.Equal(t, 3, args[0])
				require.Equal(t, pgtype.Time{Microseconds: 9 * 3600 * 1_000_000, Valid: true}, args[2])
				require.Equal(t, 30, args[4])
				return &database.FakeRow{Values: []any{99, sample.CreatedAt}}
			},
		}
		require.NoError(t, CreateEntry(ctx, db, &e))
		require.Equal(t, 99, e.ID)
		require.Equal(t, sample.CreatedAt, e.CreatedAt)

		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return &database.FakeRow{Err: errors.New("insert")}
		}
		require.ErrorIs(t, CreateEntry(ctx, db, &e), model.ErrStore)

		// owner deleted meanwhile
		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return &database.FakeRow{Err: &pgconn.PgError{Code: "23503"}}
		}
		require.ErrorIs(t, CreateEntry(ctx, db, &e), model.ErrNotFound)
	})

	t.Run("GetEntry", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{11}, args)
				return &database.FakeRow{Values: entryVals(sample)}
			},
		}
		got, err := GetEntry(ctx, db, 11)
		require.NoError(t, err)
		require.Equal(t, sample, *got)
		require.Equal(t, 7.5, got.Hours())

		db.QueryRowFn = func(context.Context, string, ...any) pgx.Row {
			return &database.FakeRow{Err: pgx.ErrNoRows}
		}
		_, err = GetEntry(ctx, db, 11)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("GetEntryForUpdate rejects a null time", func(t *testing.T) {
		vals := entryVals(sample)
		vals[4] = pgtype.Time{}
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.Contains(t, sql, "FOR UPDATE")
				return &database.FakeRow{Values: vals}
			},
		}
		_, err := GetEntryForUpdate(ctx, db, 11)
		require.ErrorIs(t, err, model.ErrStore)
	})

	t.Run("UpdateEntry and DeleteEntry", func(t *testing.T) {
		affected := 1
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				return database.Tag(affected), nil
			},
		}
		require.NoError(t, UpdateEntry(ctx, db, &sample))
		require.NoError(t, DeleteEntry(ctx, db, 11))

		affected = 0
		require.ErrorIs(t, UpdateEntry(ctx, db, &sample), model.ErrNotFound)
		require.ErrorIs(t, DeleteEntry(ctx, db, 11), model.ErrNotFound)
	})

	t.Run("DeleteEntriesByUser", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "WHERE user_id = $1")
				require.Equal(t, []any{3}, args)
				return pgconn.NewCommandTag("DELETE 3"), nil
			},
		}
		n, err := DeleteEntriesByUser(ctx, db, 3)
		require.NoError(t, err)
		require.EqualValues(t, 3, n)

		// zero rows is fine: the user simply had no entries
		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		n, err = DeleteEntriesByUser(ctx, db, 3)
		require.NoError(t, err)
		require.Zero(t, n)

		db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, errors.New("exec")
		}
		_, err = DeleteEntriesByUser(ctx, db, 3)
		require.ErrorIs(t, err, model.ErrStore)
	})
}

func TestListEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("project filter is an exact match", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "project = $1")
				require.NotContains(t, sql, "LIKE")
				require.Equal(t, []any{"Alpha"}, args)
				return &database.FakeRows{Data: [][]any{
					entryVals(sampleEntry(1, "Alpha")),
					entryVals(sampleEntry(2, "Alpha")),
				}}, nil
			},
		}
		got, err := ListEntries(ctx, db, model.EntryFilter{Project: "Alpha"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, e := range got {
			require.Equal(t, "Alpha", *e.Project)
		}
	})

	t.Run("all filters combine in order", func(t *testing.T) {
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "WHERE user_id = $1 AND project = $2 AND date >= $3 AND date <= $4")
				require.Contains(t, sql, "ORDER BY date DESC, start_time DESC")
				require.Equal(t, []any{3, "Beta", from, to}, args)
				return &database.FakeRows{}, nil
			},
		}
		got, err := ListEntries(ctx, db, model.EntryFilter{UserID: 3, Project: "Beta", From: &from, To: &to})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("no filter", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.NotContains(t, sql, "WHERE")
				require.Empty(t, args)
				return &database.FakeRows{}, nil
			},
		}
		_, err := ListEntries(ctx, db, model.EntryFilter{})
		require.NoError(t, err)
	})

	t.Run("errors", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListEntries(ctx, db, model.EntryFilter{})
		require.ErrorIs(t, err, model.ErrStore)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &database.FakeRows{Data: [][]any{{1}}}, nil
		}
		_, err = ListEntries(ctx, db, model.EntryFilter{})
		require.Error(t, err)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &database.FakeRows{Error: errors.New("rows")}, nil
		}
		_, err = ListEntries(ctx, db, model.EntryFilter{})
		require.ErrorIs(t, err, model.ErrStore)
	})
}

func TestProjects(t *testing.T) {
	ctx := context.Background()

	t.Run("ListProjects for one user", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "user_id = $1")
				require.Equal(t, []any{3}, args)
				return &database.FakeRows{Data: [][]any{{"Alpha"}, {"Beta"}}}, nil
			},
		}
		got, err := ListProjects(ctx, db, 3)
		require.NoError(t, err)
		require.Equal(t, []string{"Alpha", "Beta"}, got)
	})

	t.Run("ListProjects for everyone", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.NotContains(t, sql, "user_id")
				require.Empty(t, args)
				return &database.FakeRows{}, nil
			},
		}
		got, err := ListProjects(ctx, db, 0)
		require.NoError(t, err)
		require.Equal(t, []string{}, got)
	})

	t.Run("RecentProjects", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "LIMIT $2")
				require.Equal(t, []any{3, 5}, args)
				return &database.FakeRows{Data: [][]any{{"Gamma"}}}, nil
			},
		}
		got, err := RecentProjects(ctx, db, 3, 5)
		require.NoError(t, err)
		require.Equal(t, []string{"Gamma"}, got)

		db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) {
			return &database.FakeRows{Data: [][]any{{"x"}}, ScanErr: errors.New("scan")}, nil
		}
		_, err = RecentProjects(ctx, db, 3, 5)
		require.ErrorIs(t, err, model.ErrStore)
	})
}
