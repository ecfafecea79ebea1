// File: internal/store/time_entry.go
package store

import (
	"context"
	"strconv"
	"strings"

	"urenregistratie/internal/database"
	"urenregistratie/internal/model"
	"urenregistratie/internal/worktime"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const entryColumns = `id, user_id, date, start_time, end_time, break_minutes, description, project, created_at`

func scanEntry(row pgx.Row, e *model.TimeEntry) error {
	var start, end pgtype.Time
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Date,
		&start,
		&end,
		&e.BreakMinutes,
		&e.Description,
		&e.Project,
		&e.CreatedAt,
	); err != nil {
		return err
	}
	var err error
	if e.StartTime, err = worktime.ClockFromPgTime(start); err != nil {
		return err
	}
	e.EndTime, err = worktime.ClockFromPgTime(end)
	return err
}

// CreateEntry inserts e and fills in its id and created_at.
func CreateEntry(ctx context.Context, db database.Querier, e *model.TimeEntry) error {
	row := db.QueryRow(ctx,
		`INSERT INTO hours (user_id, date, start_time, end_time, break_minutes, description, project)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		e.UserID,
		e.Date,
		e.StartTime.PgTime(),
		e.EndTime.PgTime(),
		e.BreakMinutes,
		e.Description,
		e.Project,
	)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return wrapErr("CreateEntry", err)
	}
	return nil
}

// GetEntry loads one entry by id.
func GetEntry(ctx context.Context, db database.Querier, id int) (*model.TimeEntry, error) {
	e := &model.TimeEntry{}
	if err := scanEntry(db.QueryRow(ctx, `SELECT `+entryColumns+` FROM hours WHERE id = $1`, id), e); err != nil {
		return nil, wrapErr("GetEntry", err)
	}
	return e, nil
}

// GetEntryForUpdate locks the entry row until the surrounding transaction ends.
func GetEntryForUpdate(ctx context.Context, db database.Querier, id int) (*model.TimeEntry, error) {
	e := &model.TimeEntry{}
	if err := scanEntry(db.QueryRow(ctx, `SELECT `+entryColumns+` FROM hours WHERE id = $1 FOR UPDATE`, id), e); err != nil {
		return nil, wrapErr("GetEntryForUpdate", err)
	}
	return e, nil
}

// UpdateEntry rewrites every editable column; the owner never changes.
func UpdateEntry(ctx context.Context, db database.Querier, e *model.TimeEntry) error {
	tag, err := db.Exec(ctx,
		`UPDATE hours SET date = $1, start_time = $2, end_time = $3, break_minutes = $4,
		        description = $5, project = $6
		 WHERE id = $7`,
		e.Date,
		e.StartTime.PgTime(),
		e.EndTime.PgTime(),
		e.BreakMinutes,
		e.Description,
		e.Project,
		e.ID,
	)
	if err != nil {
		return wrapErr("UpdateEntry", err)
	}
	return mustAffect("UpdateEntry", tag)
}

// DeleteEntry removes one entry by id.
func DeleteEntry(ctx context.Context, db database.Querier, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM hours WHERE id = $1`, id)
	if err != nil {
		return wrapErr("DeleteEntry", err)
	}
	return mustAffect("DeleteEntry", tag)
}

// DeleteEntriesByUser removes all entries of a user and reports how many.
func DeleteEntriesByUser(ctx context.Context, db database.Querier, userID int) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM hours WHERE user_id = $1`, userID)
	if err != nil {
		return 0, wrapErr("DeleteEntriesByUser", err)
	}
	return tag.RowsAffected(), nil
}

// ListEntries returns entries matching f, newest first.
func ListEntries(ctx context.Context, db database.Querier, f model.EntryFilter) ([]model.TimeEntry, error) {
	sql, args := entryQuery(f)
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr("ListEntries", err)
	}
	defer rows.Close()

	out := []model.TimeEntry{}
	for rows.Next() {
		var e model.TimeEntry
		if err := scanEntry(rows, &e); err != nil {
			return nil, wrapErr("ListEntries", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListEntries", err)
	}
	return out, nil
}

func entryQuery(f model.EntryFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}
	if f.UserID > 0 {
		add("user_id = ?", f.UserID)
	}
	if f.Project != "" {
		add("project = ?", f.Project)
	}
	if f.From != nil {
		add("date >= ?", *f.From)
	}
	if f.To != nil {
		add("date <= ?", *f.To)
	}

	sql := `SELECT ` + entryColumns + ` FROM hours`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	return sql + ` ORDER BY date DESC, start_time DESC`, args
}

// ListProjects returns the distinct non-empty project labels, alphabetically.
// userID 0 lists projects of all users.
func ListProjects(ctx context.Context, db database.Querier, userID int) ([]string, error) {
	sql := `SELECT DISTINCT project FROM hours WHERE project IS NOT NULL AND project <> ''`
	var args []any
	if userID > 0 {
		sql += ` AND user_id = $1`
		args = append(args, userID)
	}
	return collectStrings(ctx, db, "ListProjects", sql+` ORDER BY project`, args...)
}

// RecentProjects returns up to limit project labels the user logged most recently.
func RecentProjects(ctx context.Context, db database.Querier, userID, limit int) ([]string, error) {
	return collectStrings(ctx, db, "RecentProjects",
		`SELECT project FROM hours
		 WHERE user_id = $1 AND project IS NOT NULL AND project <> ''
		 GROUP BY project
		 ORDER BY MAX(date + start_time) DESC
		 LIMIT $2`,
		userID, limit,
	)
}

func collectStrings(ctx context.Context, db database.Querier, op, sql string, args ...any) ([]string, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, wrapErr(op, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}
