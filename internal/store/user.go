// File: internal/store/user.go
package store

import (
	"context"
	"strconv"
	"strings"

	"urenregistratie/internal/database"
	"urenregistratie/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, first_name, last_name, email, password_hash, role, hourly_rate, last_project, created_at`

func scanUser(row pgx.Row, u *model.User) error {
	var role string
	if err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.HourlyRate,
		&u.LastProject,
		&u.CreatedAt,
	); err != nil {
		return err
	}
	u.Role = model.Role(role)
	return nil
}

func getUser(ctx context.Context, db database.Querier, op, sql string, arg any) (*model.User, error) {
	u := &model.User{}
	if err := scanUser(db.QueryRow(ctx, sql, arg), u); err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// GetUserByID loads a user by id.
func GetUserByID(ctx context.Context, db database.Querier, userID int) (*model.User, error) {
	return getUser(ctx, db, "GetUserByID",
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

// GetUserByIDForUpdate locks the row until the surrounding transaction ends.
func GetUserByIDForUpdate(ctx context.Context, db database.Querier, userID int) (*model.User, error) {
	return getUser(ctx, db, "GetUserByIDForUpdate",
		`SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, userID)
}

// GetUserByEmail loads a user by (lowercase) email.
func GetUserByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	return getUser(ctx, db, "GetUserByEmail",
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// EmailTaken reports whether another user than exceptID already uses email.
func EmailTaken(ctx context.Context, db database.Querier, email string, exceptID int) (bool, error) {
	var taken bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
		email, exceptID,
	).Scan(&taken)
	if err != nil {
		return false, wrapErr("EmailTaken", err)
	}
	return taken, nil
}

// CreateUser inserts a user and returns it with id and created_at filled in.
func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, role, hourly_rate)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.FirstName,
		u.LastName,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.HourlyRate,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, wrapErr("CreateUser", err)
	}
	return u, nil
}

// UpdateUserProfile writes the self-editable fields.
func UpdateUserProfile(ctx context.Context, db database.Querier, u *model.User) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, email = $3
		 WHERE id = $4`,
		u.FirstName,
		u.LastName,
		u.Email,
		u.ID,
	)
	if err != nil {
		return wrapErr("UpdateUserProfile", err)
	}
	return mustAffect("UpdateUserProfile", tag)
}

// UpdateUserPassword replaces the stored password hash.
func UpdateUserPassword(ctx context.Context, db database.Querier, userID int, passwordHash string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1
		 WHERE id = $2`,
		passwordHash,
		userID,
	)
	if err != nil {
		return wrapErr("UpdateUserPassword", err)
	}
	return mustAffect("UpdateUserPassword", tag)
}

// UpdateUserRole sets the role of one user.
func UpdateUserRole(ctx context.Context, db database.Querier, userID int, role model.Role) error {
	tag, err := db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, string(role), userID)
	if err != nil {
		return wrapErr("UpdateUserRole", err)
	}
	return mustAffect("UpdateUserRole", tag)
}

// SetLastProject remembers the project label a user last logged hours on.
func SetLastProject(ctx context.Context, db database.Querier, userID int, project *string) error {
	if _, err := db.Exec(ctx, `UPDATE users SET last_project = $1 WHERE id = $2`, project, userID); err != nil {
		return wrapErr("SetLastProject", err)
	}
	return nil
}

// DeleteUser removes the user row only; entries are deleted by the caller first.
func DeleteUser(ctx context.Context, db database.Querier, userID int) error {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return wrapErr("DeleteUser", err)
	}
	return mustAffect("DeleteUser", tag)
}

// ListUsersWithTotals returns every user with the sum of their entry
// durations, each entry rounded to 2 decimals first. search matches first
// name, last name or email as a case-insensitive substring.
func ListUsersWithTotals(ctx context.Context, db database.Querier, search string) ([]model.UserTotal, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT u.id, u.first_name, u.last_name, u.email, u.password_hash, u.role,
		       u.hourly_rate, u.last_project, u.created_at,
		       COALESCE(SUM(ROUND(((EXTRACT(EPOCH FROM (h.end_time - h.start_time)) - h.break_minutes * 60) / 3600.0)::numeric, 2)), 0)::float8 AS total_hours
		FROM users u
		LEFT JOIN hours h ON h.user_id = u.id`)
	if search = strings.TrimSpace(search); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		p := "$" + strconv.Itoa(len(args))
		sb.WriteString(` WHERE u.first_name ILIKE ` + p + ` OR u.last_name ILIKE ` + p + ` OR u.email ILIKE ` + p)
	}
	sb.WriteString(` GROUP BY u.id ORDER BY u.last_name, u.first_name`)

	rows, err := db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, wrapErr("ListUsersWithTotals", err)
	}
	defer rows.Close()

	out := []model.UserTotal{}
	for rows.Next() {
		var (
			ut   model.UserTotal
			role string
		)
		if err := rows.Scan(
			&ut.ID,
			&ut.FirstName,
			&ut.LastName,
			&ut.Email,
			&ut.PasswordHash,
			&role,
			&ut.HourlyRate,
			&ut.LastProject,
			&ut.CreatedAt,
			&ut.TotalHours,
		); err != nil {
			return nil, wrapErr("ListUsersWithTotals", err)
		}
		ut.Role = model.Role(role)
		out = append(out, ut)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListUsersWithTotals", err)
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
