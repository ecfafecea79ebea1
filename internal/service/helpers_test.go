package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"urenregistratie/internal/database"
	"urenregistratie/internal/model"
	"urenregistratie/internal/policy"
	"urenregistratie/internal/worktime"

	"github.com/jackc/pgx/v5"
)

var (
	alice = policy.Actor{UserID: 3, Role: model.RoleUser}
	bob   = policy.Actor{UserID: 4, Role: model.RoleUser}
	admin = policy.Actor{UserID: 1, Role: model.RoleAdmin}
)

func strPtr(s string) *string { return &s }

func day(s string) time.Time {
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func entryRow(id, owner int, project string) []any {
	var p *string
	if project != "" {
		p = strPtr(project)
	}
	return []any{
		id, owner, day("2024-03-04"),
		worktime.MustClock("09:00").PgTime(), worktime.MustClock("17:00").PgTime(),
		30, (*string)(nil), p, time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
	}
}

func userRow(id int, role model.Role) []any {
	return []any{id, "First", "Last", "user@example.com", "hash", string(role), (*float64)(nil), (*string)(nil), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// noTxDB fails the test if any transaction is opened.
func noTxDB(t *testing.T) *database.FakeDB {
	return &database.FakeDB{BeginFn: func(context.Context) (pgx.Tx, error) {
		t.Fatal("unexpected transaction")
		return nil, nil
	}}
}

// execLog records every statement executed against a fake.
type execLog []string

func (l *execLog) add(sql string) { *l = append(*l, strings.Join(strings.Fields(sql), " ")) }

func (l execLog) has(prefix string) bool {
	for _, s := range l {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
