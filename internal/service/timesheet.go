// File: internal/service/timesheet.go
package service

import (
	"context"
	"time"

	"urenregistratie/internal/database"
	"urenregistratie/internal/metrics"
	"urenregistratie/internal/model"
	"urenregistratie/internal/policy"
	"urenregistratie/internal/report"
	"urenregistratie/internal/store"
	"urenregistratie/internal/worktime"

	"github.com/jackc/pgx/v5"
)

// RecentProjectLimit is how many recently used projects are suggested.
const RecentProjectLimit = 5

// EntryInput is the user-editable part of a time entry.
type EntryInput struct {
	Date         time.Time
	StartTime    worktime.Clock
	EndTime      worktime.Clock
	BreakMinutes int
	Description  *string
	Project      *string
}

func (in EntryInput) validate() error {
	if in.Date.IsZero() {
		return model.NewValidationError("date", "date is required")
	}
	if err := worktime.Validate(in.StartTime, in.EndTime, in.BreakMinutes); err != nil {
		return durationError(err)
	}
	return nil
}

func (in EntryInput) apply(e *model.TimeEntry) {
	e.Date = in.Date
	e.StartTime = in.StartTime
	e.EndTime = in.EndTime
	e.BreakMinutes = in.BreakMinutes
	e.Description = label(in.Description)
	e.Project = label(in.Project)
}

// CreateEntry logs hours for the actor and remembers the project as their
// last used one, both in one transaction.
func CreateEntry(ctx context.Context, db database.DB, actor policy.Actor, in EntryInput) (*model.TimeEntry, error) {
	if err := authorize(actor, policy.ActionCreate, policy.EntryOf(actor.UserID)); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	e := &model.TimeEntry{UserID: actor.UserID}
	in.apply(e)

	err := database.WithTx(ctx, db, func(tx pgx.Tx) error {
		if err := store.CreateEntry(ctx, tx, e); err != nil {
			return err
		}
		if e.Project == nil {
			return nil
		}
		return store.SetLastProject(ctx, tx, actor.UserID, e.Project)
	})
	if err != nil {
		return nil, err
	}

	metrics.EntriesCreatedTotal.Inc()
	metrics.HoursLoggedTotal.Add(e.Hours())
	return e, nil
}

// GetEntry returns one entry if the actor may read it.
func GetEntry(ctx context.Context, db database.Querier, actor policy.Actor, entryID int) (*model.TimeEntry, error) {
	e, err := store.GetEntry(ctx, db, entryID)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, policy.ActionRead, policy.EntryOf(e.UserID)); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdateEntry replaces the editable fields of an entry. The row is locked
// while ownership is checked so a concurrent delete cannot interleave.
func UpdateEntry(ctx context.Context, db database.DB, actor policy.Actor, entryID int, in EntryInput) (*model.TimeEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var e *model.TimeEntry
	err := database.WithTx(ctx, db, func(tx pgx.Tx) error {
		var err error
		if e, err = store.GetEntryForUpdate(ctx, tx, entryID); err != nil {
			return err
		}
		if err := authorize(actor, policy.ActionUpdate, policy.EntryOf(e.UserID)); err != nil {
			return err
		}
		in.apply(e)
		return store.UpdateEntry(ctx, tx, e)
	})
	if err != nil {
		return nil, err
	}

	metrics.EntryMutationsTotal.WithLabelValues("update").Inc()
	return e, nil
}

// DeleteEntry removes an entry after the owner/admin check, in one transaction.
func DeleteEntry(ctx context.Context, db database.DB, actor policy.Actor, entryID int) error {
	err := database.WithTx(ctx, db, func(tx pgx.Tx) error {
		e, err := store.GetEntryForUpdate(ctx, tx, entryID)
		if err != nil {
			return err
		}
		if err := authorize(actor, policy.ActionDelete, policy.EntryOf(e.UserID)); err != nil {
			return err
		}
		return store.DeleteEntry(ctx, tx, entryID)
	})
	if err != nil {
		return err
	}

	metrics.EntryMutationsTotal.WithLabelValues("delete").Inc()
	return nil
}

// scope restricts a filter to what the actor may read. Users only ever see
// their own entries; admins see everyone's unless they pick a user.
func scope(actor policy.Actor, f model.EntryFilter) (model.EntryFilter, error) {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return f, model.NewValidationError("to", "to must not be before from")
	}
	if f.UserID == 0 && !policy.IsAdmin(actor) {
		f.UserID = actor.UserID
	}
	if f.UserID != 0 {
		if err := authorize(actor, policy.ActionRead, policy.EntryOf(f.UserID)); err != nil {
			return f, err
		}
	}
	return f, nil
}

// ListEntries returns the entries visible to the actor that match f, newest first.
func ListEntries(ctx context.Context, db database.Querier, actor policy.Actor, f model.EntryFilter) ([]model.TimeEntry, error) {
	f, err := scope(actor, f)
	if err != nil {
		return nil, err
	}
	return store.ListEntries(ctx, db, f)
}

// Report holds both aggregations of one filtered entry set.
type Report struct {
	Weekly  []report.Bucket
	Monthly []report.Bucket
	Total   float64
}

// BuildReport aggregates the entries visible to the actor by ISO week and by month.
func BuildReport(ctx context.Context, db database.Querier, actor policy.Actor, f model.EntryFilter) (*Report, error) {
	entries, err := ListEntries(ctx, db, actor, f)
	if err != nil {
		return nil, err
	}
	return &Report{
		Weekly:  report.Weekly(entries),
		Monthly: report.Monthly(entries),
		Total:   report.Total(entries),
	}, nil
}

// ProjectList feeds the project picker of the entry form.
type ProjectList struct {
	Projects []string
	Recent   []string
	Last     *string
}

// Projects lists known project labels: the actor's own, or everyone's for an admin.
func Projects(ctx context.Context, db database.Querier, actor policy.Actor) (*ProjectList, error) {
	u, err := GetProfile(ctx, db, actor)
	if err != nil {
		return nil, err
	}

	owner := actor.UserID
	if policy.IsAdmin(actor) {
		owner = 0
	}
	all, err := store.ListProjects(ctx, db, owner)
	if err != nil {
		return nil, err
	}
	recent, err := store.RecentProjects(ctx, db, actor.UserID, RecentProjectLimit)
	if err != nil {
		return nil, err
	}
	return &ProjectList{Projects: all, Recent: recent, Last: u.LastProject}, nil
}
