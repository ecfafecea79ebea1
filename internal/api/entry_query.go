// File: internal/api/entry_query.go
package api

import (
	"time"

	"urenregistratie/internal/model"
)

// EntryQuery filters entry listings and reports. Dates are inclusive.
// swagger:model api.EntryQuery
type EntryQuery struct {
	Project string `query:"project" validate:"max=100" example:"Alpha"`
	From    string `query:"from" validate:"omitempty,datetime=2006-01-02" example:"2024-03-01"`
	To      string `query:"to" validate:"omitempty,datetime=2006-01-02" example:"2024-03-31"`
	UserID  int    `query:"user_id" validate:"min=0" example:"3"`
}

// Filter converts the query into a store filter.
func (q EntryQuery) Filter() (model.EntryFilter, error) {
	f := model.EntryFilter{UserID: q.UserID, Project: q.Project}
	var err error
	if f.From, err = parseDate("from", q.From); err != nil {
		return f, err
	}
	if f.To, err = parseDate("to", q.To); err != nil {
		return f, err
	}
	return f, nil
}

func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return nil, model.NewValidationError(field, field+" must be formatted as YYYY-MM-DD")
	}
	return &d, nil
}
