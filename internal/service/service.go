// File: internal/service/service.go

// Package service holds the application operations behind the HTTP API.
//
// Every operation takes the calling policy.Actor explicitly, validates its
// input before touching the store and runs its writes in one transaction.
package service

import (
	"errors"
	"strings"

	"urenregistratie/internal/metrics"
	"urenregistratie/internal/model"
	"urenregistratie/internal/policy"
	"urenregistratie/internal/worktime"
)

func authorize(actor policy.Actor, action policy.Action, target policy.Target) error {
	if err := policy.Authorize(actor, action, target); err != nil {
		metrics.PermissionDeniedTotal.WithLabelValues(string(action)).Inc()
		return err
	}
	return nil
}

// durationError maps a worktime rejection onto the offending request field.
func durationError(err error) error {
	switch {
	case errors.Is(err, worktime.ErrNegativeBreak), errors.Is(err, worktime.ErrBreakTooLong):
		return model.NewValidationError("break_minutes", err.Error())
	case errors.Is(err, worktime.ErrEndBeforeStart):
		return model.NewValidationError("end_time", err.Error())
	}
	return model.NewValidationError("", err.Error())
}

// label trims a free-form label; blank means absent.
func label(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
