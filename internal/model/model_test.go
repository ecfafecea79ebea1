package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"urenregistratie/internal/worktime"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, r)

	r, err = ParseRole(" User ")
	require.NoError(t, err)
	require.Equal(t, RoleUser, r)

	_, err = ParseRole("superuser")
	require.Error(t, err)
	require.True(t, IsValidation(err))

	require.True(t, RoleAdmin.Valid())
	require.False(t, Role("root").Valid())
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewValidationError("email", "invalid email format"))
	require.True(t, IsValidation(err))
	require.Contains(t, err.Error(), "email: invalid email format")
	require.Equal(t, "oops", NewValidationError("", "oops").Error())
	require.False(t, IsValidation(errors.New("plain")))
}

func TestTimeEntryHours(t *testing.T) {
	e := TimeEntry{
		Date:         time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		StartTime:    worktime.MustClock("09:00"),
		EndTime:      worktime.MustClock("17:00"),
		BreakMinutes: 30,
	}
	require.Equal(t, int64(750), e.Hundredths())
	require.Equal(t, 7.5, e.Hours())
	require.Equal(t, e.Hours(), e.Hours())
}
