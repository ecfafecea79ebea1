// File: internal/service/users.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"urenregistratie/internal/database"
	"urenregistratie/internal/metrics"
	"urenregistratie/internal/model"
	"urenregistratie/internal/policy"
	"urenregistratie/internal/store"

	"github.com/jackc/pgx/v5"
)

const minPasswordLength = 8

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// ProfileInput is what a user may change about themselves. A nil or empty
// Password keeps the current one.
type ProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  *string
}

// normalizeEmail lowercases and trims, accepting only a bare address.
func normalizeEmail(s string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(s))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", model.NewValidationError("email", "invalid email format")
	}
	return email, nil
}

func validateNames(first, last string) (string, string, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" {
		return "", "", model.NewValidationError("first_name", "first name is required")
	}
	if last == "" {
		return "", "", model.NewValidationError("last_name", "last name is required")
	}
	return first, last, nil
}

func validatePassword(pw string) error {
	if len(pw) < minPasswordLength {
		return model.NewValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	return nil
}

// Register creates an account with the user role. A taken email gives model.ErrConflict.
func Register(ctx context.Context, db database.Querier, in RegisterInput) (*model.User, error) {
	first, last, err := validateNames(in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	return store.CreateUser(ctx, db, &model.User{
		FirstName:    first,
		LastName:     last,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
	})
}

// Login checks credentials; unknown email and wrong password are indistinguishable.
func Login(ctx context.Context, db database.Querier, email, password string) (*model.User, error) {
	u, err := store.GetUserByEmail(ctx, db, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := AuthenticateUser(*u, password); err != nil {
		return nil, err
	}
	return u, nil
}

// GetProfile returns the actor's own user record.
func GetProfile(ctx context.Context, db database.Querier, actor policy.Actor) (*model.User, error) {
	if err := authorize(actor, policy.ActionRead, policy.UserTarget(actor.UserID)); err != nil {
		return nil, err
	}
	return store.GetUserByID(ctx, db, actor.UserID)
}

// UpdateProfile edits the actor's own name, email and optionally password.
func UpdateProfile(ctx context.Context, db database.DB, actor policy.Actor, in ProfileInput) (*model.User, error) {
	if err := authorize(actor, policy.ActionUpdate, policy.UserTarget(actor.UserID)); err != nil {
		return nil, err
	}
	first, last, err := validateNames(in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	var hash string
	if in.Password != nil && *in.Password != "" {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		if hash, err = HashPassword(*in.Password); err != nil {
			return nil, fmt.Errorf("UpdateProfile: %w", err)
		}
	}

	var u *model.User
	err = database.WithTx(ctx, db, func(tx pgx.Tx) error {
		var err error
		if u, err = store.GetUserByIDForUpdate(ctx, tx, actor.UserID); err != nil {
			return err
		}
		taken, err := store.EmailTaken(ctx, tx, email, u.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("email %s: %w", email, model.ErrConflict)
		}

		u.FirstName, u.LastName, u.Email = first, last, email
		if err := store.UpdateUserProfile(ctx, tx, u); err != nil {
			return err
		}
		if hash == "" {
			return nil
		}
		u.PasswordHash = hash
		return store.UpdateUserPassword(ctx, tx, u.ID, hash)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns all users with their total hours; admin only.
func ListUsers(ctx context.Context, db database.Querier, actor policy.Actor, search string) ([]model.UserTotal, error) {
	if !policy.IsAdmin(actor) {
		metrics.PermissionDeniedTotal.WithLabelValues(string(policy.ActionRead)).Inc()
		return nil, fmt.Errorf("list users: %w", model.ErrPermissionDenied)
	}
	return store.ListUsersWithTotals(ctx, db, search)
}

// ChangeRole sets another user's role. An admin can never change their own.
func ChangeRole(ctx context.Context, db database.DB, actor policy.Actor, userID int, role string) (*model.User, error) {
	newRole, err := model.ParseRole(role)
	if err != nil {
		return nil, err
	}
	if err := authorize(actor, policy.ActionChangeRole, policy.UserTarget(userID)); err != nil {
		return nil, err
	}

	var u *model.User
	err = database.WithTx(ctx, db, func(tx pgx.Tx) error {
		var err error
		if u, err = store.GetUserByIDForUpdate(ctx, tx, userID); err != nil {
			return err
		}
		if u.Role == newRole {
			return nil
		}
		if err := store.UpdateUserRole(ctx, tx, userID, newRole); err != nil {
			return err
		}
		u.Role = newRole
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes a user and all of their entries atomically and reports
// how many entries went with them. Any failure leaves both untouched.
func DeleteUser(ctx context.Context, db database.DB, actor policy.Actor, userID int) (int64, error) {
	if err := authorize(actor, policy.ActionDelete, policy.UserTarget(userID)); err != nil {
		return 0, err
	}

	var removed int64
	err := database.WithTx(ctx, db, func(tx pgx.Tx) error {
		if _, err := store.GetUserByIDForUpdate(ctx, tx, userID); err != nil {
			return err
		}
		n, err := store.DeleteEntriesByUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := store.DeleteUser(ctx, tx, userID); err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.UsersDeletedTotal.Inc()
	return removed, nil
}
