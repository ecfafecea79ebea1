// File: internal/policy/policy.go

// Package policy decides which actor may do what to which record.
//
// It is the only place role checks live; handlers and services ask it
// instead of comparing roles themselves.
package policy

import (
	"fmt"

	"urenregistratie/internal/model"
)

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID int
	Role   model.Role
}

type Action string

const (
	ActionCreate     Action = "create"
	ActionRead       Action = "read"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionChangeRole Action = "change_role"
)

type Kind int

const (
	KindEntry Kind = iota + 1
	KindUser
)

// Target identifies the record an action applies to. For entries OwnerID is
// the entry's user; for users it is the user itself.
type Target struct {
	Kind    Kind
	OwnerID int
}

// EntryOf targets a time entry owned by ownerID.
func EntryOf(ownerID int) Target { return Target{Kind: KindEntry, OwnerID: ownerID} }

// UserTarget targets the user record with the given id.
func UserTarget(userID int) Target { return Target{Kind: KindUser, OwnerID: userID} }

// IsAdmin reports whether the actor holds the admin role.
func IsAdmin(a Actor) bool {
	return a.Role == model.RoleAdmin
}

// Can is the single access rule for the whole application.
func Can(a Actor, action Action, t Target) bool {
	if a.UserID <= 0 || !a.Role.Valid() {
		return false
	}
	self := t.OwnerID == a.UserID

	switch t.Kind {
	case KindEntry:
		switch action {
		case ActionCreate:
			return self
		case ActionRead, ActionUpdate, ActionDelete:
			return self || IsAdmin(a)
		}
	case KindUser:
		switch action {
		case ActionRead:
			return self || IsAdmin(a)
		case ActionUpdate:
			return self
		case ActionChangeRole, ActionDelete:
			return IsAdmin(a) && !self
		}
	}
	return false
}

// Authorize is Can returning model.ErrPermissionDenied on refusal.
func Authorize(a Actor, action Action, t Target) error {
	if !Can(a, action, t) {
		return fmt.Errorf("%s %s: %w", action, t, model.ErrPermissionDenied)
	}
	return nil
}

func (t Target) String() string {
	switch t.Kind {
	case KindEntry:
		return fmt.Sprintf("entry of user %d", t.OwnerID)
	case KindUser:
		return fmt.Sprintf("user %d", t.OwnerID)
	}
	return "unknown target"
}
