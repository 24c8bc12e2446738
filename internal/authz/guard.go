// Package authz decides whether a subject may perform an action on a resource.
package authz

import (
	"github.com/avolchek/gamevault/internal/auth"
	"github.com/avolchek/gamevault/internal/errs"
	"github.com/gofrs/uuid/v5"
)

// Action is an operation class checked against the policy table.
type Action int

const (
	// ActionRead covers reading the caller's own data.
	ActionRead Action = iota
	// ActionList covers listing domain resources.
	ActionList
	// ActionCreate covers creating a resource.
	ActionCreate
	// ActionModify covers mutating an existing resource.
	ActionModify
	// ActionDelete covers deleting an existing resource.
	ActionDelete
)

// Resource describes the target of an action for policy purposes.
// Owned reports whether the resource carries an owner at all; un-owned
// resources (games) only require an authenticated caller for mutation.
type Resource struct {
	Owner uuid.UUID
	Owned bool
}

// OwnedBy describes a resource owned by the given user.
func OwnedBy(owner uuid.UUID) Resource { return Resource{Owner: owner, Owned: true} }

// Unowned describes a resource with no owner concept.
func Unowned() Resource { return Resource{} }

// Authorize applies the policy table. It returns nil to allow, or one of two
// denials: errs.ErrUnauthenticated when no identity is present and
// errs.ErrForbidden when the identity does not own the resource. Callers map
// the two to distinct transport statuses (401 vs 403).
func Authorize(sub auth.Subject, action Action, res Resource) error {
	id, ok := sub.Identity()
	if !ok {
		return errs.ErrUnauthenticated
	}

	switch action {
	case ActionRead, ActionList, ActionCreate:
		return nil
	case ActionModify, ActionDelete:
		if !res.Owned {
			return nil
		}
		if id.ID != res.Owner {
			return errs.ErrForbidden
		}
		return nil
	default:
		return errs.ErrForbidden
	}
}
