// Package authz makes the authorization decisions for joke actions.
// It is a pure decision layer: callers resolve the session identity and
// the resource owner first, then ask whether the action is permitted.
package authz

import "errors"

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("not the owner of this resource")
)

type Action int

const (
	ActionView Action = iota
	ActionCreate
	ActionRate
	ActionEdit
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionView:
		return "view"
	case ActionCreate:
		return "create"
	case ActionRate:
		return "rate"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	}
	return "unknown"
}

// OwnerScoped reports whether the action is restricted to the resource owner.
func (a Action) OwnerScoped() bool {
	return a == ActionEdit || a == ActionDelete
}

// Authorize decides whether sessionUserID may perform action on a resource
// owned by ownerID. An empty sessionUserID means no valid session exists;
// every action requires one. Edit and delete additionally require the
// caller to be the owner. ownerID is ignored for the other actions.
func Authorize(action Action, sessionUserID, ownerID string) error {
	if sessionUserID == "" {
		return ErrUnauthenticated
	}
	if action.OwnerScoped() && sessionUserID != ownerID {
		return ErrForbidden
	}
	return nil
}
