package team

import "errors"

const (
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusBlocked  = "blocked"
)

var (
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrAdminOnly         = errors.New("status change requires admin")
)

// IsValidStatus reports whether s is one of the known lifecycle statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected, StatusBlocked:
		return true
	}
	return false
}

// CanTransition is the single guard consulted by every operation that
// mutates a team's status. Leaders only ever move draft -> pending (as a
// side effect of their first scrim request). Admins may approve a team out
// of pending, rejected or blocked, and may reject or block from any state.
// blocked is sticky: nothing leaves it except an explicit admin approval.
func CanTransition(from, to string, byAdmin bool) error {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return ErrInvalidTransition
	}

	switch to {
	case StatusPending:
		if byAdmin {
			return ErrInvalidTransition
		}
		if from != StatusDraft {
			return ErrInvalidTransition
		}
		return nil
	case StatusApproved:
		if !byAdmin {
			return ErrAdminOnly
		}
		if from == StatusPending || from == StatusRejected || from == StatusBlocked {
			return nil
		}
		return ErrInvalidTransition
	case StatusRejected, StatusBlocked:
		if !byAdmin {
			return ErrAdminOnly
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}
