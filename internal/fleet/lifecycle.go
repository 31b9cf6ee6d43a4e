// Package fleet holds the pure decision logic of the assignment lifecycle
// and the reporting fold. Nothing here touches the network or the
// database; handlers feed in rows they already fetched and act on the
// returned verdicts, which keeps these rules testable in isolation.
package fleet

import (
	"errors"

	"github.com/fleetflow/fleetflow/internal/repository"
)

var (
	// ErrNotPermitted means the caller's role can never perform the
	// operation, regardless of which rows are involved.
	ErrNotPermitted = errors.New("role not permitted")

	// ErrNotOwner means a driver attempted an operation on an assignment
	// that names a different driver of record.
	ErrNotOwner = errors.New("not the driver of record")

	// ErrAlreadyCompleted means the assignment was deactivated earlier;
	// the ACTIVE -> COMPLETED transition is one-way and terminal.
	ErrAlreadyCompleted = errors.New("assignment is already completed")
)

// IsManagement reports whether the role may administer fleet resources.
func IsManagement(role string) bool {
	return role == "admin" || role == "manager"
}

// AuthorizeCompletion decides whether the caller may complete the given
// assignment. Admins and managers may complete any assignment; a driver
// only the one naming them as driver of record. Every other role is
// rejected outright.
func AuthorizeCompletion(role string, callerID uint64, a *repository.Assignment) error {
	switch {
	case IsManagement(role):
		return nil
	case role == "driver":
		if a.DriverID != callerID {
			return ErrNotOwner
		}
		return nil
	default:
		return ErrNotPermitted
	}
}

// CheckCompletable enforces the one-way state machine: only an active
// assignment can be completed, and the check performs no writes so a
// rejected call has no side effects.
func CheckCompletable(a *repository.Assignment) error {
	if !a.IsActive {
		return ErrAlreadyCompleted
	}
	return nil
}
