// Package repository defines error values that are reused across multiple
// repositories. These sentinels allow handlers to distinguish failure
// scenarios without string matching: ErrConflict covers 409-style state
// errors (e.g. a second driver record for the same profile), and each
// aggregate defines its own not-found value next to its model.
package repository

import "errors"

// ErrConflict is returned when a write cannot proceed because of existing
// state, such as completing an assignment that is already inactive.
var ErrConflict = errors.New("conflict")
