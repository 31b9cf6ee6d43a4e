package fleet

import (
	"time"

	"github.com/fleetflow/fleetflow/internal/repository"
)

// StatusPatch carries the optional fields of a vehicle-status write. Each
// field is independently optional: a driver toggling online does not have
// to resend coordinates, and a GPS ping does not have to restate the
// online flag.
type StatusPatch struct {
	CurrentLatitude  *float64 `json:"current_latitude"`
	CurrentLongitude *float64 `json:"current_longitude"`
	IsOnline         *bool    `json:"is_online"`
}

// Empty reports whether the patch carries no fields at all. An empty patch
// still refreshes last_update, acting as a heartbeat.
func (p StatusPatch) Empty() bool {
	return p.CurrentLatitude == nil && p.CurrentLongitude == nil && p.IsOnline == nil
}

// MergeStatus applies a partial update onto an existing status row: fields
// present in the patch replace the stored values, absent fields keep their
// prior values, and last_update always advances to now. The input row is
// not mutated.
func MergeStatus(cur repository.VehicleStatus, p StatusPatch, now time.Time) repository.VehicleStatus {
	next := cur
	if p.CurrentLatitude != nil {
		lat := *p.CurrentLatitude
		next.CurrentLatitude = &lat
	}
	if p.CurrentLongitude != nil {
		lng := *p.CurrentLongitude
		next.CurrentLongitude = &lng
	}
	if p.IsOnline != nil {
		next.IsOnline = *p.IsOnline
	}
	next.LastUpdate = now.UTC()
	return next
}
