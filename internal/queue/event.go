// Package queue defines message payloads exchanged over the message broker.
package queue

// AssignmentCompletedEvent is published when an assignment transitions to
// COMPLETED. It carries enough context for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
type AssignmentCompletedEvent struct {
    AssignmentID uint64 `json:"assignment_id"`
    VehicleID    uint64 `json:"vehicle_id"`
    DriverID     uint64 `json:"driver_id"`
    CompanyID    string `json:"company_id"`
    CompletedBy  uint64 `json:"completed_by"`
    AssignedAt   string `json:"assigned_at"`
    CompletedAt  string `json:"completed_at"`
}
