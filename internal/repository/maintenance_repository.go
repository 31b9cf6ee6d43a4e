// Maintenance models and repository. Schedules are planned work with an
// estimated cost; logs are completed work with the incurred cost. Both
// reference a vehicle but carry no lifecycle coupling to assignments or
// statuses.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// MaintenanceSchedule mirrors the 'maintenance_schedules' table.
type MaintenanceSchedule struct {
	ID            uint64    `json:"id"`
	VehicleID     uint64    `json:"vehicle_id"`
	ServiceType   string    `json:"service_type"`
	Description   string    `json:"description"`
	ScheduledDate time.Time `json:"scheduled_date"`
	EstimatedCost *float64  `json:"estimated_cost"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	CompanyID     string    `json:"company_id"`

	Vehicle *AssignmentVehicle `json:"vehicles,omitempty"`
}

// MaintenanceLog mirrors the 'maintenance_logs' table.
type MaintenanceLog struct {
	ID              uint64    `json:"id"`
	VehicleID       uint64    `json:"vehicle_id"`
	ServiceType     string    `json:"service_type"`
	Description     string    `json:"description"`
	CompletionDate  time.Time `json:"completion_date"`
	Cost            *float64  `json:"cost"`
	OdometerReading *float64  `json:"odometer_reading"`
	CompanyID       string    `json:"company_id"`

	Vehicle *AssignmentVehicle `json:"vehicles,omitempty"`
}

type MaintenanceRepo struct{ DB *sql.DB }

func NewMaintenanceRepo(db *sql.DB) *MaintenanceRepo { return &MaintenanceRepo{DB: db} }

const scheduleCols = "m.id, m.vehicle_id, m.service_type, m.description, m.scheduled_date, m.estimated_cost, m.priority, m.status, m.company_id"

// ListSchedulesWithVehicles is the rich read tier for schedules, soonest
// scheduled date first.
func (r *MaintenanceRepo) ListSchedulesWithVehicles(ctx context.Context) ([]*MaintenanceSchedule, error) {
	const q = `SELECT ` + scheduleCols + `, v.make, v.model, v.license_plate
	           FROM maintenance_schedules m
	           JOIN vehicles v ON v.id = m.vehicle_id
	           ORDER BY m.scheduled_date ASC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*MaintenanceSchedule
	for rows.Next() {
		m := new(MaintenanceSchedule)
		v := new(AssignmentVehicle)
		if err := rows.Scan(&m.ID, &m.VehicleID, &m.ServiceType, &m.Description, &m.ScheduledDate,
			&m.EstimatedCost, &m.Priority, &m.Status, &m.CompanyID,
			&v.Make, &v.Model, &v.LicensePlate); err != nil {
			return nil, err
		}
		m.Vehicle = v
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSchedules is the reduced read tier for schedules.
func (r *MaintenanceRepo) ListSchedules(ctx context.Context) ([]*MaintenanceSchedule, error) {
	const q = `SELECT ` + scheduleCols + ` FROM maintenance_schedules m ORDER BY m.scheduled_date ASC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*MaintenanceSchedule
	for rows.Next() {
		m := new(MaintenanceSchedule)
		if err := rows.Scan(&m.ID, &m.VehicleID, &m.ServiceType, &m.Description, &m.ScheduledDate,
			&m.EstimatedCost, &m.Priority, &m.Status, &m.CompanyID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSchedule inserts a schedule and populates its generated id.
func (r *MaintenanceRepo) CreateSchedule(ctx context.Context, m *MaintenanceSchedule) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO maintenance_schedules (vehicle_id, service_type, description, scheduled_date, estimated_cost, priority, status, company_id)
		 VALUES (?,?,?,?,?,?,?,?)`,
		m.VehicleID, m.ServiceType, m.Description, m.ScheduledDate, m.EstimatedCost, m.Priority, m.Status, m.CompanyID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

const logCols = "m.id, m.vehicle_id, m.service_type, m.description, m.completion_date, m.cost, m.odometer_reading, m.company_id"

// ListLogsWithVehicles is the rich read tier for logs, most recent
// completion first.
func (r *MaintenanceRepo) ListLogsWithVehicles(ctx context.Context) ([]*MaintenanceLog, error) {
	const q = `SELECT ` + logCols + `, v.make, v.model, v.license_plate
	           FROM maintenance_logs m
	           JOIN vehicles v ON v.id = m.vehicle_id
	           ORDER BY m.completion_date DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*MaintenanceLog
	for rows.Next() {
		m := new(MaintenanceLog)
		v := new(AssignmentVehicle)
		if err := rows.Scan(&m.ID, &m.VehicleID, &m.ServiceType, &m.Description, &m.CompletionDate,
			&m.Cost, &m.OdometerReading, &m.CompanyID, &v.Make, &v.Model, &v.LicensePlate); err != nil {
			return nil, err
		}
		m.Vehicle = v
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLogs is the reduced read tier for logs.
func (r *MaintenanceRepo) ListLogs(ctx context.Context) ([]*MaintenanceLog, error) {
	const q = `SELECT ` + logCols + ` FROM maintenance_logs m ORDER BY m.completion_date DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*MaintenanceLog
	for rows.Next() {
		m := new(MaintenanceLog)
		if err := rows.Scan(&m.ID, &m.VehicleID, &m.ServiceType, &m.Description, &m.CompletionDate,
			&m.Cost, &m.OdometerReading, &m.CompanyID); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLog inserts a maintenance log and populates its generated id.
func (r *MaintenanceRepo) CreateLog(ctx context.Context, m *MaintenanceLog) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO maintenance_logs (vehicle_id, service_type, description, completion_date, cost, odometer_reading, company_id)
		 VALUES (?,?,?,?,?,?,?)`,
		m.VehicleID, m.ServiceType, m.Description, m.CompletionDate, m.Cost, m.OdometerReading, m.CompanyID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// ListLogCosts returns only the cost column of all logs, for the reporting
// aggregator.
func (r *MaintenanceRepo) ListLogCosts(ctx context.Context) ([]*float64, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT cost FROM maintenance_logs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*float64
	for rows.Next() {
		var c *float64
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
