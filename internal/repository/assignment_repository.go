// Assignment model and repository. An assignment is the time-bounded link
// between one vehicle and one driver: it is created active, stays active
// while the driver operates the vehicle, and is deactivated exactly once by
// the completion operation. A deactivated assignment is never reactivated.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Assignment mirrors the 'assignments' table.
type Assignment struct {
	ID             uint64     `json:"id"`
	VehicleID      uint64     `json:"vehicle_id"`
	DriverID       uint64     `json:"driver_id"`
	IsActive       bool       `json:"is_active"`
	AssignedDate   time.Time  `json:"assigned_date"`
	UnassignedDate *time.Time `json:"unassigned_date"`
	CompanyID      string     `json:"company_id"`

	// Display fields populated only by the joined read tier.
	Vehicle *AssignmentVehicle `json:"vehicles,omitempty"`
	Driver  *AssignmentDriver  `json:"profiles,omitempty"`
}

// AssignmentVehicle is the vehicle display subset attached by the joined tier.
type AssignmentVehicle struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

// AssignmentDriver is the driver display subset attached by the joined tier.
type AssignmentDriver struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

var ErrAssignmentNotFound = errors.New("assignment not found")

type AssignmentRepo struct{ DB *sql.DB }

func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{DB: db} }

const assignmentCols = "a.id, a.vehicle_id, a.driver_id, a.is_active, a.assigned_date, a.unassigned_date, a.company_id"

func (r *AssignmentRepo) scanBare(rows *sql.Rows) ([]*Assignment, error) {
	defer rows.Close()
	var out []*Assignment
	for rows.Next() {
		a := new(Assignment)
		if err := rows.Scan(&a.ID, &a.VehicleID, &a.DriverID, &a.IsActive,
			&a.AssignedDate, &a.UnassignedDate, &a.CompanyID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AssignmentRepo) scanDetailed(rows *sql.Rows) ([]*Assignment, error) {
	defer rows.Close()
	var out []*Assignment
	for rows.Next() {
		a := new(Assignment)
		v := new(AssignmentVehicle)
		d := new(AssignmentDriver)
		if err := rows.Scan(&a.ID, &a.VehicleID, &a.DriverID, &a.IsActive,
			&a.AssignedDate, &a.UnassignedDate, &a.CompanyID,
			&v.Make, &v.Model, &v.LicensePlate, &d.FirstName, &d.LastName); err != nil {
			return nil, err
		}
		a.Vehicle = v
		a.Driver = d
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListWithDetails is the rich read tier: assignments joined with vehicle and
// driver display fields, most recently assigned first. An optional driverID
// restricts the result to that driver's assignments (0 means all).
func (r *AssignmentRepo) ListWithDetails(ctx context.Context, driverID uint64) ([]*Assignment, error) {
	q := `SELECT ` + assignmentCols + `, v.make, v.model, v.license_plate, p.first_name, p.last_name
	      FROM assignments a
	      JOIN vehicles v ON v.id = a.vehicle_id
	      JOIN profiles p ON p.id = a.driver_id`
	args := []any{}
	if driverID != 0 {
		q += " WHERE a.driver_id = ?"
		args = append(args, driverID)
	}
	q += " ORDER BY a.assigned_date DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return r.scanDetailed(rows)
}

// List is the reduced read tier: bare assignment rows without joins, used
// when the joined tier is unavailable.
func (r *AssignmentRepo) List(ctx context.Context, driverID uint64) ([]*Assignment, error) {
	q := `SELECT ` + assignmentCols + ` FROM assignments a`
	args := []any{}
	if driverID != 0 {
		q += " WHERE a.driver_id = ?"
		args = append(args, driverID)
	}
	q += " ORDER BY a.assigned_date DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return r.scanBare(rows)
}

// Create inserts an active assignment stamped with the current time.
func (r *AssignmentRepo) Create(ctx context.Context, a *Assignment) error {
	now := time.Now().UTC()
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO assignments (vehicle_id, driver_id, is_active, assigned_date, company_id)
		 VALUES (?,?,TRUE,?,?)`,
		a.VehicleID, a.DriverID, now, a.CompanyID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	a.IsActive = true
	a.AssignedDate = now
	return nil
}

// GetByID fetches an assignment by id; ErrAssignmentNotFound when absent.
func (r *AssignmentRepo) GetByID(ctx context.Context, id uint64) (*Assignment, error) {
	a := new(Assignment)
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+assignmentCols+` FROM assignments a WHERE a.id=? LIMIT 1`, id).
		Scan(&a.ID, &a.VehicleID, &a.DriverID, &a.IsActive, &a.AssignedDate, &a.UnassignedDate, &a.CompanyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

// Complete deactivates an active assignment and stamps unassigned_date.
// The is_active guard in the WHERE clause makes the transition one-way even
// under concurrent completion attempts: the loser sees ErrConflict.
func (r *AssignmentRepo) Complete(ctx context.Context, id uint64) (*Assignment, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE assignments SET is_active=FALSE, unassigned_date=? WHERE id=? AND is_active=TRUE",
		time.Now().UTC(), id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrConflict
	}
	return r.GetByID(ctx, id)
}

// HasActive reports whether the driver currently holds an active assignment
// for the given vehicle.
func (r *AssignmentRepo) HasActive(ctx context.Context, driverID, vehicleID uint64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM assignments WHERE driver_id=? AND vehicle_id=? AND is_active=TRUE LIMIT 1",
		driverID, vehicleID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ActiveVehicleIDs returns the vehicles covered by the driver's currently
// active assignments. An empty slice is a normal outcome for a driver with
// no assignments.
func (r *AssignmentRepo) ActiveVehicleIDs(ctx context.Context, driverID uint64) ([]uint64, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT vehicle_id FROM assignments WHERE driver_id=? AND is_active=TRUE", driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
