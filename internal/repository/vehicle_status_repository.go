// VehicleStatus model and repository. There is exactly one status row per
// vehicle, keyed by vehicle_id and overwritten in place; no history is
// retained. Rows are seeded when an assignment is created, so a missing
// row is a detectable operational gap rather than "no GPS fix yet" (which
// is an existing row with NULL coordinates).
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// VehicleStatus mirrors the 'vehicle_status' table.
type VehicleStatus struct {
	VehicleID        uint64     `json:"vehicle_id"`
	CurrentLatitude  *float64   `json:"current_latitude"`
	CurrentLongitude *float64   `json:"current_longitude"`
	IsOnline         bool       `json:"is_online"`
	LastUpdate       time.Time  `json:"last_update"`
	CompanyID        string     `json:"company_id"`

	// Vehicle display fields populated only by the joined read tier.
	Vehicle *AssignmentVehicle `json:"vehicles,omitempty"`
}

// StatusFilter narrows status reads. A zero VehicleID means no single-vehicle
// filter; a nil VehicleIDs means no scope restriction. Callers must handle
// the empty-but-non-nil VehicleIDs case themselves (a driver with no active
// assignments) since it would produce an empty IN clause.
type StatusFilter struct {
	VehicleID  uint64
	VehicleIDs []uint64
}

var ErrStatusNotFound = errors.New("vehicle status not found")

type VehicleStatusRepo struct{ DB *sql.DB }

func NewVehicleStatusRepo(db *sql.DB) *VehicleStatusRepo { return &VehicleStatusRepo{DB: db} }

const statusCols = "s.vehicle_id, s.current_latitude, s.current_longitude, s.is_online, s.last_update, s.company_id"

func statusWhere(f StatusFilter) (string, []any) {
	var conds []string
	var args []any
	if f.VehicleID != 0 {
		conds = append(conds, "s.vehicle_id = ?")
		args = append(args, f.VehicleID)
	}
	if len(f.VehicleIDs) > 0 {
		ph := strings.TrimSuffix(strings.Repeat("?,", len(f.VehicleIDs)), ",")
		conds = append(conds, "s.vehicle_id IN ("+ph+")")
		for _, id := range f.VehicleIDs {
			args = append(args, id)
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListWithVehicles is the rich read tier: status rows joined with vehicle
// display fields, most recently updated first.
func (r *VehicleStatusRepo) ListWithVehicles(ctx context.Context, f StatusFilter) ([]*VehicleStatus, error) {
	where, args := statusWhere(f)
	q := `SELECT ` + statusCols + `, v.make, v.model, v.license_plate
	      FROM vehicle_status s
	      JOIN vehicles v ON v.id = s.vehicle_id` + where + `
	      ORDER BY s.last_update DESC`
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*VehicleStatus
	for rows.Next() {
		s := new(VehicleStatus)
		v := new(AssignmentVehicle)
		if err := rows.Scan(&s.VehicleID, &s.CurrentLatitude, &s.CurrentLongitude,
			&s.IsOnline, &s.LastUpdate, &s.CompanyID, &v.Make, &v.Model, &v.LicensePlate); err != nil {
			return nil, err
		}
		s.Vehicle = v
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// List is the reduced read tier: bare status rows.
func (r *VehicleStatusRepo) List(ctx context.Context, f StatusFilter) ([]*VehicleStatus, error) {
	where, args := statusWhere(f)
	q := `SELECT ` + statusCols + ` FROM vehicle_status s` + where + ` ORDER BY s.last_update DESC`
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*VehicleStatus
	for rows.Next() {
		s := new(VehicleStatus)
		if err := rows.Scan(&s.VehicleID, &s.CurrentLatitude, &s.CurrentLongitude,
			&s.IsOnline, &s.LastUpdate, &s.CompanyID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByVehicle fetches the status row for a vehicle; ErrStatusNotFound when
// the row was never seeded.
func (r *VehicleStatusRepo) GetByVehicle(ctx context.Context, vehicleID uint64) (*VehicleStatus, error) {
	s := new(VehicleStatus)
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+statusCols+` FROM vehicle_status s WHERE s.vehicle_id=? LIMIT 1`, vehicleID).
		Scan(&s.VehicleID, &s.CurrentLatitude, &s.CurrentLongitude, &s.IsOnline, &s.LastUpdate, &s.CompanyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}
	return s, nil
}

// Seed idempotently ensures a status row exists for the vehicle. An existing
// row keeps its position and online state untouched; a new row starts
// offline with NULL coordinates so "no GPS fix yet" stays representable.
func (r *VehicleStatusRepo) Seed(ctx context.Context, vehicleID uint64, companyID string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO vehicle_status (vehicle_id, current_latitude, current_longitude, is_online, last_update, company_id)
		 VALUES (?, NULL, NULL, FALSE, ?, ?)
		 ON DUPLICATE KEY UPDATE vehicle_id = vehicle_id`,
		vehicleID, time.Now().UTC(), companyID)
	return err
}

// Save overwrites the stored state for s.VehicleID with s. Callers are
// expected to have merged the incoming patch into a freshly read row.
func (r *VehicleStatusRepo) Save(ctx context.Context, s *VehicleStatus) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE vehicle_status
		 SET current_latitude=?, current_longitude=?, is_online=?, last_update=?
		 WHERE vehicle_id=?`,
		s.CurrentLatitude, s.CurrentLongitude, s.IsOnline, s.LastUpdate, s.VehicleID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Zero affected rows is ambiguous in MySQL (identical values), so
		// distinguish a vanished row explicitly.
		if _, err := r.GetByVehicle(ctx, s.VehicleID); err != nil {
			return err
		}
	}
	return nil
}

// SetOffline forces the vehicle's online flag to false and refreshes the
// timestamp; used as the completion side effect of an assignment.
func (r *VehicleStatusRepo) SetOffline(ctx context.Context, vehicleID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE vehicle_status SET is_online=FALSE, last_update=? WHERE vehicle_id=?",
		time.Now().UTC(), vehicleID)
	return err
}
