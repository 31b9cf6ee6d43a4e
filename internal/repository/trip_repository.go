// Trip model and repository. Trips are informational records feeding the
// dashboard and analytics aggregation; drivers self-attribute new trips.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// Trip mirrors the 'trip_history' table.
type Trip struct {
	ID         uint64     `json:"id"`
	VehicleID  uint64     `json:"vehicle_id"`
	DriverID   uint64     `json:"driver_id"`
	RouteID    *uint64    `json:"route_id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	DistanceKM *float64   `json:"distance_km"`
	FuelUsed   *float64   `json:"fuel_used"`
	Status     string     `json:"status"` // in_progress | completed | cancelled
	CompanyID  string     `json:"company_id"`

	// Display fields populated only by the joined read tier.
	Vehicle *AssignmentVehicle `json:"vehicles,omitempty"`
	Route   *TripRoute         `json:"routes,omitempty"`
	Driver  *AssignmentDriver  `json:"profiles,omitempty"`
}

// TripRoute is the route display subset attached by the joined tier.
type TripRoute struct {
	Name       string   `json:"name"`
	DistanceKM *float64 `json:"distance_km"`
}

// TripUsage is the analytics projection of a trip: just the numeric fields
// the reporting aggregator folds over, nullable as stored.
type TripUsage struct {
	DistanceKM *float64
	FuelUsed   *float64
}

type TripRepo struct{ DB *sql.DB }

func NewTripRepo(db *sql.DB) *TripRepo { return &TripRepo{DB: db} }

const tripCols = "t.id, t.vehicle_id, t.driver_id, t.route_id, t.start_time, t.end_time, t.distance_km, t.fuel_used, t.status, t.company_id"

// ListWithDetails is the rich read tier: trips joined with vehicle, route
// and driver display fields, most recent start first. Routes are LEFT
// JOINed because route_id is optional.
func (r *TripRepo) ListWithDetails(ctx context.Context) ([]*Trip, error) {
	const q = `SELECT ` + tripCols + `, v.make, v.model, v.license_plate,
	                  rt.name, rt.distance_km, p.first_name, p.last_name
	           FROM trip_history t
	           JOIN vehicles v ON v.id = t.vehicle_id
	           JOIN profiles p ON p.id = t.driver_id
	           LEFT JOIN routes rt ON rt.id = t.route_id
	           ORDER BY t.start_time DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Trip
	for rows.Next() {
		t := new(Trip)
		v := new(AssignmentVehicle)
		d := new(AssignmentDriver)
		var rtName *string
		var rtDist *float64
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.DriverID, &t.RouteID, &t.StartTime, &t.EndTime,
			&t.DistanceKM, &t.FuelUsed, &t.Status, &t.CompanyID,
			&v.Make, &v.Model, &v.LicensePlate, &rtName, &rtDist, &d.FirstName, &d.LastName); err != nil {
			return nil, err
		}
		t.Vehicle = v
		t.Driver = d
		if rtName != nil {
			t.Route = &TripRoute{Name: *rtName, DistanceKM: rtDist}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// List is the reduced read tier: bare trip rows.
func (r *TripRepo) List(ctx context.Context) ([]*Trip, error) {
	const q = `SELECT ` + tripCols + ` FROM trip_history t ORDER BY t.start_time DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Trip
	for rows.Next() {
		t := new(Trip)
		if err := rows.Scan(&t.ID, &t.VehicleID, &t.DriverID, &t.RouteID, &t.StartTime, &t.EndTime,
			&t.DistanceKM, &t.FuelUsed, &t.Status, &t.CompanyID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a trip and populates its generated id.
func (r *TripRepo) Create(ctx context.Context, t *Trip) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO trip_history (vehicle_id, driver_id, route_id, start_time, end_time, distance_km, fuel_used, status, company_id)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		t.VehicleID, t.DriverID, t.RouteID, t.StartTime, t.EndTime, t.DistanceKM, t.FuelUsed, t.Status, t.CompanyID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// CountByStatus returns the number of trips in the given status; used by
// the dashboard's active-trip counter.
func (r *TripRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM trip_history WHERE status=?", status).Scan(&n)
	return n, err
}

// ListUsage returns the analytics projection of all trips.
func (r *TripRepo) ListUsage(ctx context.Context) ([]TripUsage, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT distance_km, fuel_used FROM trip_history")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TripUsage
	for rows.Next() {
		var u TripUsage
		if err := rows.Scan(&u.DistanceKM, &u.FuelUsed); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
