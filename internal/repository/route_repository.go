package repository

import (
	"context"
	"database/sql"
	"time"
)

// Route mirrors the 'routes' table: a named, reusable start/end pair with
// a nominal distance that trips may reference.
type Route struct {
	ID                     uint64    `json:"id"`
	Name                   string    `json:"name"`
	StartLocation          string    `json:"start_location"`
	EndLocation            string    `json:"end_location"`
	DistanceKM             *float64  `json:"distance_km"`
	EstimatedDurationHours *float64  `json:"estimated_duration_hours"`
	CompanyID              string    `json:"company_id"`
	CreatedAt              time.Time `json:"created_at"`
}

type RouteRepo struct{ DB *sql.DB }

func NewRouteRepo(db *sql.DB) *RouteRepo { return &RouteRepo{DB: db} }

const routeCols = "id, name, start_location, end_location, distance_km, estimated_duration_hours, company_id, created_at"

// List returns all routes, newest first.
func (r *RouteRepo) List(ctx context.Context) ([]*Route, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+routeCols+" FROM routes ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Route
	for rows.Next() {
		rt := new(Route)
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.StartLocation, &rt.EndLocation,
			&rt.DistanceKM, &rt.EstimatedDurationHours, &rt.CompanyID, &rt.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a route and populates its generated id and created_at.
func (r *RouteRepo) Create(ctx context.Context, rt *Route) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO routes (name, start_location, end_location, distance_km, estimated_duration_hours, company_id)
		 VALUES (?,?,?,?,?,?)`,
		rt.Name, rt.StartLocation, rt.EndLocation, rt.DistanceKM, rt.EstimatedDurationHours, rt.CompanyID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rt.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT "+routeCols+" FROM routes WHERE id=?", rt.ID).
		Scan(&rt.ID, &rt.Name, &rt.StartLocation, &rt.EndLocation,
			&rt.DistanceKM, &rt.EstimatedDurationHours, &rt.CompanyID, &rt.CreatedAt)
}
