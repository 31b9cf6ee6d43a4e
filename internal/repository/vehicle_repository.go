// Vehicle model and repository. Vehicles are the inventory side of the
// fleet: rows are created and mutated by admins/managers and referenced by
// assignments, statuses, maintenance records and trips. Deletion is an
// explicit admin-only operation; the normal lifecycle parks a vehicle in
// the 'retired' status instead.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Vehicle mirrors the 'vehicles' table.
type Vehicle struct {
	ID           uint64    `json:"id"`
	VIN          string    `json:"vin"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"license_plate"`
	Status       string    `json:"status"` // available | in_use | maintenance | retired
	Odometer     float64   `json:"odometer"`
	FuelCapacity float64   `json:"fuel_capacity"`
	CompanyID    string    `json:"company_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VehicleUpdate carries the mutable vehicle fields for partial updates.
// Nil fields are left untouched.
type VehicleUpdate struct {
	VIN          *string  `json:"vin"`
	Make         *string  `json:"make"`
	Model        *string  `json:"model"`
	Year         *int     `json:"year"`
	LicensePlate *string  `json:"license_plate"`
	Status       *string  `json:"status"`
	Odometer     *float64 `json:"odometer"`
	FuelCapacity *float64 `json:"fuel_capacity"`
}

var ErrVehicleNotFound = errors.New("vehicle not found")

type VehicleRepo struct{ DB *sql.DB }

func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{DB: db} }

const vehicleCols = "id, vin, make, model, year, license_plate, status, odometer, fuel_capacity, company_id, created_at, updated_at"

func scanVehicle(scan func(dest ...any) error) (*Vehicle, error) {
	v := new(Vehicle)
	err := scan(&v.ID, &v.VIN, &v.Make, &v.Model, &v.Year, &v.LicensePlate,
		&v.Status, &v.Odometer, &v.FuelCapacity, &v.CompanyID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// List returns all vehicles, newest first.
func (r *VehicleRepo) List(ctx context.Context) ([]*Vehicle, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+vehicleCols+" FROM vehicles ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a vehicle and re-reads the row so callers receive the
// DB-populated defaults (status, timestamps).
func (r *VehicleRepo) Create(ctx context.Context, v *Vehicle) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO vehicles (vin, make, model, year, license_plate, status, odometer, fuel_capacity, company_id)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		v.VIN, v.Make, v.Model, v.Year, v.LicensePlate, v.Status, v.Odometer, v.FuelCapacity, v.CompanyID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	got, err := r.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	*v = *got
	return nil
}

// GetByID fetches a vehicle by id; ErrVehicleNotFound when absent.
func (r *VehicleRepo) GetByID(ctx context.Context, id uint64) (*Vehicle, error) {
	v, err := scanVehicle(r.DB.QueryRowContext(ctx,
		"SELECT "+vehicleCols+" FROM vehicles WHERE id=? LIMIT 1", id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return v, nil
}

// Update applies the non-nil fields of upd to the vehicle and returns the
// updated row. ErrVehicleNotFound when the vehicle does not exist.
func (r *VehicleRepo) Update(ctx context.Context, id uint64, upd VehicleUpdate) (*Vehicle, error) {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)
	add := func(col string, val any) {
		sets = append(sets, col+"=?")
		args = append(args, val)
	}
	if upd.VIN != nil {
		add("vin", *upd.VIN)
	}
	if upd.Make != nil {
		add("make", *upd.Make)
	}
	if upd.Model != nil {
		add("model", *upd.Model)
	}
	if upd.Year != nil {
		add("year", *upd.Year)
	}
	if upd.LicensePlate != nil {
		add("license_plate", *upd.LicensePlate)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Odometer != nil {
		add("odometer", *upd.Odometer)
	}
	if upd.FuelCapacity != nil {
		add("fuel_capacity", *upd.FuelCapacity)
	}
	if len(sets) > 0 {
		args = append(args, id)
		q := "UPDATE vehicles SET " + strings.Join(sets, ", ") + ", updated_at=CURRENT_TIMESTAMP WHERE id=?"
		if _, err := r.DB.ExecContext(ctx, q, args...); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a vehicle row. sql.ErrNoRows when nothing was deleted.
func (r *VehicleRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM vehicles WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountAll returns the number of vehicles; used by the dashboard stats.
func (r *VehicleRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM vehicles").Scan(&n)
	return n, err
}
