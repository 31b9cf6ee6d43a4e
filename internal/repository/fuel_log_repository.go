package repository

import (
	"context"
	"database/sql"
	"time"
)

// FuelLog mirrors the 'fuel_logs' table: one refuelling event per row.
type FuelLog struct {
	ID         uint64    `json:"id"`
	VehicleID  uint64    `json:"vehicle_id"`
	FuelAmount float64   `json:"fuel_amount"`
	Cost       *float64  `json:"cost"`
	Odometer   *float64  `json:"odometer"`
	FilledAt   time.Time `json:"filled_at"`
	CompanyID  string    `json:"company_id"`
}

type FuelLogRepo struct{ DB *sql.DB }

func NewFuelLogRepo(db *sql.DB) *FuelLogRepo { return &FuelLogRepo{DB: db} }

const fuelLogCols = "id, vehicle_id, fuel_amount, cost, odometer, filled_at, company_id"

// List returns all fuel logs, most recent fill first.
func (r *FuelLogRepo) List(ctx context.Context) ([]*FuelLog, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+fuelLogCols+" FROM fuel_logs ORDER BY filled_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*FuelLog
	for rows.Next() {
		f := new(FuelLog)
		if err := rows.Scan(&f.ID, &f.VehicleID, &f.FuelAmount, &f.Cost, &f.Odometer,
			&f.FilledAt, &f.CompanyID); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a fuel log and populates its generated id.
func (r *FuelLogRepo) Create(ctx context.Context, f *FuelLog) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO fuel_logs (vehicle_id, fuel_amount, cost, odometer, filled_at, company_id)
		 VALUES (?,?,?,?,?,?)`,
		f.VehicleID, f.FuelAmount, f.Cost, f.Odometer, f.FilledAt, f.CompanyID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// ListAmounts returns only the fuel_amount column, for the reporting
// aggregator.
func (r *FuelLogRepo) ListAmounts(ctx context.Context) ([]float64, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT fuel_amount FROM fuel_logs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var a float64
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
