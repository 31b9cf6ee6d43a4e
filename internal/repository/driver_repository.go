// Driver model and repository. A driver row extends an existing profile
// that carries the driver role; there is at most one driver row per
// profile, enforced by a unique key on user_id.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Driver mirrors the 'drivers' table.
type Driver struct {
	ID               uint64     `json:"id"`
	UserID           uint64     `json:"user_id"`
	LicenseNumber    string     `json:"license_number"`
	LicenseExpiry    *time.Time `json:"license_expiry"`
	Phone            string     `json:"phone"`
	EmploymentStatus string     `json:"employment_status"`
	ExperienceYears  int        `json:"experience_years"`
	CompanyID        string     `json:"company_id"`
	CreatedAt        time.Time  `json:"created_at"`

	// Profile display fields, populated only by the joined read tier.
	Profile *DriverProfile `json:"profiles,omitempty"`
}

// DriverProfile is the display subset of a driver's profile row.
type DriverProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

var (
	ErrDriverExists   = errors.New("driver already exists for this user")
	ErrDriverNotFound = errors.New("driver not found")
)

type DriverRepo struct{ DB *sql.DB }

func NewDriverRepo(db *sql.DB) *DriverRepo { return &DriverRepo{DB: db} }

const driverCols = "d.id, d.user_id, d.license_number, d.license_expiry, d.phone, d.employment_status, d.experience_years, d.company_id, d.created_at"

// ListWithProfiles is the rich read tier: drivers joined with their profile
// display fields, newest first.
func (r *DriverRepo) ListWithProfiles(ctx context.Context) ([]*Driver, error) {
	const q = `SELECT ` + driverCols + `, p.first_name, p.last_name, p.email
	           FROM drivers d
	           JOIN profiles p ON p.id = d.user_id
	           ORDER BY d.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Driver
	for rows.Next() {
		d := new(Driver)
		p := new(DriverProfile)
		if err := rows.Scan(&d.ID, &d.UserID, &d.LicenseNumber, &d.LicenseExpiry, &d.Phone,
			&d.EmploymentStatus, &d.ExperienceYears, &d.CompanyID, &d.CreatedAt,
			&p.FirstName, &p.LastName, &p.Email); err != nil {
			return nil, err
		}
		d.Profile = p
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// List is the reduced read tier: bare driver rows without profile fields.
func (r *DriverRepo) List(ctx context.Context) ([]*Driver, error) {
	const q = `SELECT ` + driverCols + ` FROM drivers d ORDER BY d.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Driver
	for rows.Next() {
		d := new(Driver)
		if err := rows.Scan(&d.ID, &d.UserID, &d.LicenseNumber, &d.LicenseExpiry, &d.Phone,
			&d.EmploymentStatus, &d.ExperienceYears, &d.CompanyID, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a driver row for an existing profile. ErrDriverExists when
// the profile already has one.
func (r *DriverRepo) Create(ctx context.Context, d *Driver) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO drivers (user_id, license_number, license_expiry, phone, employment_status, experience_years, company_id)
		 VALUES (?,?,?,?,?,?,?)`,
		d.UserID, d.LicenseNumber, d.LicenseExpiry, d.Phone, d.EmploymentStatus, d.ExperienceYears, d.CompanyID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDriverExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)

	const q = `SELECT ` + driverCols + ` FROM drivers d WHERE d.id=?`
	return r.DB.QueryRowContext(ctx, q, d.ID).Scan(&d.ID, &d.UserID, &d.LicenseNumber,
		&d.LicenseExpiry, &d.Phone, &d.EmploymentStatus, &d.ExperienceYears, &d.CompanyID, &d.CreatedAt)
}

// CountAll returns the number of drivers; used by the dashboard stats.
func (r *DriverRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM drivers").Scan(&n)
	return n, err
}
