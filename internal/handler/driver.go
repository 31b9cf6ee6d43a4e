package handler // driver roster endpoints

import (
    "context"
    "database/sql"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/repository"
)

// ListDrivers handles GET /v1/drivers. The joined tier enriches each row
// with the profile's name and email; when that tier fails the bare rows
// are returned and the response is marked degraded.
func (h *FleetHandler) ListDrivers(c echo.Context) error {
    items, degraded, err := tieredList(c.Request().Context(), []listTier[*repository.Driver]{
        {name: "drivers+profiles", fetch: h.Drivers.ListWithProfiles},
        {name: "drivers", fetch: h.Drivers.List},
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    markDegraded(c, degraded)
    return c.JSON(http.StatusOK, emptyList(items))
}

type createDriverReq struct {
    UserID           uint64     `json:"user_id"`
    LicenseNumber    string     `json:"license_number"`
    LicenseExpiry    *time.Time `json:"license_expiry"`
    Phone            string     `json:"phone"`
    EmploymentStatus string     `json:"employment_status"`
    ExperienceYears  int        `json:"experience_years"`
}

// CreateDriver handles POST /v1/drivers (admin/manager). The referenced
// profile must already exist and carry the driver role; a profile can back
// at most one driver row.
func (h *FleetHandler) CreateDriver(c echo.Context) error {
    var req createDriverReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.UserID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id is required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    p, err := h.Profiles.GetByID(ctx, req.UserID)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    if p.Role != "driver" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "profile does not have the driver role"})
    }

    status := strings.TrimSpace(req.EmploymentStatus)
    if status == "" {
        status = "active"
    }
    d := &repository.Driver{
        UserID:           req.UserID,
        LicenseNumber:    strings.TrimSpace(req.LicenseNumber),
        LicenseExpiry:    req.LicenseExpiry,
        Phone:            strings.TrimSpace(req.Phone),
        EmploymentStatus: status,
        ExperienceYears:  req.ExperienceYears,
        CompanyID:        getCompanyID(c, h.Cfg),
    }
    if err := h.Drivers.Create(ctx, d); err != nil {
        if errors.Is(err, repository.ErrDriverExists) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "driver already exists for this user"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, d)
}
