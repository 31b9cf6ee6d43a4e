package handler // dashboard and analytics endpoints

import (
    "context"
    "database/sql"
    "errors"
    "log"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/fleet"
)

// dashboardStats is the payload behind GET /v1/dashboard/stats.
type dashboardStats struct {
    UserName      string `json:"user_name"`
    UserEmail     string `json:"user_email"`
    TotalVehicles int    `json:"total_vehicles"`
    TotalDrivers  int    `json:"total_drivers"`
    ActiveTrips   int    `json:"active_trips"`
}

// DashboardStats handles GET /v1/dashboard/stats: the greeting block and
// headline counters. The counters are independent reads; one failing
// leaves the others at zero rather than failing the whole response, since
// the dashboard renders what it gets.
func (h *FleetHandler) DashboardStats(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    var stats dashboardStats

    claimEmail, _ := c.Get("email").(string)
    name, email, err := h.resolveGreeting(ctx, uid, claimEmail)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    stats.UserName = name
    stats.UserEmail = email

    if n, err := h.Vehicles.CountAll(ctx); err == nil {
        stats.TotalVehicles = n
    } else {
        log.Printf("dashboard: counting vehicles failed: %v", err)
    }
    if n, err := h.Drivers.CountAll(ctx); err == nil {
        stats.TotalDrivers = n
    } else {
        log.Printf("dashboard: counting drivers failed: %v", err)
    }
    if n, err := h.Trips.CountByStatus(ctx, "in_progress"); err == nil {
        stats.ActiveTrips = n
    } else {
        log.Printf("dashboard: counting active trips failed: %v", err)
    }

    return c.JSON(http.StatusOK, stats)
}

// resolveGreeting picks the name and email shown in the dashboard
// greeting. The id lookup is authoritative; when the token's subject no
// longer has a row the email claim is retried as a profile lookup (ids
// can change across a re-import while emails survive), and only when
// that also misses does the raw claim stand in for both fields.
func (h *FleetHandler) resolveGreeting(ctx context.Context, uid uint64, claimEmail string) (name, email string, err error) {
    p, err := h.Profiles.GetByID(ctx, uid)
    if errors.Is(err, sql.ErrNoRows) && claimEmail != "" {
        p, err = h.Profiles.GetByEmail(ctx, claimEmail)
    }
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return claimEmail, claimEmail, nil
        }
        return "", "", err
    }
    name = strings.TrimSpace(p.FirstName + " " + p.LastName)
    if name == "" {
        name = p.Email
    }
    return name, p.Email, nil
}

// ReportSummary handles GET /v1/reports/summary: the fleet-wide analytics
// fold over trips, maintenance logs and fuel logs. Ratio fields serialize
// as null when their denominator is zero; the client renders those as
// "N/A".
func (h *FleetHandler) ReportSummary(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    trips, err := h.Trips.ListUsage(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    costs, err := h.Maintenance.ListLogCosts(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    fuel, err := h.FuelLogs.ListAmounts(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }

    return c.JSON(http.StatusOK, fleet.Summarize(trips, costs, fuel))
}
