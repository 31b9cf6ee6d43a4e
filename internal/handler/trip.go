package handler // trip history endpoints

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/repository"
)

// ListTrips handles GET /v1/trips: trip history with vehicle, route and
// driver display fields, newest start first.
func (h *FleetHandler) ListTrips(c echo.Context) error {
    items, degraded, err := tieredList(c.Request().Context(), []listTier[*repository.Trip]{
        {name: "trip_history+vehicles+routes+profiles", fetch: h.Trips.ListWithDetails},
        {name: "trip_history", fetch: h.Trips.List},
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    markDegraded(c, degraded)
    return c.JSON(http.StatusOK, emptyList(items))
}

type createTripReq struct {
    VehicleID  uint64     `json:"vehicle_id"`
    RouteID    *uint64    `json:"route_id"`
    StartTime  *time.Time `json:"start_time"`
    EndTime    *time.Time `json:"end_time"`
    DistanceKM *float64   `json:"distance_km"`
    FuelUsed   *float64   `json:"fuel_used"`
    Status     string     `json:"status"`
}

// CreateTrip handles POST /v1/trips. Trips are always attributed to the
// caller; a driver_id in the body is ignored. start_time defaults to now,
// status to in_progress.
func (h *FleetHandler) CreateTrip(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var req createTripReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.VehicleID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id is required"})
    }
    start := time.Now().UTC()
    if req.StartTime != nil {
        start = req.StartTime.UTC()
    }
    if req.Status == "" {
        req.Status = "in_progress"
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    t := &repository.Trip{
        VehicleID:  req.VehicleID,
        DriverID:   uid,
        RouteID:    req.RouteID,
        StartTime:  start,
        EndTime:    req.EndTime,
        DistanceKM: req.DistanceKM,
        FuelUsed:   req.FuelUsed,
        Status:     req.Status,
        CompanyID:  getCompanyID(c, h.Cfg),
    }
    if err := h.Trips.Create(ctx, t); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, t)
}
