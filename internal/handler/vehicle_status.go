package handler // live vehicle status endpoints

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/fleet"
    "github.com/fleetflow/fleetflow/internal/repository"
)

// ListVehicleStatus handles GET /v1/vehicle-status. This is the endpoint
// the dashboard polls every ten seconds, so it sits behind the response
// cache. Drivers are scoped to the vehicles of their active assignments;
// admins and managers see the whole board. The optional ?vehicle_id=
// query narrows the read to a single vehicle.
func (h *AssignmentHandler) ListVehicleStatus(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var f repository.StatusFilter
    if raw := c.QueryParam("vehicle_id"); raw != "" {
        id, err := strconv.ParseUint(raw, 10, 64)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vehicle_id"})
        }
        f.VehicleID = id
    }

    ctx := c.Request().Context()
    if getRole(c) == "driver" {
        ids, err := h.Assignments.ActiveVehicleIDs(ctx, uid)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
        }
        if len(ids) == 0 {
            // No active assignments means no visible vehicles; don't hit
            // the status table with an empty IN clause.
            return c.JSON(http.StatusOK, []*repository.VehicleStatus{})
        }
        f.VehicleIDs = ids
    }

    items, degraded, err := tieredList(ctx, []listTier[*repository.VehicleStatus]{
        {name: "vehicle_status+vehicles", fetch: func(ctx context.Context) ([]*repository.VehicleStatus, error) {
            return h.Statuses.ListWithVehicles(ctx, f)
        }},
        {name: "vehicle_status", fetch: func(ctx context.Context) ([]*repository.VehicleStatus, error) {
            return h.Statuses.List(ctx, f)
        }},
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    markDegraded(c, degraded)
    return c.JSON(http.StatusOK, emptyList(items))
}

type updateStatusReq struct {
    VehicleID        uint64   `json:"vehicle_id"`
    CurrentLatitude  *float64 `json:"current_latitude"`
    CurrentLongitude *float64 `json:"current_longitude"`
    IsOnline         *bool    `json:"is_online"`
}

// UpdateVehicleStatus handles PUT /v1/vehicle-status: the driver's
// position/online heartbeat. Omitted fields keep their stored values; the
// write is read-merge-save against the seeded row, so a 404 here means
// the vehicle was never assigned (the row is seeded at assignment time),
// not that the vehicle has no GPS fix.
func (h *AssignmentHandler) UpdateVehicleStatus(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var req updateStatusReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.VehicleID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id is required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // Drivers may only report for a vehicle they are actively assigned to.
    // Management roles can correct any vehicle's state.
    if getRole(c) == "driver" {
        ok, err := h.Assignments.HasActive(ctx, uid, req.VehicleID)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
        }
        if !ok {
            return c.JSON(http.StatusForbidden, echo.Map{"error": "not assigned to this vehicle"})
        }
    }

    cur, err := h.Statuses.GetByVehicle(ctx, req.VehicleID)
    if err != nil {
        if errors.Is(err, repository.ErrStatusNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{
                "error": "no status row for this vehicle; create an assignment first",
            })
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }

    merged := fleet.MergeStatus(*cur, fleet.StatusPatch{
        CurrentLatitude:  req.CurrentLatitude,
        CurrentLongitude: req.CurrentLongitude,
        IsOnline:         req.IsOnline,
    }, time.Now())

    if err := h.Statuses.Save(ctx, &merged); err != nil {
        if errors.Is(err, repository.ErrStatusNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle status not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, &merged)
}
