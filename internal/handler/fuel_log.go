package handler // fuel log endpoints

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/repository"
)

// ListFuelLogs handles GET /v1/fuel-logs.
func (h *FleetHandler) ListFuelLogs(c echo.Context) error {
    items, err := h.FuelLogs.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, emptyList(items))
}

type createFuelLogReq struct {
    VehicleID  uint64     `json:"vehicle_id"`
    FuelAmount float64    `json:"fuel_amount"`
    Cost       *float64   `json:"cost"`
    Odometer   *float64   `json:"odometer"`
    FilledAt   *time.Time `json:"filled_at"`
}

// CreateFuelLog handles POST /v1/fuel-logs. filled_at defaults to now.
func (h *FleetHandler) CreateFuelLog(c echo.Context) error {
    var req createFuelLogReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.VehicleID == 0 || req.FuelAmount <= 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id and a positive fuel_amount are required"})
    }
    filled := time.Now().UTC()
    if req.FilledAt != nil {
        filled = req.FilledAt.UTC()
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    f := &repository.FuelLog{
        VehicleID:  req.VehicleID,
        FuelAmount: req.FuelAmount,
        Cost:       req.Cost,
        Odometer:   req.Odometer,
        FilledAt:   filled,
        CompanyID:  getCompanyID(c, h.Cfg),
    }
    if err := h.FuelLogs.Create(ctx, f); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, f)
}
