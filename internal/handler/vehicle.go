package handler // vehicle inventory endpoints

import (
    "database/sql"
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/repository"
)

// ListVehicles handles GET /v1/vehicles. Any authenticated role may read
// the inventory; newest vehicles first.
func (h *FleetHandler) ListVehicles(c echo.Context) error {
    items, err := h.Vehicles.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, emptyList(items))
}

type createVehicleReq struct {
    VIN          string  `json:"vin"`
    Make         string  `json:"make"`
    Model        string  `json:"model"`
    Year         int     `json:"year"`
    LicensePlate string  `json:"license_plate"`
    Status       string  `json:"status"`
    Odometer     float64 `json:"odometer"`
    FuelCapacity float64 `json:"fuel_capacity"`
}

// CreateVehicle handles POST /v1/vehicles (admin/manager, enforced by
// route middleware). The company partition always comes from the caller's
// claims, never from the body.
func (h *FleetHandler) CreateVehicle(c echo.Context) error {
    var req createVehicleReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Make = strings.TrimSpace(req.Make)
    req.Model = strings.TrimSpace(req.Model)
    req.LicensePlate = strings.TrimSpace(req.LicensePlate)
    if req.Make == "" || req.Model == "" || req.LicensePlate == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "make, model and license_plate are required"})
    }
    status := strings.TrimSpace(req.Status)
    if status == "" {
        status = "available"
    }

    v := &repository.Vehicle{
        VIN:          strings.TrimSpace(req.VIN),
        Make:         req.Make,
        Model:        req.Model,
        Year:         req.Year,
        LicensePlate: req.LicensePlate,
        Status:       status,
        Odometer:     req.Odometer,
        FuelCapacity: req.FuelCapacity,
        CompanyID:    getCompanyID(c, h.Cfg),
    }
    if err := h.Vehicles.Create(c.Request().Context(), v); err != nil {
        if strings.Contains(err.Error(), "1062") {
            return c.JSON(http.StatusConflict, echo.Map{"error": "vehicle already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, v)
}

// GetVehicle handles GET /v1/vehicles/:id.
func (h *FleetHandler) GetVehicle(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    v, err := h.Vehicles.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrVehicleNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, v)
}

// UpdateVehicle handles PUT /v1/vehicles/:id (admin/manager). Only the
// fields present in the body are touched.
func (h *FleetHandler) UpdateVehicle(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var upd repository.VehicleUpdate
    if err := c.Bind(&upd); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    v, err := h.Vehicles.Update(c.Request().Context(), id, upd)
    if err != nil {
        if errors.Is(err, repository.ErrVehicleNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, v)
}

// DeleteVehicle handles DELETE /v1/vehicles/:id (admin only, enforced by
// route middleware). The normal lifecycle retires vehicles instead; this
// is the explicit escape hatch.
func (h *FleetHandler) DeleteVehicle(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Vehicles.Delete(c.Request().Context(), id); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "vehicle not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}
