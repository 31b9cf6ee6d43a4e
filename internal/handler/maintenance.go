package handler // maintenance schedule and log endpoints

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/repository"
)

// ListMaintenanceSchedules handles GET /v1/maintenance/schedules: planned
// work, soonest first, with vehicle display fields when the join tier is
// healthy.
func (h *FleetHandler) ListMaintenanceSchedules(c echo.Context) error {
    items, degraded, err := tieredList(c.Request().Context(), []listTier[*repository.MaintenanceSchedule]{
        {name: "maintenance_schedules+vehicles", fetch: h.Maintenance.ListSchedulesWithVehicles},
        {name: "maintenance_schedules", fetch: h.Maintenance.ListSchedules},
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    markDegraded(c, degraded)
    return c.JSON(http.StatusOK, emptyList(items))
}

type createScheduleReq struct {
    VehicleID     uint64    `json:"vehicle_id"`
    ServiceType   string    `json:"service_type"`
    Description   string    `json:"description"`
    ScheduledDate time.Time `json:"scheduled_date"`
    EstimatedCost *float64  `json:"estimated_cost"`
    Priority      string    `json:"priority"`
    Status        string    `json:"status"`
}

// CreateMaintenanceSchedule handles POST /v1/maintenance/schedules
// (admin/manager).
func (h *FleetHandler) CreateMaintenanceSchedule(c echo.Context) error {
    var req createScheduleReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.ServiceType = strings.TrimSpace(req.ServiceType)
    if req.VehicleID == 0 || req.ServiceType == "" || req.ScheduledDate.IsZero() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id, service_type and scheduled_date are required"})
    }
    if req.Priority == "" {
        req.Priority = "medium"
    }
    if req.Status == "" {
        req.Status = "scheduled"
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    m := &repository.MaintenanceSchedule{
        VehicleID:     req.VehicleID,
        ServiceType:   req.ServiceType,
        Description:   strings.TrimSpace(req.Description),
        ScheduledDate: req.ScheduledDate,
        EstimatedCost: req.EstimatedCost,
        Priority:      req.Priority,
        Status:        req.Status,
        CompanyID:     getCompanyID(c, h.Cfg),
    }
    if err := h.Maintenance.CreateSchedule(ctx, m); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, m)
}

// ListMaintenanceLogs handles GET /v1/maintenance/logs: completed work,
// most recent first.
func (h *FleetHandler) ListMaintenanceLogs(c echo.Context) error {
    items, degraded, err := tieredList(c.Request().Context(), []listTier[*repository.MaintenanceLog]{
        {name: "maintenance_logs+vehicles", fetch: h.Maintenance.ListLogsWithVehicles},
        {name: "maintenance_logs", fetch: h.Maintenance.ListLogs},
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    markDegraded(c, degraded)
    return c.JSON(http.StatusOK, emptyList(items))
}

type createLogReq struct {
    VehicleID       uint64     `json:"vehicle_id"`
    ServiceType     string     `json:"service_type"`
    Description     string     `json:"description"`
    CompletionDate  *time.Time `json:"completion_date"`
    Cost            *float64   `json:"cost"`
    OdometerReading *float64   `json:"odometer_reading"`
}

// CreateMaintenanceLog handles POST /v1/maintenance/logs (admin/manager).
// completion_date defaults to now when omitted.
func (h *FleetHandler) CreateMaintenanceLog(c echo.Context) error {
    var req createLogReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.ServiceType = strings.TrimSpace(req.ServiceType)
    if req.VehicleID == 0 || req.ServiceType == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id and service_type are required"})
    }
    completed := time.Now().UTC()
    if req.CompletionDate != nil {
        completed = req.CompletionDate.UTC()
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    m := &repository.MaintenanceLog{
        VehicleID:       req.VehicleID,
        ServiceType:     req.ServiceType,
        Description:     strings.TrimSpace(req.Description),
        CompletionDate:  completed,
        Cost:            req.Cost,
        OdometerReading: req.OdometerReading,
        CompanyID:       getCompanyID(c, h.Cfg),
    }
    if err := h.Maintenance.CreateLog(ctx, m); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, m)
}
