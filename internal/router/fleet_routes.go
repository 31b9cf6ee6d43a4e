package router

import (
    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/handler"
    "github.com/fleetflow/fleetflow/internal/middleware"
)

// RegisterFleet registers the inventory-side endpoints under /v1: vehicles,
// drivers, maintenance, routes, trips, fuel logs, dashboard and reports.
// Reads are open to every authenticated role; mutations require admin or
// manager, except trips and fuel logs which drivers record themselves and
// vehicle deletion which is admin-only.
func RegisterFleet(e *echo.Echo, h *handler.FleetHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager, middleware.RoleDriver),
    )
    g.GET("/vehicles", h.ListVehicles)
    g.GET("/vehicles/:id", h.GetVehicle)
    g.GET("/drivers", h.ListDrivers)
    g.GET("/maintenance/schedules", h.ListMaintenanceSchedules)
    g.GET("/maintenance/logs", h.ListMaintenanceLogs)
    g.GET("/routes", h.ListRoutes)
    g.GET("/trips", h.ListTrips)
    g.POST("/trips", h.CreateTrip)
    g.GET("/fuel-logs", h.ListFuelLogs)
    g.POST("/fuel-logs", h.CreateFuelLog)
    g.GET("/dashboard/stats", h.DashboardStats)
    g.GET("/reports/summary", h.ReportSummary)

    mgmt := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager),
    )
    mgmt.POST("/vehicles", h.CreateVehicle)
    mgmt.PUT("/vehicles/:id", h.UpdateVehicle)
    mgmt.POST("/drivers", h.CreateDriver)
    mgmt.POST("/maintenance/schedules", h.CreateMaintenanceSchedule)
    mgmt.POST("/maintenance/logs", h.CreateMaintenanceLog)
    mgmt.POST("/routes", h.CreateRoute)

    admin := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(middleware.RoleAdmin),
    )
    admin.DELETE("/vehicles/:id", h.DeleteVehicle)
}
