package router

import (
    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/handler"
    "github.com/fleetflow/fleetflow/internal/middleware"
)

// RegisterAssignments registers the assignment lifecycle and vehicle status
// endpoints under /v1. The status list is the endpoint dashboards poll
// every ten seconds, so the response cache middleware is applied there
// when one is provided (its TTL stays below the polling interval).
// Completion is open to every role; the handler decides whether a driver
// may complete the specific assignment.
func RegisterAssignments(e *echo.Echo, h *handler.AssignmentHandler, jwtSecret string, cache echo.MiddlewareFunc) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager, middleware.RoleDriver),
    )
    g.GET("/assignments", h.ListAssignments)
    g.PATCH("/assignments/:id", h.CompleteAssignment)

    if cache != nil {
        g.GET("/vehicle-status", h.ListVehicleStatus, cache)
    } else {
        g.GET("/vehicle-status", h.ListVehicleStatus)
    }
    g.PUT("/vehicle-status", h.UpdateVehicleStatus)

    mgmt := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager),
    )
    mgmt.POST("/assignments", h.CreateAssignment)
}
