package handler // route catalogue endpoints

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/repository"
)

// ListRoutes handles GET /v1/routes.
func (h *FleetHandler) ListRoutes(c echo.Context) error {
    items, err := h.Routes.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, emptyList(items))
}

type createRouteReq struct {
    Name                   string   `json:"name"`
    StartLocation          string   `json:"start_location"`
    EndLocation            string   `json:"end_location"`
    DistanceKM             *float64 `json:"distance_km"`
    EstimatedDurationHours *float64 `json:"estimated_duration_hours"`
}

// CreateRoute handles POST /v1/routes (admin/manager).
func (h *FleetHandler) CreateRoute(c echo.Context) error {
    var req createRouteReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.StartLocation = strings.TrimSpace(req.StartLocation)
    req.EndLocation = strings.TrimSpace(req.EndLocation)
    if req.Name == "" || req.StartLocation == "" || req.EndLocation == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, start_location and end_location are required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    rt := &repository.Route{
        Name:                   req.Name,
        StartLocation:          req.StartLocation,
        EndLocation:            req.EndLocation,
        DistanceKM:             req.DistanceKM,
        EstimatedDurationHours: req.EstimatedDurationHours,
        CompanyID:              getCompanyID(c, h.Cfg),
    }
    if err := h.Routes.Create(ctx, rt); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusCreated, rt)
}
