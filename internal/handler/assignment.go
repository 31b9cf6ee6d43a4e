package handler // assignment lifecycle endpoints

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/config"
    "github.com/fleetflow/fleetflow/internal/fleet"
    "github.com/fleetflow/fleetflow/internal/queue"
    "github.com/fleetflow/fleetflow/internal/repository"
    queue_publisher "github.com/fleetflow/fleetflow/internal/service"
)

// AssignmentHandler bundles the repositories behind the assignment
// lifecycle and the vehicle-status reconciler. The two share a handler
// because completing an assignment reaches into the status table.
type AssignmentHandler struct {
    Cfg         config.Config
    Assignments *repository.AssignmentRepo
    Statuses    *repository.VehicleStatusRepo
}

func NewAssignmentHandler(cfg config.Config, a *repository.AssignmentRepo, s *repository.VehicleStatusRepo) *AssignmentHandler {
    if a == nil || s == nil {
        panic("nil repository passed to NewAssignmentHandler")
    }
    return &AssignmentHandler{Cfg: cfg, Assignments: a, Statuses: s}
}

// ListAssignments handles GET /v1/assignments. Drivers see only their own
// assignments; admins and managers see every assignment for the company.
// Both go through the tiered read: joined display fields first, bare rows
// when the join tier fails.
func (h *AssignmentHandler) ListAssignments(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var scope uint64 // 0 = unfiltered
    switch role := getRole(c); {
    case role == "driver":
        scope = uid
    case fleet.IsManagement(role):
    default:
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }

    items, degraded, err := tieredList(c.Request().Context(), []listTier[*repository.Assignment]{
        {name: "assignments+vehicles+profiles", fetch: func(ctx context.Context) ([]*repository.Assignment, error) {
            return h.Assignments.ListWithDetails(ctx, scope)
        }},
        {name: "assignments", fetch: func(ctx context.Context) ([]*repository.Assignment, error) {
            return h.Assignments.List(ctx, scope)
        }},
    })
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    markDegraded(c, degraded)
    return c.JSON(http.StatusOK, emptyList(items))
}

type createAssignmentReq struct {
    VehicleID uint64 `json:"vehicle_id"`
    DriverID  uint64 `json:"driver_id"`
}

// CreateAssignment handles POST /v1/assignments (admin/manager, enforced
// by route middleware). After the insert succeeds the vehicle's status row
// is seeded so the driver can always toggle online; a seed failure is a
// warning, never a rollback — the assignment is valid without it.
func (h *AssignmentHandler) CreateAssignment(c echo.Context) error {
    var req createAssignmentReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.VehicleID == 0 || req.DriverID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id and driver_id are required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    a := &repository.Assignment{
        VehicleID: req.VehicleID,
        DriverID:  req.DriverID,
        CompanyID: getCompanyID(c, h.Cfg),
    }
    if err := h.Assignments.Create(ctx, a); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }

    if err := h.Statuses.Seed(ctx, a.VehicleID, a.CompanyID); err != nil {
        log.Printf("assignments: seeding vehicle_status for vehicle %d failed (non-critical): %v", a.VehicleID, err)
    }

    return c.JSON(http.StatusCreated, a)
}

// CompleteAssignment handles PATCH /v1/assignments/:id. The transition is
// ACTIVE -> COMPLETED, one-way: the deactivation write is the operation,
// and forcing the vehicle offline afterwards is a best-effort side effect
// that never un-completes the assignment when it fails.
func (h *AssignmentHandler) CompleteAssignment(c echo.Context) error {
    uid, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    a, err := h.Assignments.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrAssignmentNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "assignment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }

    if err := fleet.AuthorizeCompletion(getRole(c), uid, a); err != nil {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }
    if err := fleet.CheckCompletable(a); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "assignment is already completed"})
    }

    updated, err := h.Assignments.Complete(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrConflict) {
            // Lost a race with a concurrent completion.
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "assignment is already completed"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }

    if err := h.Statuses.SetOffline(ctx, a.VehicleID); err != nil {
        log.Printf("assignments: setting vehicle %d offline failed (non-critical): %v", a.VehicleID, err)
    }

    ev := queue.AssignmentCompletedEvent{
        AssignmentID: updated.ID,
        VehicleID:    updated.VehicleID,
        DriverID:     updated.DriverID,
        CompanyID:    updated.CompanyID,
        CompletedBy:  uid,
        AssignedAt:   updated.AssignedDate.Format(time.RFC3339),
    }
    if updated.UnassignedDate != nil {
        ev.CompletedAt = updated.UnassignedDate.Format(time.RFC3339)
    }
    _ = queue_publisher.PublishAssignmentCompleted(ctx, ev) // errors logged inside

    return c.JSON(http.StatusOK, updated)
}
