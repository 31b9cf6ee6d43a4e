package router

import (
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/config"
    "github.com/fleetflow/fleetflow/internal/handler"
    "github.com/fleetflow/fleetflow/internal/repository"
    "github.com/fleetflow/fleetflow/internal/utils"
)

const routeTestSecret = "route-test-secret"

func assignmentEcho() *echo.Echo {
    e := echo.New()
    h := handler.NewAssignmentHandler(config.Config{},
        repository.NewAssignmentRepo(nil), repository.NewVehicleStatusRepo(nil))
    RegisterAssignments(e, h, routeTestSecret, nil)
    return e
}

func TestVehicleStatusWriteIsPut(t *testing.T) {
    e := assignmentEcho()

    var havePut, havePost bool
    for _, r := range e.Routes() {
        if r.Path != "/v1/vehicle-status" {
            continue
        }
        switch r.Method {
        case http.MethodPut:
            havePut = true
        case http.MethodPost:
            havePost = true
        }
    }
    if !havePut {
        t.Error("PUT /v1/vehicle-status is not registered")
    }
    if havePost {
        t.Error("POST /v1/vehicle-status should not be registered; the write is PUT")
    }
}

// A driver issuing PUT /v1/vehicle-status must reach the handler rather
// than fall through to an overlapping management-only group. With an empty
// body the handler's own validation answers 400; a routing regression
// surfaces as 403 or 405 instead.
func TestDriverPutVehicleStatusReachesHandler(t *testing.T) {
    e := assignmentEcho()

    at, err := utils.NewAccessToken(routeTestSecret, 5, "driver", "FLEET-001", "d@example.com", 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }

    req := httptest.NewRequest(http.MethodPut, "/v1/vehicle-status", strings.NewReader(`{}`))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    req.Header.Set("Authorization", "Bearer "+at.Token)
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)

    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400 from the handler's vehicle_id validation; body: %s",
            rec.Code, rec.Body.String())
    }
    if !strings.Contains(rec.Body.String(), "vehicle_id is required") {
        t.Fatalf("body = %s, want the handler's validation error", rec.Body.String())
    }
}
