package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/utils"
)

const testSecret = "unit-test-secret"

func doRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/vehicles", nil)
    if authHeader != "" {
        req.Header.Set("Authorization", authHeader)
    }
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)

    handler := mw(func(c echo.Context) error {
        return c.NoContent(http.StatusOK)
    })
    if err := handler(c); err != nil {
        t.Fatalf("handler returned error: %v", err)
    }
    return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
    at, err := utils.NewAccessToken(testSecret, 42, "manager", "FLEET-001", "m@example.com", 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }

    rec, c := doRequest(t, JWTAuth(testSecret), "Bearer "+at.Token)
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
    }
    if role, _ := c.Get("role").(string); role != "manager" {
        t.Errorf("role claim = %q, want manager", role)
    }
    if company, _ := c.Get("company_id").(string); company != "FLEET-001" {
        t.Errorf("company_id claim = %q, want FLEET-001", company)
    }
    if uid, ok := c.Get("user_id").(float64); !ok || uint64(uid) != 42 {
        t.Errorf("user_id claim = %v, want 42", c.Get("user_id"))
    }
}

func TestJWTAuthRejections(t *testing.T) {
    foreign, err := utils.NewAccessToken("some-other-secret", 1, "admin", "FLEET-001", "a@example.com", 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }

    cases := []struct {
        name   string
        header string
    }{
        {name: "no header", header: ""},
        {name: "not bearer", header: "Basic abc"},
        {name: "garbage token", header: "Bearer not.a.jwt"},
        {name: "wrong secret", header: "Bearer " + foreign.Token},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            rec, _ := doRequest(t, JWTAuth(testSecret), tc.header)
            if rec.Code != http.StatusUnauthorized {
                t.Fatalf("status = %d, want 401", rec.Code)
            }
        })
    }
}
