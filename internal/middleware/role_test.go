package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"
)

func TestRequireRole(t *testing.T) {
    cases := []struct {
        name    string
        allowed []string
        role    any // value stored in context by the auth middleware
        want    int
    }{
        {name: "admin on management route", allowed: []string{RoleAdmin, RoleManager}, role: "admin", want: http.StatusOK},
        {name: "manager on management route", allowed: []string{RoleAdmin, RoleManager}, role: "manager", want: http.StatusOK},
        {name: "driver on management route", allowed: []string{RoleAdmin, RoleManager}, role: "driver", want: http.StatusForbidden},
        {name: "driver on shared route", allowed: []string{RoleAdmin, RoleManager, RoleDriver}, role: "driver", want: http.StatusOK},
        {name: "missing role", allowed: []string{RoleAdmin}, role: nil, want: http.StatusForbidden},
        {name: "non-string role", allowed: []string{RoleAdmin}, role: 7, want: http.StatusForbidden},
        {name: "case mismatch", allowed: []string{RoleAdmin}, role: "Admin", want: http.StatusForbidden},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            e := echo.New()
            req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", nil)
            rec := httptest.NewRecorder()
            c := e.NewContext(req, rec)
            if tc.role != nil {
                c.Set("role", tc.role)
            }

            h := RequireRole(tc.allowed...)(func(c echo.Context) error {
                return c.NoContent(http.StatusOK)
            })
            if err := h(c); err != nil {
                t.Fatalf("handler returned error: %v", err)
            }
            if rec.Code != tc.want {
                t.Fatalf("status = %d, want %d", rec.Code, tc.want)
            }
        })
    }
}
