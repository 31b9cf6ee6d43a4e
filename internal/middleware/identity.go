package middleware

// identity.go holds helpers shared across middleware files for naming the
// caller in rate-limit and cache keys. When no token is present or no
// relevant claim exists, "guest" is returned so unauthenticated traffic
// shares a single bucket.

import (
    "fmt"

    "github.com/labstack/echo/v4"
)

// userKey extracts a stable identifier for the authenticated user from the
// values JWTAuth placed in context. JWT numeric claims decode as float64,
// so both string and numeric subjects are handled.
func userKey(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case string:
        if v != "" {
            return v
        }
    case float64:
        return fmt.Sprintf("%.0f", v)
    case uint64:
        return fmt.Sprintf("%d", v)
    case int64:
        return fmt.Sprintf("%d", v)
    }
    return "guest"
}
