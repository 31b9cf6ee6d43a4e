package handler // handler defines http handlers

import (
    "context"
    "errors"
    "log"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/config"
)

// getUserID extracts the user_id from echo.Context and converts it to
// uint64. JWT numeric claims decode as float64, so several representations
// are accepted.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// getRole returns the role claim stored by the JWT middleware, or "" when
// absent.
func getRole(c echo.Context) string {
    if r, ok := c.Get("role").(string); ok {
        return r
    }
    return ""
}

// getCompanyID returns the company partition label for rows created by this
// caller: the company_id claim when present, the configured default
// otherwise. The claim always wins over anything in a request body.
func getCompanyID(c echo.Context, cfg config.Config) string {
    if v, ok := c.Get("company_id").(string); ok && v != "" {
        return v
    }
    return cfg.DefaultCompanyID
}

// listTier is one variant in an ordered read strategy: richest query first,
// reduced shapes after. tieredList walks the tiers in order and returns the
// first successful result, reporting degraded=true whenever a tier other
// than the first one served the request. The last tier's error, if any, is
// returned as-is.
type listTier[T any] struct {
    name  string
    fetch func(ctx context.Context) ([]T, error)
}

func tieredList[T any](ctx context.Context, tiers []listTier[T]) (items []T, degraded bool, err error) {
    for i, t := range tiers {
        items, err = t.fetch(ctx)
        if err == nil {
            return items, i > 0, nil
        }
        if i < len(tiers)-1 {
            log.Printf("handler: %s tier failed, trying reduced shape: %v", t.name, err)
        }
    }
    return nil, false, err
}

// markDegraded flags a fallback-tier response so clients can render a
// reduced table instead of treating missing display fields as data loss.
func markDegraded(c echo.Context, degraded bool) {
    if degraded {
        c.Response().Header().Set("X-Degraded", "true")
    }
}

// emptyList materializes a non-nil slice so empty results serialize as []
// rather than null.
func emptyList[T any](items []T) []T {
    if items == nil {
        return []T{}
    }
    return items
}
