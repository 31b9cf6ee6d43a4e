package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/fleetflow/fleetflow/internal/config"
    "github.com/fleetflow/fleetflow/internal/database"
    "github.com/fleetflow/fleetflow/internal/handler"
    "github.com/fleetflow/fleetflow/internal/middleware"
    "github.com/fleetflow/fleetflow/internal/queue"
    "github.com/fleetflow/fleetflow/internal/repository"
    "github.com/fleetflow/fleetflow/internal/router"
)

func main() {
    // Load .env when present; real deployments set variables directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    profiles := repository.NewProfileRepo(db)
    tokens := repository.NewTokenRepo(db)
    vehicles := repository.NewVehicleRepo(db)
    drivers := repository.NewDriverRepo(db)
    assignments := repository.NewAssignmentRepo(db)
    statuses := repository.NewVehicleStatusRepo(db)
    maintenance := repository.NewMaintenanceRepo(db)
    routes := repository.NewRouteRepo(db)
    trips := repository.NewTripRepo(db)
    fuelLogs := repository.NewFuelLogRepo(db)

    authH := handler.NewAuthHandler(cfg, profiles, tokens)
    fleetH := handler.NewFleetHandler(cfg, vehicles, drivers, profiles, maintenance, routes, trips, fuelLogs)
    assignH := handler.NewAssignmentHandler(cfg, assignments, statuses)

    e := echo.New()
    e.HideBanner = true

    // Redis backs both the token-bucket rate limiter and the short-TTL
    // response cache for the polled status endpoint. Both middlewares
    // fail open when Redis is unavailable.
    rdb := config.NewRedisClient()
    var cacheMW echo.MiddlewareFunc
    if rdb != nil {
        if rlCfg := config.LoadRateLimitConfig(); rlCfg.Enabled {
            e.Use(middleware.NewTokenBucket(rlCfg, rdb))
        }
        if cCfg := config.LoadCacheConfig(); cCfg.Enabled {
            cacheMW = middleware.NewRedisCache(cCfg, rdb)
        }
    }

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterFleet(e, fleetH, cfg.JWTSecret)
    router.RegisterAssignments(e, assignH, cfg.JWTSecret, cacheMW)

    // Background consumer for assignment.completed events; runs its own
    // reconnect loop and never brings the API down.
    go func() {
        if err := queue.StartAssignmentConsumer(); err != nil {
            log.Printf("assignment-consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
