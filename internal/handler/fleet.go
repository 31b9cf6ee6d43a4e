package handler

import (
    "context"

    "github.com/fleetflow/fleetflow/internal/config"
    "github.com/fleetflow/fleetflow/internal/repository"
)

// ProfileDirectory is the slice of the profile repository the fleet
// endpoints need: resolving the identity behind a driver record or a
// dashboard greeting. *repository.ProfileRepo satisfies it.
type ProfileDirectory interface {
    GetByID(ctx context.Context, id uint64) (repository.Profile, error)
    GetByEmail(ctx context.Context, email string) (repository.Profile, error)
}

// FleetHandler bundles the repositories behind the inventory-side
// endpoints: vehicles, drivers, maintenance, routes, trips and fuel logs.
type FleetHandler struct {
    Cfg         config.Config
    Vehicles    *repository.VehicleRepo
    Drivers     *repository.DriverRepo
    Profiles    ProfileDirectory
    Maintenance *repository.MaintenanceRepo
    Routes      *repository.RouteRepo
    Trips       *repository.TripRepo
    FuelLogs    *repository.FuelLogRepo
}

// NewFleetHandler constructs a FleetHandler and panics if any dependency is
// nil; wiring bugs should fail at startup, not on the first request.
func NewFleetHandler(cfg config.Config, vehicles *repository.VehicleRepo, drivers *repository.DriverRepo,
    profiles ProfileDirectory, maintenance *repository.MaintenanceRepo, routes *repository.RouteRepo,
    trips *repository.TripRepo, fuelLogs *repository.FuelLogRepo) *FleetHandler {
    if vehicles == nil || drivers == nil || profiles == nil || maintenance == nil ||
        routes == nil || trips == nil || fuelLogs == nil {
        panic("nil repository passed to NewFleetHandler")
    }
    return &FleetHandler{
        Cfg:         cfg,
        Vehicles:    vehicles,
        Drivers:     drivers,
        Profiles:    profiles,
        Maintenance: maintenance,
        Routes:      routes,
        Trips:       trips,
        FuelLogs:    fuelLogs,
    }
}
