package fleet

import (
    "testing"

    "github.com/fleetflow/fleetflow/internal/repository"
)

func TestSummarizeEmptyFleet(t *testing.T) {
    s := Summarize(nil, nil, nil)
    if s.TotalTrips != 0 || s.TotalDistanceKM != 0 || s.TotalFuelUsed != 0 || s.TotalMaintenanceCost != 0 {
        t.Fatalf("empty fleet produced non-zero totals: %+v", s)
    }
    if s.FuelEfficiency != nil {
        t.Errorf("FuelEfficiency = %v, want nil for zero fuel", *s.FuelEfficiency)
    }
    if s.AvgTripDistanceKM != nil {
        t.Errorf("AvgTripDistanceKM = %v, want nil for zero trips", *s.AvgTripDistanceKM)
    }
}

func TestSummarizeNullFieldsCountButAddZero(t *testing.T) {
    trips := []repository.TripUsage{
        {DistanceKM: fptr(120), FuelUsed: fptr(10)},
        {DistanceKM: nil, FuelUsed: nil}, // recorded trip, nothing measured
        {DistanceKM: fptr(80), FuelUsed: nil},
    }
    costs := []*float64{fptr(150), nil, fptr(50)}
    fuel := []float64{30, 10}

    s := Summarize(trips, costs, fuel)

    if s.TotalTrips != 3 {
        t.Errorf("TotalTrips = %d, want 3 (null-distance trips still count)", s.TotalTrips)
    }
    if s.TotalDistanceKM != 200 {
        t.Errorf("TotalDistanceKM = %v, want 200", s.TotalDistanceKM)
    }
    // 10 from trip fuel_used plus 40 from fuel logs.
    if s.TotalFuelUsed != 50 {
        t.Errorf("TotalFuelUsed = %v, want 50", s.TotalFuelUsed)
    }
    if s.TotalMaintenanceCost != 200 {
        t.Errorf("TotalMaintenanceCost = %v, want 200", s.TotalMaintenanceCost)
    }
    if s.FuelEfficiency == nil || *s.FuelEfficiency != 4 {
        t.Errorf("FuelEfficiency = %v, want 4", s.FuelEfficiency)
    }
    if s.AvgTripDistanceKM == nil {
        t.Fatal("AvgTripDistanceKM = nil, want a value")
    }
    if want := 200.0 / 3.0; *s.AvgTripDistanceKM != want {
        t.Errorf("AvgTripDistanceKM = %v, want %v", *s.AvgTripDistanceKM, want)
    }
}

func TestSummarizeZeroDenominators(t *testing.T) {
    // Trips exist but no fuel was ever recorded: the efficiency ratio is
    // not applicable, while the average distance still is.
    trips := []repository.TripUsage{{DistanceKM: fptr(50)}}
    s := Summarize(trips, nil, nil)
    if s.FuelEfficiency != nil {
        t.Errorf("FuelEfficiency = %v, want nil", *s.FuelEfficiency)
    }
    if s.AvgTripDistanceKM == nil || *s.AvgTripDistanceKM != 50 {
        t.Errorf("AvgTripDistanceKM = %v, want 50", s.AvgTripDistanceKM)
    }
}
