package fleet

import "github.com/fleetflow/fleetflow/internal/repository"

// Summary is the analytics fold over trips, maintenance logs and fuel
// logs. Derived ratios are pointers: nil means "not applicable" (a zero
// denominator) and is serialized as JSON null, never as a division by
// zero or an Inf/NaN.
type Summary struct {
	TotalTrips           int      `json:"total_trips"`
	TotalDistanceKM      float64  `json:"total_distance_km"`
	TotalFuelUsed        float64  `json:"total_fuel_used"`
	TotalMaintenanceCost float64  `json:"total_maintenance_cost"`
	FuelEfficiency       *float64 `json:"fuel_efficiency_km_per_l"`
	AvgTripDistanceKM    *float64 `json:"avg_trip_distance_km"`
}

// Summarize recomputes the fleet summary from scratch on every call; no
// state is kept between requests. Null numeric fields contribute zero to
// the sums, but a trip with a null distance still counts toward
// TotalTrips, so the average-distance denominator reflects every trip
// taken, not just the measured ones.
func Summarize(trips []repository.TripUsage, maintenanceCosts []*float64, fuelAmounts []float64) Summary {
	s := Summary{TotalTrips: len(trips)}

	for _, t := range trips {
		if t.DistanceKM != nil {
			s.TotalDistanceKM += *t.DistanceKM
		}
		if t.FuelUsed != nil {
			s.TotalFuelUsed += *t.FuelUsed
		}
	}
	for _, c := range maintenanceCosts {
		if c != nil {
			s.TotalMaintenanceCost += *c
		}
	}
	for _, a := range fuelAmounts {
		s.TotalFuelUsed += a
	}

	if s.TotalFuelUsed > 0 {
		eff := s.TotalDistanceKM / s.TotalFuelUsed
		s.FuelEfficiency = &eff
	}
	if s.TotalTrips > 0 {
		avg := s.TotalDistanceKM / float64(s.TotalTrips)
		s.AvgTripDistanceKM = &avg
	}
	return s
}
