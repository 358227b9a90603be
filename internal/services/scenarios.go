package services

import (
	"freight-tariff-service/internal/domain"
	"freight-tariff-service/internal/ports"
)

// A named reference shipment used to sanity-check the tariff.
type Scenario struct {
	Name  string
	Input domain.ShipmentInput
}

type ScenarioResult struct {
	Name      string
	Breakdown domain.PriceBreakdown
	Err       error
}

// ExampleScenarios returns the reference shipments rate clerks use to verify
// a tariff after a change. The list is rebuilt on every call.
func ExampleScenarios() []Scenario {
	twelve := 12.0
	zero := 0.0

	tiny := domain.ShipmentInput{
		DistanceKm:    50,
		WeightLbs:     20,
		OutOfAreaType: domain.OutOfAreaFull,
		ApplyFuel:     true,
	}
	tinyNoFuel := tiny
	tinyNoFuel.ApplyFuel = false
	tinyOverride12 := tiny
	tinyOverride12.FuelOverridePercent = &twelve
	tinyOverride0 := tiny
	tinyOverride0.FuelOverridePercent = &zero

	return []Scenario{
		{Name: "Tiny Z1 (fuel default)", Input: tiny},
		{Name: "Tiny Z1 (fuel off)", Input: tinyNoFuel},
		{
			Name: "1,600 lbs @120 km",
			Input: domain.ShipmentInput{
				DistanceKm:    120,
				WeightLbs:     1600,
				OutOfAreaType: domain.OutOfAreaFull,
				ApplyFuel:     true,
			},
		},
		{
			Name: "3,200 lbs @350 km + OOA FULL 60 + tailgate+white+wait50 + 1 extra",
			Input: domain.ShipmentInput{
				DistanceKm:    350,
				WeightLbs:     3200,
				OutOfArea:     true,
				OutOfAreaType: domain.OutOfAreaFull,
				OutOfAreaKm:   60,
				Accessorials:  []string{domain.AccessorialTailgate, domain.AccessorialWhiteGlove},
				WaitMinutes:   50,
				ExtraStops:    1,
				ApplyFuel:     true,
			},
		},
		{
			Name: "5,000 lbs @410 km + direct + 2-man + handbomb",
			Input: domain.ShipmentInput{
				DistanceKm:    410,
				WeightLbs:     5000,
				OutOfAreaType: domain.OutOfAreaFull,
				Accessorials: []string{
					domain.AccessorialDirectDrive,
					domain.AccessorialTwoManService,
					domain.AccessorialSkidHandbomb,
				},
				ApplyFuel: true,
			},
		},
		{
			Name: "800 lbs @480 km + OOA Backhaul Empty 120",
			Input: domain.ShipmentInput{
				DistanceKm:    480,
				WeightLbs:     800,
				OutOfArea:     true,
				OutOfAreaType: domain.OutOfAreaBackhaulEmpty,
				OutOfAreaKm:   120,
				ApplyFuel:     true,
			},
		},
		{Name: "Fuel override 12%", Input: tinyOverride12},
		{Name: "Fuel override 0%", Input: tinyOverride0},
	}
}

// RunScenarios prices every example scenario with the given calculator.
// A scenario that fails keeps its error; the rest still run.
func RunScenarios(calc ports.PriceCalculator) []ScenarioResult {
	scenarios := ExampleScenarios()
	out := make([]ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		b, err := calc.Calculate(s.Input)
		out = append(out, ScenarioResult{Name: s.Name, Breakdown: b, Err: err})
	}
	return out
}
