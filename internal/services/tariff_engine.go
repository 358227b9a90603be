package services

import (
	"freight-tariff-service/internal/domain"
	"math"
	"strconv"
)

const (
	freeWaitMinutes    = 30
	waitBillingMinutes = 15
)

// TariffEngine prices shipments against a fixed tariff.
//
// Calculate is a pure function of its input and the tariff: it keeps no state
// between calls and never modifies the tariff, so one engine can serve any
// number of concurrent callers.
type TariffEngine struct {
	tariff *domain.Tariff
}

func NewTariffEngine(tariff *domain.Tariff) *TariffEngine {
	return &TariffEngine{tariff: tariff}
}

func (e *TariffEngine) Tariff() *domain.Tariff {
	return e.tariff
}

// Calculate prices a shipment.
//
// The only error is domain.ErrDistanceOutOfRange, returned before any
// zone-dependent value is computed. Other out-of-range inputs are clamped.
func (e *TariffEngine) Calculate(in domain.ShipmentInput) (domain.PriceBreakdown, error) {
	zone, err := e.tariff.ZoneFor(in.DistanceKm)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	bracket := e.tariff.BracketFor(in.WeightLbs)
	ratePerLb := bracket.RateFor(zone.Number)

	// The zone minimum is a floor on the weight-based charge.
	base := math.Max(zone.MinimumCharge, ratePerLb*in.WeightLbs)

	ooa := 0.0
	if in.OutOfArea && in.OutOfAreaKm > 0 {
		perKm, _ := e.tariff.OutOfAreaRate(in.OutOfAreaType)
		ooa = perKm * in.OutOfAreaKm
	}

	// acc accumulates flat accessorials and, below, the wait charge.
	// Fuelable accessorials stay in acc and are also added to the fuel base.
	acc := 0.0
	fuelableAcc := 0.0
	for _, a := range e.tariff.Accessorials() {
		if !in.Selected(a.Name) {
			continue
		}
		acc += a.Charge
		if a.Fuelable {
			fuelableAcc += a.Charge
		}
	}

	wait := e.waitCharge(in.WaitMinutes)
	acc += wait

	extra := base * float64(max(0, in.ExtraStops))

	fuelable := base + ooa + fuelableAcc + extra
	fuelPct := e.fuelPercent(in.ApplyFuel, in.FuelOverridePercent)
	fuel := fuelable * fuelPct

	total := base + ooa + acc + extra + fuel

	return domain.PriceBreakdown{
		Zone:             zone.Number,
		WeightBracket:    bracket.Label,
		RatePerLb:        ratePerLb,
		MinimumCharge:    roundCents(zone.MinimumCharge),
		BaseCharge:       roundCents(base),
		OutOfAreaCharge:  roundCents(ooa),
		Accessorials:     roundCents(acc - wait),
		WaitTimeCharge:   roundCents(wait),
		ExtraStopsAmount: roundCents(extra),
		FuelableSubtotal: roundCents(fuelable),
		FuelPercent:      fuelPct,
		FuelAmount:       roundCents(fuel),
		GrandTotal:       roundCents(total),
	}, nil
}

// First 30 minutes are free; after that each started quarter hour is billed.
func (e *TariffEngine) waitCharge(minutes float64) float64 {
	if minutes <= freeWaitMinutes {
		return 0
	}
	increments := math.Ceil((minutes - freeWaitMinutes) / waitBillingMinutes)
	return (e.tariff.WaitRatePerHour() / 4) * increments
}

// fuelPercent returns the surcharge as a decimal fraction.
// An override is a percentage and is floored at zero but not capped.
func (e *TariffEngine) fuelPercent(apply bool, override *float64) float64 {
	if !apply {
		return 0
	}
	if override == nil {
		return e.tariff.DefaultFuelPercent()
	}
	return math.Max(0, *override/100)
}

// roundCents rounds the exact binary value of v to two decimals, with exact
// ties going to even. Converting through the shortest decimal form first would
// round 45.134999... (0.045 * 1003) up to 45.14.
func roundCents(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}
