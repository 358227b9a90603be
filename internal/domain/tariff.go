package domain

import (
	"math"
	"slices"
)

// Out-of-area billing variants.
type OutOfAreaType string

const (
	OutOfAreaFull          OutOfAreaType = "FULL"
	OutOfAreaBackhaulEmpty OutOfAreaType = "BACKHAUL EMPTY"
	OutOfAreaBackhaulFull  OutOfAreaType = "BACKHAUL FULL"
)

// Accessorial service names as they appear on the tariff sheet.
const (
	AccessorialTwoManService  = "2 Man Service"
	AccessorialTailgate       = "Tailgate (over 200 lbs)"
	AccessorialInsideDelivery = "Inside Delivery"
	AccessorialWhiteGlove     = "White Glove (residential)"
	AccessorialSkidHandbomb   = "Skid Handbomb (lumper)"
	AccessorialDirectDrive    = "Direct Drive (flat)"
)

// A distance band. Zones are contiguous; only the upper bound is used for lookup.
type Zone struct {
	Number        int
	MinKm         float64
	MaxKm         float64
	MinimumCharge float64
}

// One row of the rate table. MaxLbs is inclusive; the last bracket is unbounded.
// Rates holds the per-pound rate for zones 1..N in order.
type WeightBracket struct {
	Label  string
	MaxLbs float64
	Rates  []float64
}

type OutOfAreaRate struct {
	Type  OutOfAreaType
	PerKm float64
}

// A flat-fee service. Fuelable accessorials are also part of the fuel surcharge base.
type Accessorial struct {
	Name     string
	Charge   float64
	Fuelable bool
}

// Tariff is the read-only reference data a shipment is priced against.
// All accessors return copies; a Tariff is safe for concurrent use.
type Tariff struct {
	name               string
	zones              []Zone
	brackets           []WeightBracket
	outOfArea          []OutOfAreaRate
	accessorials       []Accessorial
	waitRatePerHour    float64
	defaultFuelPercent float64
}

// NovaXpressTariff returns the standard CEVA / NovaXpress LTL tariff.
func NovaXpressTariff() *Tariff {
	return &Tariff{
		name: "CEVA / NovaXpress",
		zones: []Zone{
			{Number: 1, MinKm: 0, MaxKm: 50, MinimumCharge: 30.00},
			{Number: 2, MinKm: 51, MaxKm: 150, MinimumCharge: 45.00},
			{Number: 3, MinKm: 151, MaxKm: 300, MinimumCharge: 60.00},
			{Number: 4, MinKm: 301, MaxKm: 400, MinimumCharge: 70.00},
			{Number: 5, MinKm: 401, MaxKm: 500, MinimumCharge: 80.00},
		},
		brackets: []WeightBracket{
			{Label: "0-500", MaxLbs: 500, Rates: []float64{0.064, 0.120, 0.167, 0.224, 0.261}},
			{Label: "501-1000", MaxLbs: 1000, Rates: []float64{0.054, 0.083, 0.111, 0.158, 0.186}},
			{Label: "1001-2000", MaxLbs: 2000, Rates: []float64{0.045, 0.054, 0.064, 0.101, 0.130}},
			{Label: "2001-4000", MaxLbs: 4000, Rates: []float64{0.036, 0.045, 0.054, 0.064, 0.073}},
			{Label: "4001+", MaxLbs: math.Inf(1), Rates: []float64{0.022, 0.031, 0.040, 0.051, 0.059}},
		},
		outOfArea: []OutOfAreaRate{
			{Type: OutOfAreaFull, PerKm: 1.50},
			{Type: OutOfAreaBackhaulEmpty, PerKm: 0.80},
			{Type: OutOfAreaBackhaulFull, PerKm: 1.00},
		},
		accessorials: []Accessorial{
			{Name: AccessorialTwoManService, Charge: 20.0},
			{Name: AccessorialTailgate, Charge: 10.0},
			{Name: AccessorialInsideDelivery, Charge: 20.0},
			{Name: AccessorialWhiteGlove, Charge: 20.0},
			{Name: AccessorialSkidHandbomb, Charge: 40.0},
			{Name: AccessorialDirectDrive, Charge: 40.0, Fuelable: true},
		},
		waitRatePerHour:    45.0,
		defaultFuelPercent: 0.15,
	}
}

// WithDefaultFuelPercent returns a copy of the tariff using pct (e.g. 12 for 12%)
// as the default fuel surcharge. Negative values are floored at zero.
func (t *Tariff) WithDefaultFuelPercent(pct float64) *Tariff {
	cp := *t
	cp.zones = slices.Clone(t.zones)
	cp.brackets = t.Brackets()
	cp.outOfArea = slices.Clone(t.outOfArea)
	cp.accessorials = slices.Clone(t.accessorials)
	cp.defaultFuelPercent = math.Max(0, pct/100)
	return &cp
}

func (t *Tariff) Name() string { return t.name }

// ZoneFor resolves a distance to its zone. Distances beyond the last zone
// return ErrDistanceOutOfRange; negative distances resolve to the first zone.
func (t *Tariff) ZoneFor(km float64) (Zone, error) {
	for _, z := range t.zones {
		if km <= z.MaxKm {
			return z, nil
		}
	}
	return Zone{}, ErrDistanceOutOfRange
}

// BracketFor returns the first bracket whose upper bound is >= lbs.
// The last bracket is unbounded, so a bracket is always found.
func (t *Tariff) BracketFor(lbs float64) WeightBracket {
	for _, b := range t.brackets {
		if lbs <= b.MaxLbs {
			return b
		}
	}
	return t.brackets[len(t.brackets)-1]
}

// RateFor reads the per-pound rate cell for a bracket and zone number.
func (b WeightBracket) RateFor(zone int) float64 {
	return b.Rates[zone-1]
}

func (t *Tariff) OutOfAreaRate(typ OutOfAreaType) (float64, bool) {
	for _, r := range t.outOfArea {
		if r.Type == typ {
			return r.PerKm, true
		}
	}
	return 0, false
}

func (t *Tariff) Accessorial(name string) (Accessorial, bool) {
	for _, a := range t.accessorials {
		if a.Name == name {
			return a, true
		}
	}
	return Accessorial{}, false
}

func (t *Tariff) Zones() []Zone { return slices.Clone(t.zones) }

func (t *Tariff) Brackets() []WeightBracket {
	out := make([]WeightBracket, len(t.brackets))
	for i, b := range t.brackets {
		b.Rates = slices.Clone(b.Rates)
		out[i] = b
	}
	return out
}

func (t *Tariff) OutOfAreaRates() []OutOfAreaRate { return slices.Clone(t.outOfArea) }

func (t *Tariff) Accessorials() []Accessorial { return slices.Clone(t.accessorials) }

func (t *Tariff) WaitRatePerHour() float64 { return t.waitRatePerHour }

// DefaultFuelPercent is a decimal fraction (0.15 for 15%).
func (t *Tariff) DefaultFuelPercent() float64 { return t.defaultFuelPercent }

// MaxDistanceKm is the upper bound of the last zone.
func (t *Tariff) MaxDistanceKm() float64 { return t.zones[len(t.zones)-1].MaxKm }
