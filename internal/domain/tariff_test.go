package domain

import (
	"errors"
	"testing"
)

func TestTariffZoneFor(t *testing.T) {
	tariff := NovaXpressTariff()

	cases := []struct {
		km   float64
		want int
	}{
		{km: -5, want: 1},
		{km: 0, want: 1},
		{km: 50, want: 1},
		{km: 50.5, want: 2},
		{km: 51, want: 2},
		{km: 150, want: 2},
		{km: 151, want: 3},
		{km: 300, want: 3},
		{km: 301, want: 4},
		{km: 400, want: 4},
		{km: 401, want: 5},
		{km: 500, want: 5},
	}

	for _, tc := range cases {
		z, err := tariff.ZoneFor(tc.km)
		if err != nil {
			t.Fatalf("ZoneFor(%v): unexpected error: %v", tc.km, err)
		}
		if z.Number != tc.want {
			t.Errorf("ZoneFor(%v) = zone %d, want %d", tc.km, z.Number, tc.want)
		}
	}
}

func TestTariffZoneForBeyondLastZone(t *testing.T) {
	tariff := NovaXpressTariff()

	for _, km := range []float64{500.01, 501, 10000} {
		_, err := tariff.ZoneFor(km)
		if !errors.Is(err, ErrDistanceOutOfRange) {
			t.Errorf("ZoneFor(%v) err = %v, want ErrDistanceOutOfRange", km, err)
		}
	}
}

func TestTariffBracketForUsesLowerBracketOnBoundary(t *testing.T) {
	tariff := NovaXpressTariff()

	cases := []struct {
		lbs  float64
		want string
	}{
		{lbs: 0, want: "0-500"},
		{lbs: 1, want: "0-500"},
		{lbs: 500, want: "0-500"},
		{lbs: 500.5, want: "501-1000"},
		{lbs: 1000, want: "501-1000"},
		{lbs: 2000, want: "1001-2000"},
		{lbs: 4000, want: "2001-4000"},
		{lbs: 4000.1, want: "4001+"},
		{lbs: 1e9, want: "4001+"},
	}

	for _, tc := range cases {
		if got := tariff.BracketFor(tc.lbs).Label; got != tc.want {
			t.Errorf("BracketFor(%v) = %q, want %q", tc.lbs, got, tc.want)
		}
	}
}

func TestTariffAccessorsReturnCopies(t *testing.T) {
	tariff := NovaXpressTariff()

	brackets := tariff.Brackets()
	brackets[0].Rates[0] = 99
	zones := tariff.Zones()
	zones[0].MinimumCharge = 0
	accs := tariff.Accessorials()
	accs[0].Charge = 0

	if got := tariff.BracketFor(1).RateFor(1); got != 0.064 {
		t.Errorf("rate mutated through Brackets(): got %v", got)
	}
	z, _ := tariff.ZoneFor(10)
	if z.MinimumCharge != 30 {
		t.Errorf("minimum charge mutated through Zones(): got %v", z.MinimumCharge)
	}
	a, _ := tariff.Accessorial(AccessorialTwoManService)
	if a.Charge != 20 {
		t.Errorf("accessorial mutated through Accessorials(): got %v", a.Charge)
	}
}

func TestTariffWithDefaultFuelPercent(t *testing.T) {
	base := NovaXpressTariff()
	adjusted := base.WithDefaultFuelPercent(12)

	if got := adjusted.DefaultFuelPercent(); got != 0.12 {
		t.Errorf("adjusted default fuel = %v, want 0.12", got)
	}
	if got := base.DefaultFuelPercent(); got != 0.15 {
		t.Errorf("original default fuel changed to %v", got)
	}
	if got := base.WithDefaultFuelPercent(-3).DefaultFuelPercent(); got != 0 {
		t.Errorf("negative default fuel = %v, want 0", got)
	}
}

func TestTariffLookups(t *testing.T) {
	tariff := NovaXpressTariff()

	if r, ok := tariff.OutOfAreaRate(OutOfAreaBackhaulFull); !ok || r != 1.00 {
		t.Errorf("OutOfAreaRate(BACKHAUL FULL) = %v, %v", r, ok)
	}
	if _, ok := tariff.OutOfAreaRate("SIDEWAYS"); ok {
		t.Error("OutOfAreaRate accepted an unknown type")
	}

	dd, ok := tariff.Accessorial(AccessorialDirectDrive)
	if !ok || !dd.Fuelable || dd.Charge != 40 {
		t.Errorf("Direct Drive = %+v, %v", dd, ok)
	}
	for _, a := range tariff.Accessorials() {
		if a.Fuelable && a.Name != AccessorialDirectDrive {
			t.Errorf("%q should not be fuelable", a.Name)
		}
	}

	if got := tariff.MaxDistanceKm(); got != 500 {
		t.Errorf("MaxDistanceKm = %v, want 500", got)
	}
}

func TestPriceBreakdownComponents(t *testing.T) {
	b := PriceBreakdown{
		BaseCharge:       204.80,
		OutOfAreaCharge:  90,
		Accessorials:     30,
		WaitTimeCharge:   22.50,
		ExtraStopsAmount: 204.80,
		FuelAmount:       74.94,
		GrandTotal:       627.04,
	}

	items := b.Components()
	if len(items) != 6 {
		t.Fatalf("expected 6 components, got %d", len(items))
	}
	if items[0].Component != "Base LTL" || items[5].Component != "Fuel amount" {
		t.Fatalf("unexpected component order: %+v", items)
	}

	sum := 0.0
	for _, it := range items {
		sum += it.Amount
	}
	if diff := sum - b.GrandTotal; diff > 0.005 || diff < -0.005 {
		t.Errorf("components sum to %.2f, want %.2f", sum, b.GrandTotal)
	}
}
