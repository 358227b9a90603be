package domain

// Parameters of a single shipment to be priced.
// FuelOverridePercent is a percentage (12 means 12%); nil uses the tariff default.
type ShipmentInput struct {
	DistanceKm          float64
	WeightLbs           float64
	OutOfArea           bool
	OutOfAreaType       OutOfAreaType
	OutOfAreaKm         float64
	Accessorials        []string
	WaitMinutes         float64
	ExtraStops          int
	ApplyFuel           bool
	FuelOverridePercent *float64
}

// Selected reports whether the named accessorial was requested.
func (in ShipmentInput) Selected(name string) bool {
	for _, a := range in.Accessorials {
		if a == name {
			return true
		}
	}
	return false
}

// Priced result of a shipment.
// Currency fields are rounded to cents; RatePerLb and FuelPercent are exact.
type PriceBreakdown struct {
	Zone             int
	WeightBracket    string
	RatePerLb        float64
	MinimumCharge    float64
	BaseCharge       float64
	OutOfAreaCharge  float64
	Accessorials     float64
	WaitTimeCharge   float64
	ExtraStopsAmount float64
	FuelableSubtotal float64
	FuelPercent      float64
	FuelAmount       float64
	GrandTotal       float64
}

// A named amount in the tabular restatement of a breakdown.
type LineItem struct {
	Component string
	Amount    float64
}

// Components lists the charge lines that make up the grand total, in display order.
func (b PriceBreakdown) Components() []LineItem {
	return []LineItem{
		{Component: "Base LTL", Amount: b.BaseCharge},
		{Component: "Out-of-Area charge", Amount: b.OutOfAreaCharge},
		{Component: "Accessorials (non-fuel)", Amount: b.Accessorials},
		{Component: "Wait Time charge", Amount: b.WaitTimeCharge},
		{Component: "Extra Stops amount", Amount: b.ExtraStopsAmount},
		{Component: "Fuel amount", Amount: b.FuelAmount},
	}
}
