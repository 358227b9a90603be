package dto

type ZoneResponse struct {
	Zone          int     `json:"zone"`
	MinKm         float64 `json:"min_km"`
	MaxKm         float64 `json:"max_km"`
	MinimumCharge float64 `json:"minimum_charge"`
}

// MaxLbs is nil for the unbounded top bracket.
type BracketResponse struct {
	Label  string    `json:"label"`
	MaxLbs *float64  `json:"max_lbs"`
	Rates  []float64 `json:"rates"`
}

type OutOfAreaRateResponse struct {
	Type  string  `json:"type"`
	PerKm float64 `json:"per_km"`
}

type AccessorialResponse struct {
	Name     string  `json:"name"`
	Charge   float64 `json:"charge"`
	Fuelable bool    `json:"fuelable"`
}

type TariffResponse struct {
	Name               string                  `json:"name"`
	Zones              []ZoneResponse          `json:"zones"`
	WeightBrackets     []BracketResponse       `json:"weight_brackets"`
	OutOfAreaRates     []OutOfAreaRateResponse `json:"out_of_area_rates"`
	Accessorials       []AccessorialResponse   `json:"accessorials"`
	WaitRatePerHour    float64                 `json:"wait_rate_per_hour"`
	DefaultFuelPercent float64                 `json:"default_fuel_percent"`
}
