package dto

type OutOfAreaRequest struct {
	Enabled bool    `json:"enabled"`
	Type    string  `json:"type" binding:"omitempty,oneof=FULL 'BACKHAUL EMPTY' 'BACKHAUL FULL'"`
	Km      float64 `json:"km" binding:"gte=0"`
}

// Omitting the block applies the default fuel surcharge, as the quote form does.
type FuelSurchargeRequest struct {
	Apply           *bool    `json:"apply"`
	OverridePercent *float64 `json:"override_percent" binding:"omitempty,gte=0"`
}

type QuoteRequest struct {
	DistanceKm    *float64              `json:"distance_km" binding:"required,gte=0"`
	WeightLbs     float64               `json:"weight_lbs" binding:"required,gt=0"`
	OutOfArea     *OutOfAreaRequest     `json:"out_of_area"`
	Accessorials  []string              `json:"accessorials" binding:"omitempty,dive,required"`
	WaitMinutes   float64               `json:"wait_minutes" binding:"gte=0"`
	ExtraStops    int                   `json:"extra_stops" binding:"gte=0"`
	FuelSurcharge *FuelSurchargeRequest `json:"fuel_surcharge"`
}

type BreakdownResponse struct {
	Zone             int     `json:"zone"`
	WeightBracket    string  `json:"weight_bracket"`
	RatePerLb        float64 `json:"rate_per_lb"`
	MinimumCharge    float64 `json:"minimum_charge"`
	BaseCharge       float64 `json:"base_ltl"`
	OutOfAreaCharge  float64 `json:"ooa_charge"`
	Accessorials     float64 `json:"accessorials_non_fuel"`
	WaitTimeCharge   float64 `json:"wait_time_charge"`
	ExtraStopsAmount float64 `json:"extra_stops_amount"`
	FuelableSubtotal float64 `json:"fuelable_subtotal"`
	FuelPercent      float64 `json:"fuel_percent"`
	FuelAmount       float64 `json:"fuel_amount"`
	GrandTotal       float64 `json:"grand_total"`
}

type ComponentResponse struct {
	Component string  `json:"component"`
	Amount    float64 `json:"amount"`
}

type QuoteResponse struct {
	QuoteID    string              `json:"quote_id"`
	Breakdown  BreakdownResponse   `json:"breakdown"`
	Components []ComponentResponse `json:"components"`
}
