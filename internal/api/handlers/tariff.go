package handlers

import (
	"freight-tariff-service/internal/api/dto"
	"freight-tariff-service/internal/ports"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TariffHandler exposes the reference tables that quote forms are built from.
type TariffHandler struct {
	Calculator ports.PriceCalculator
}

func (h *TariffHandler) Get(c *gin.Context) {
	t := h.Calculator.Tariff()

	res := dto.TariffResponse{
		Name:               t.Name(),
		WaitRatePerHour:    t.WaitRatePerHour(),
		DefaultFuelPercent: t.DefaultFuelPercent(),
	}

	for _, z := range t.Zones() {
		res.Zones = append(res.Zones, dto.ZoneResponse{
			Zone:          z.Number,
			MinKm:         z.MinKm,
			MaxKm:         z.MaxKm,
			MinimumCharge: z.MinimumCharge,
		})
	}

	for _, b := range t.Brackets() {
		br := dto.BracketResponse{Label: b.Label, Rates: b.Rates}
		// JSON has no infinity; the open-ended bracket is reported without a bound.
		if !math.IsInf(b.MaxLbs, 1) {
			maxLbs := b.MaxLbs
			br.MaxLbs = &maxLbs
		}
		res.WeightBrackets = append(res.WeightBrackets, br)
	}

	for _, r := range t.OutOfAreaRates() {
		res.OutOfAreaRates = append(res.OutOfAreaRates, dto.OutOfAreaRateResponse{
			Type:  string(r.Type),
			PerKm: r.PerKm,
		})
	}

	for _, a := range t.Accessorials() {
		res.Accessorials = append(res.Accessorials, dto.AccessorialResponse{
			Name:     a.Name,
			Charge:   a.Charge,
			Fuelable: a.Fuelable,
		})
	}

	writeJSON(c, http.StatusOK, res)
}
