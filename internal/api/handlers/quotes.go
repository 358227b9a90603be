package handlers

import (
	"encoding/json"
	"errors"
	"freight-tariff-service/internal/api/dto"
	"freight-tariff-service/internal/domain"
	"freight-tariff-service/internal/platform/obs"
	"freight-tariff-service/internal/ports"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	Calculator ports.PriceCalculator
}

// Create prices a shipment and returns the full breakdown.
// A distance beyond the tariff is a blocking 422; no partial result is returned.
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.QuoteRequest

	// Decoded by hand rather than with ShouldBindJSON: trailing data after the
	// object must be rejected, and unknown fields must fail without flipping
	// gin's process-wide EnableDecoderDisallowUnknownFields.
	dec := json.NewDecoder(c.Request.Body)
	defer c.Request.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(c, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		writeError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	breakdown, err := h.calculate(c, toShipmentInput(req))
	if errors.Is(err, domain.ErrDistanceOutOfRange) {
		writeError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		log.Printf("calculate quote failed: req_id=%s err=%v", obs.RequestID(c.Request.Context()), err)
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	items := breakdown.Components()
	res := dto.QuoteResponse{
		QuoteID:    uuid.NewString(),
		Breakdown:  toBreakdownResponse(breakdown),
		Components: make([]dto.ComponentResponse, 0, len(items)),
	}
	for _, it := range items {
		res.Components = append(res.Components, dto.ComponentResponse{
			Component: it.Component,
			Amount:    it.Amount,
		})
	}

	writeJSON(c, http.StatusOK, res)
}

func (h *QuoteHandler) calculate(c *gin.Context, in domain.ShipmentInput) (_ domain.PriceBreakdown, err error) {
	defer obs.Time(c.Request.Context(), "tariff.Calculate")(&err)
	return h.Calculator.Calculate(in)
}

func toShipmentInput(req dto.QuoteRequest) domain.ShipmentInput {
	in := domain.ShipmentInput{
		DistanceKm:    *req.DistanceKm,
		WeightLbs:     req.WeightLbs,
		OutOfAreaType: domain.OutOfAreaFull,
		Accessorials:  req.Accessorials,
		WaitMinutes:   req.WaitMinutes,
		ExtraStops:    req.ExtraStops,
		ApplyFuel:     true,
	}

	if ooa := req.OutOfArea; ooa != nil {
		in.OutOfArea = ooa.Enabled
		in.OutOfAreaKm = ooa.Km
		if ooa.Type != "" {
			in.OutOfAreaType = domain.OutOfAreaType(ooa.Type)
		}
	}

	if fuel := req.FuelSurcharge; fuel != nil {
		if fuel.Apply != nil {
			in.ApplyFuel = *fuel.Apply
		}
		if in.ApplyFuel {
			in.FuelOverridePercent = fuel.OverridePercent
		}
	}

	return in
}
