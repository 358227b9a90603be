package handlers

import (
	"errors"
	"fmt"
	"freight-tariff-service/internal/api/dto"
	"freight-tariff-service/internal/domain"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, map[string]string{"error": msg})
}

// validationMessage turns validator errors into a single client-facing sentence.
// Field names are the JSON names registered in api.NewRouter.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe)
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", field, fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be > %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// fieldPath drops the top-level struct name from the validator namespace,
// e.g. "QuoteRequest.out_of_area.type" becomes "out_of_area.type".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func toBreakdownResponse(b domain.PriceBreakdown) dto.BreakdownResponse {
	return dto.BreakdownResponse{
		Zone:             b.Zone,
		WeightBracket:    b.WeightBracket,
		RatePerLb:        b.RatePerLb,
		MinimumCharge:    b.MinimumCharge,
		BaseCharge:       b.BaseCharge,
		OutOfAreaCharge:  b.OutOfAreaCharge,
		Accessorials:     b.Accessorials,
		WaitTimeCharge:   b.WaitTimeCharge,
		ExtraStopsAmount: b.ExtraStopsAmount,
		FuelableSubtotal: b.FuelableSubtotal,
		FuelPercent:      b.FuelPercent,
		FuelAmount:       b.FuelAmount,
		GrandTotal:       b.GrandTotal,
	}
}
