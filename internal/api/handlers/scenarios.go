package handlers

import (
	"freight-tariff-service/internal/api/dto"
	"freight-tariff-service/internal/ports"
	"freight-tariff-service/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler prices the built-in reference shipments.
type ScenarioHandler struct {
	Calculator ports.PriceCalculator
}

func (h *ScenarioHandler) List(c *gin.Context) {
	results := services.RunScenarios(h.Calculator)

	res := dto.ListScenariosResponse{
		Scenarios: make([]dto.ScenarioResponse, 0, len(results)),
	}
	for _, r := range results {
		row := dto.ScenarioResponse{Scenario: r.Name}
		if r.Err != nil {
			row.Error = r.Err.Error()
		} else {
			b := toBreakdownResponse(r.Breakdown)
			row.Breakdown = &b
		}
		res.Scenarios = append(res.Scenarios, row)
	}

	writeJSON(c, http.StatusOK, res)
}
