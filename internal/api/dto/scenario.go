package dto

// Breakdown is nil when the scenario could not be priced; Error says why.
type ScenarioResponse struct {
	Scenario  string             `json:"scenario"`
	Breakdown *BreakdownResponse `json:"breakdown,omitempty"`
	Error     string             `json:"error,omitempty"`
}

type ListScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}
