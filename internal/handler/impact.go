package handler

import (
	"net/http"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/Dan9191/runway-service/internal/runway"
)

type hiringImpactRequest struct {
	FinancialSnapshotID int64 `json:"financial_snapshot_id" validate:"required,gt=0"`
	HireScenarioID      int64 `json:"hire_scenario_id" validate:"required,gt=0"`
}

// Money and months are rendered with two fixed decimals.
type hiringImpactResponse struct {
	CurrentRunwayMonths string                    `json:"current_runway_months"`
	NewRunwayMonths     string                    `json:"new_runway_months"`
	RunwayDeltaMonths   string                    `json:"runway_delta_months"`
	CurrentMonthlyBurn  string                    `json:"current_monthly_burn"`
	NewMonthlyBurn      string                    `json:"new_monthly_burn"`
	BurnDelta           string                    `json:"burn_delta"`
	RiskLevel           runway.RiskLevel          `json:"risk_level"`
	FinancialSnapshot   *models.FinancialSnapshot `json:"financial_snapshot"`
	HireScenario        *models.HireScenario      `json:"hire_scenario"`
}

// CalculateHiringImpact evaluates a stored hire scenario against a stored snapshot
func (h *Handler) CalculateHiringImpact(w http.ResponseWriter, r *http.Request) {
	var req hiringImpactRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.svc.CalculateHiringImpact(r.Context(), userID(r), req.FinancialSnapshotID, req.HireScenarioID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	impact := report.Impact
	writeJSON(w, http.StatusOK, hiringImpactResponse{
		CurrentRunwayMonths: impact.CurrentRunwayMonths.StringFixed(2),
		NewRunwayMonths:     impact.NewRunwayMonths.StringFixed(2),
		RunwayDeltaMonths:   impact.RunwayDeltaMonths.StringFixed(2),
		CurrentMonthlyBurn:  impact.CurrentMonthlyBurn.StringFixed(2),
		NewMonthlyBurn:      impact.NewMonthlyBurn.StringFixed(2),
		BurnDelta:           impact.BurnDelta.StringFixed(2),
		RiskLevel:           impact.RiskLevel,
		FinancialSnapshot:   report.Snapshot,
		HireScenario:        report.Scenario,
	})
}
