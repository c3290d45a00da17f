package runway

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HiringImpact is the result of evaluating a hire against a snapshot.
type HiringImpact struct {
	CurrentMonthlyBurn  decimal.Decimal `json:"current_monthly_burn"`
	NewMonthlyBurn      decimal.Decimal `json:"new_monthly_burn"`
	BurnDelta           decimal.Decimal `json:"burn_delta"`
	CurrentRunwayMonths decimal.Decimal `json:"current_runway_months"`
	NewRunwayMonths     decimal.Decimal `json:"new_runway_months"`
	RunwayDeltaMonths   decimal.Decimal `json:"runway_delta_months"`
	RiskLevel           RiskLevel       `json:"risk_level"`
}

// NewHiringImpact builds a HiringImpact, rejecting unknown risk levels.
func NewHiringImpact(currentBurn, newBurn, burnDelta, currentRunway, newRunway, runwayDelta decimal.Decimal, risk RiskLevel) (HiringImpact, error) {
	if !risk.Valid() {
		return HiringImpact{}, fmt.Errorf("%w: %q", ErrInvalidRiskLevel, string(risk))
	}
	return HiringImpact{
		CurrentMonthlyBurn:  currentBurn,
		NewMonthlyBurn:      newBurn,
		BurnDelta:           burnDelta,
		CurrentRunwayMonths: currentRunway,
		NewRunwayMonths:     newRunway,
		RunwayDeltaMonths:   runwayDelta,
		RiskLevel:           risk,
	}, nil
}
