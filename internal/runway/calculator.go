// Package runway computes burn rate, runway and the risk of adding a hire.
//
// Every function here is pure: no I/O, no shared state. All quantities are
// exact decimals; month values are rounded half-up to two places when they
// are finalized.
package runway

import "github.com/shopspring/decimal"

// monthPlaces is the number of fractional digits kept on month values.
const monthPlaces = 2

var (
	// InfiniteRunway stands in for an unbounded runway when burn is zero or positive.
	InfiniteRunway = decimal.RequireFromString("999.99")

	sentinelFloor = decimal.NewFromInt(999)
	safeFloor     = decimal.NewFromInt(12)
	riskyFloor    = decimal.NewFromInt(6)
)

// MonthlyBurn is revenue minus expenses. Negative means cash is flowing out.
func MonthlyBurn(s FinancialSnapshot) decimal.Decimal {
	return s.monthlyRevenue.Sub(s.monthlyExpenses)
}

// RunwayMonths returns how many months cash lasts at the given burn.
// Break-even and profitable burns return InfiniteRunway.
func RunwayMonths(currentCash, monthlyBurn decimal.Decimal) decimal.Decimal {
	if monthlyBurn.Sign() >= 0 {
		return InfiniteRunway
	}
	return currentCash.DivRound(monthlyBurn.Abs(), monthPlaces)
}

// BurnAfterHire adds the hire's monthly cost as pure expense.
func BurnAfterHire(currentBurn decimal.Decimal, hire HireScenario) decimal.Decimal {
	return currentBurn.Sub(hire.TotalMonthlyCost())
}

// RunwayDelta is newRunway - currentRunway. Negative means runway shortened.
func RunwayDelta(currentRunway, newRunway decimal.Decimal) decimal.Decimal {
	return newRunway.Sub(currentRunway).Round(monthPlaces)
}

// ClassifyRisk maps runway months to a RiskLevel. Twelve months or more is
// Safe, 6 up to but excluding 12 is Risky, anything shorter is Dangerous.
func ClassifyRisk(runwayMonths decimal.Decimal) RiskLevel {
	switch {
	case runwayMonths.GreaterThanOrEqual(sentinelFloor):
		return RiskSafe
	case runwayMonths.GreaterThanOrEqual(safeFloor):
		return RiskSafe
	case runwayMonths.GreaterThanOrEqual(riskyFloor):
		return RiskRisky
	default:
		return RiskDangerous
	}
}

// CalculateHiringImpact evaluates hire against snapshot. Risk is assessed on
// the post-hire runway.
func CalculateHiringImpact(snapshot FinancialSnapshot, hire HireScenario) HiringImpact {
	currentBurn := MonthlyBurn(snapshot)
	currentRunway := RunwayMonths(snapshot.currentCash, currentBurn)
	newBurn := BurnAfterHire(currentBurn, hire)
	newRunway := RunwayMonths(snapshot.currentCash, newBurn)
	runwayDelta := RunwayDelta(currentRunway, newRunway)
	risk := ClassifyRisk(newRunway)
	burnDelta := newBurn.Sub(currentBurn)

	impact, err := NewHiringImpact(currentBurn, newBurn, burnDelta, currentRunway, newRunway, runwayDelta, risk)
	if err != nil {
		// ClassifyRisk only returns known levels.
		panic(err)
	}
	return impact
}
