package runway

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSnapshot is a point-in-time view of a company's cash position.
// Revenue and expenses are assumed constant going forward.
type FinancialSnapshot struct {
	currentCash     decimal.Decimal
	monthlyRevenue  decimal.Decimal
	monthlyExpenses decimal.Decimal
	snapshotDate    time.Time
}

// NewFinancialSnapshot validates that every amount is non-negative.
func NewFinancialSnapshot(currentCash, monthlyRevenue, monthlyExpenses decimal.Decimal, snapshotDate time.Time) (FinancialSnapshot, error) {
	if err := nonNegative("current cash", currentCash); err != nil {
		return FinancialSnapshot{}, err
	}
	if err := nonNegative("monthly revenue", monthlyRevenue); err != nil {
		return FinancialSnapshot{}, err
	}
	if err := nonNegative("monthly expenses", monthlyExpenses); err != nil {
		return FinancialSnapshot{}, err
	}
	return FinancialSnapshot{
		currentCash:     currentCash,
		monthlyRevenue:  monthlyRevenue,
		monthlyExpenses: monthlyExpenses,
		snapshotDate:    snapshotDate,
	}, nil
}

func (s FinancialSnapshot) CurrentCash() decimal.Decimal     { return s.currentCash }
func (s FinancialSnapshot) MonthlyRevenue() decimal.Decimal  { return s.monthlyRevenue }
func (s FinancialSnapshot) MonthlyExpenses() decimal.Decimal { return s.monthlyExpenses }
func (s FinancialSnapshot) SnapshotDate() time.Time          { return s.snapshotDate }

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s cannot be negative (got %s)", ErrInvalidAmount, field, v.String())
	}
	return nil
}
