package runway

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HireScenario is a proposed hire and its recurring monthly cost.
// StartDate is informational only.
type HireScenario struct {
	roleTitle       string
	monthlySalary   decimal.Decimal
	monthlyBenefits decimal.Decimal
	monthlyOverhead decimal.Decimal
	startDate       time.Time
}

// NewHireScenario validates the role title and that every cost is non-negative.
func NewHireScenario(roleTitle string, monthlySalary, monthlyBenefits, monthlyOverhead decimal.Decimal, startDate time.Time) (HireScenario, error) {
	if strings.TrimSpace(roleTitle) == "" {
		return HireScenario{}, ErrEmptyRoleTitle
	}
	if err := nonNegative("monthly salary", monthlySalary); err != nil {
		return HireScenario{}, err
	}
	if err := nonNegative("monthly benefits", monthlyBenefits); err != nil {
		return HireScenario{}, err
	}
	if err := nonNegative("monthly overhead", monthlyOverhead); err != nil {
		return HireScenario{}, err
	}
	return HireScenario{
		roleTitle:       roleTitle,
		monthlySalary:   monthlySalary,
		monthlyBenefits: monthlyBenefits,
		monthlyOverhead: monthlyOverhead,
		startDate:       startDate,
	}, nil
}

func (h HireScenario) RoleTitle() string                { return h.roleTitle }
func (h HireScenario) MonthlySalary() decimal.Decimal   { return h.monthlySalary }
func (h HireScenario) MonthlyBenefits() decimal.Decimal { return h.monthlyBenefits }
func (h HireScenario) MonthlyOverhead() decimal.Decimal { return h.monthlyOverhead }
func (h HireScenario) StartDate() time.Time             { return h.startDate }

// TotalMonthlyCost is salary + benefits + overhead.
func (h HireScenario) TotalMonthlyCost() decimal.Decimal {
	return h.monthlySalary.Add(h.monthlyBenefits).Add(h.monthlyOverhead)
}
