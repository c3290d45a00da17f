package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HireScenario is a stored proposed hire for a company
type HireScenario struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"company_id"`
	RoleTitle       string          `json:"role_title"`
	MonthlySalary   decimal.Decimal `json:"monthly_salary"`
	MonthlyBenefits decimal.Decimal `json:"monthly_benefits"`
	MonthlyOverhead decimal.Decimal `json:"monthly_overhead"`
	StartDate       time.Time       `json:"start_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ScenarioUpdate holds the fields of a partial scenario update. Nil fields are left as is.
type ScenarioUpdate struct {
	RoleTitle       *string
	MonthlySalary   *decimal.Decimal
	MonthlyBenefits *decimal.Decimal
	MonthlyOverhead *decimal.Decimal
	StartDate       *time.Time
}
