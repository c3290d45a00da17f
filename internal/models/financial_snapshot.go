package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialSnapshot is a stored cash/revenue/expense snapshot for a company
type FinancialSnapshot struct {
	ID              int64           `json:"id"`
	CompanyID       int64           `json:"company_id"`
	CurrentCash     decimal.Decimal `json:"current_cash"`
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	SnapshotDate    time.Time       `json:"snapshot_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SnapshotUpdate holds the fields of a partial snapshot update. Nil fields are left as is.
type SnapshotUpdate struct {
	CurrentCash     *decimal.Decimal
	MonthlyRevenue  *decimal.Decimal
	MonthlyExpenses *decimal.Decimal
	SnapshotDate    *time.Time
}

// LatestSnapshot pairs a company's most recent snapshot with its owner, used for runway alerts
type LatestSnapshot struct {
	CompanyName string
	OwnerName   string
	OwnerEmail  string
	Snapshot    FinancialSnapshot
}
