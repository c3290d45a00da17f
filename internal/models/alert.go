package models

import (
	"time"

	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/shopspring/decimal"
)

// RunwayAlert describes a company whose latest snapshot leaves it short on runway
type RunwayAlert struct {
	CompanyName  string
	OwnerName    string
	OwnerEmail   string
	SnapshotDate time.Time
	CurrentCash  decimal.Decimal
	MonthlyBurn  decimal.Decimal
	RunwayMonths decimal.Decimal
	RiskLevel    runway.RiskLevel
}
