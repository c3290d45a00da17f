package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/sirupsen/logrus"
)

// ImpactReport is a hiring impact together with the records it was computed from
type ImpactReport struct {
	Impact   runway.HiringImpact
	Snapshot *models.FinancialSnapshot
	Scenario *models.HireScenario
}

// CalculateHiringImpact evaluates a stored hire scenario against a stored snapshot.
// Both must be visible to userID and belong to the same company.
func (s *Service) CalculateHiringImpact(ctx context.Context, userID, snapshotID, scenarioID int64) (*ImpactReport, error) {
	snapshot, err := s.store.FindSnapshot(ctx, snapshotID, userID)
	if err != nil {
		return nil, err
	}
	scenario, err := s.store.FindScenario(ctx, scenarioID, userID)
	if err != nil {
		return nil, err
	}
	if snapshot.CompanyID != scenario.CompanyID {
		return nil, ErrCompanyMismatch
	}

	domainSnapshot, err := toDomainSnapshot(snapshot)
	if err != nil {
		return nil, fmt.Errorf("stored financial snapshot %d: %w", snapshot.ID, err)
	}
	domainScenario, err := toDomainScenario(scenario)
	if err != nil {
		return nil, fmt.Errorf("stored hire scenario %d: %w", scenario.ID, err)
	}

	impact := runway.CalculateHiringImpact(domainSnapshot, domainScenario)
	s.metrics.ObserveImpact(impact.RiskLevel)

	s.log.WithFields(logrus.Fields{
		"snapshot_id":       snapshot.ID,
		"scenario_id":       scenario.ID,
		"new_runway_months": impact.NewRunwayMonths.StringFixed(2),
		"risk_level":        impact.RiskLevel,
	}).Info("Hiring impact calculated")

	return &ImpactReport{Impact: impact, Snapshot: snapshot, Scenario: scenario}, nil
}
