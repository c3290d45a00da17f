package service

import (
	"context"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/Dan9191/runway-service/internal/runway"
)

// RunwayAlerts checks every company's latest snapshot and returns an alert for
// each one whose current runway is not Safe
func (s *Service) RunwayAlerts(ctx context.Context) ([]models.RunwayAlert, error) {
	latest, err := s.store.ListLatestSnapshots(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []models.RunwayAlert
	for _, l := range latest {
		snapshot, err := toDomainSnapshot(&l.Snapshot)
		if err != nil {
			s.log.Warnf("Skipping invalid financial snapshot %d: %v", l.Snapshot.ID, err)
			continue
		}

		burn := runway.MonthlyBurn(snapshot)
		months := runway.RunwayMonths(snapshot.CurrentCash(), burn)
		risk := runway.ClassifyRisk(months)
		if risk == runway.RiskSafe {
			continue
		}

		alerts = append(alerts, models.RunwayAlert{
			CompanyName:  l.CompanyName,
			OwnerName:    l.OwnerName,
			OwnerEmail:   l.OwnerEmail,
			SnapshotDate: snapshot.SnapshotDate(),
			CurrentCash:  snapshot.CurrentCash(),
			MonthlyBurn:  burn,
			RunwayMonths: months,
			RiskLevel:    risk,
		})
	}

	s.log.Infof("Runway check: %d companies, %d alerts", len(latest), len(alerts))
	return alerts, nil
}
