package service

import (
	"context"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/sirupsen/logrus"
)

func toDomainSnapshot(s *models.FinancialSnapshot) (runway.FinancialSnapshot, error) {
	return runway.NewFinancialSnapshot(s.CurrentCash, s.MonthlyRevenue, s.MonthlyExpenses, s.SnapshotDate)
}

// CreateSnapshot validates and stores a snapshot for a company owned by userID
func (s *Service) CreateSnapshot(ctx context.Context, userID int64, snapshot *models.FinancialSnapshot) error {
	if _, err := s.store.FindCompany(ctx, snapshot.CompanyID, userID); err != nil {
		return err
	}
	if _, err := toDomainSnapshot(snapshot); err != nil {
		return err
	}
	if snapshot.SnapshotDate.IsZero() {
		snapshot.SnapshotDate = s.now().UTC()
	}

	if err := s.store.CreateSnapshot(ctx, snapshot); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"company_id":  snapshot.CompanyID,
		"snapshot_id": snapshot.ID,
	}).Info("Financial snapshot created")
	return nil
}

// ListSnapshots returns a company's snapshots if userID owns the company
func (s *Service) ListSnapshots(ctx context.Context, userID, companyID int64) ([]models.FinancialSnapshot, error) {
	if _, err := s.store.FindCompany(ctx, companyID, userID); err != nil {
		return nil, err
	}
	return s.store.ListSnapshots(ctx, companyID)
}

// GetSnapshot returns a snapshot visible to userID
func (s *Service) GetSnapshot(ctx context.Context, userID, snapshotID int64) (*models.FinancialSnapshot, error) {
	return s.store.FindSnapshot(ctx, snapshotID, userID)
}

// UpdateSnapshot applies the provided fields and re-validates the result before saving
func (s *Service) UpdateSnapshot(ctx context.Context, userID, snapshotID int64, upd models.SnapshotUpdate) (*models.FinancialSnapshot, error) {
	snapshot, err := s.store.FindSnapshot(ctx, snapshotID, userID)
	if err != nil {
		return nil, err
	}

	if upd.CurrentCash != nil {
		snapshot.CurrentCash = *upd.CurrentCash
	}
	if upd.MonthlyRevenue != nil {
		snapshot.MonthlyRevenue = *upd.MonthlyRevenue
	}
	if upd.MonthlyExpenses != nil {
		snapshot.MonthlyExpenses = *upd.MonthlyExpenses
	}
	if upd.SnapshotDate != nil {
		snapshot.SnapshotDate = *upd.SnapshotDate
	}
	if _, err := toDomainSnapshot(snapshot); err != nil {
		return nil, err
	}

	if err := s.store.UpdateSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}

	s.log.Infof("Financial snapshot %d updated", snapshot.ID)
	return snapshot, nil
}

// DeleteSnapshot removes a snapshot visible to userID
func (s *Service) DeleteSnapshot(ctx context.Context, userID, snapshotID int64) error {
	if _, err := s.store.FindSnapshot(ctx, snapshotID, userID); err != nil {
		return err
	}
	if err := s.store.DeleteSnapshot(ctx, snapshotID); err != nil {
		return err
	}

	s.log.Infof("Financial snapshot %d deleted", snapshotID)
	return nil
}
