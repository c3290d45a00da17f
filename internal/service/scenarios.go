package service

import (
	"context"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/sirupsen/logrus"
)

func toDomainScenario(h *models.HireScenario) (runway.HireScenario, error) {
	return runway.NewHireScenario(h.RoleTitle, h.MonthlySalary, h.MonthlyBenefits, h.MonthlyOverhead, h.StartDate)
}

// CreateScenario validates and stores a hire scenario for a company owned by userID
func (s *Service) CreateScenario(ctx context.Context, userID int64, scenario *models.HireScenario) error {
	if _, err := s.store.FindCompany(ctx, scenario.CompanyID, userID); err != nil {
		return err
	}
	if _, err := toDomainScenario(scenario); err != nil {
		return err
	}

	if err := s.store.CreateScenario(ctx, scenario); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"company_id":  scenario.CompanyID,
		"scenario_id": scenario.ID,
		"role_title":  scenario.RoleTitle,
	}).Info("Hire scenario created")
	return nil
}

// ListScenarios returns a company's hire scenarios if userID owns the company
func (s *Service) ListScenarios(ctx context.Context, userID, companyID int64) ([]models.HireScenario, error) {
	if _, err := s.store.FindCompany(ctx, companyID, userID); err != nil {
		return nil, err
	}
	return s.store.ListScenarios(ctx, companyID)
}

// GetScenario returns a hire scenario visible to userID
func (s *Service) GetScenario(ctx context.Context, userID, scenarioID int64) (*models.HireScenario, error) {
	return s.store.FindScenario(ctx, scenarioID, userID)
}

// UpdateScenario applies the provided fields and re-validates the result before saving
func (s *Service) UpdateScenario(ctx context.Context, userID, scenarioID int64, upd models.ScenarioUpdate) (*models.HireScenario, error) {
	scenario, err := s.store.FindScenario(ctx, scenarioID, userID)
	if err != nil {
		return nil, err
	}

	if upd.RoleTitle != nil {
		scenario.RoleTitle = *upd.RoleTitle
	}
	if upd.MonthlySalary != nil {
		scenario.MonthlySalary = *upd.MonthlySalary
	}
	if upd.MonthlyBenefits != nil {
		scenario.MonthlyBenefits = *upd.MonthlyBenefits
	}
	if upd.MonthlyOverhead != nil {
		scenario.MonthlyOverhead = *upd.MonthlyOverhead
	}
	if upd.StartDate != nil {
		scenario.StartDate = *upd.StartDate
	}
	if _, err := toDomainScenario(scenario); err != nil {
		return nil, err
	}

	if err := s.store.UpdateScenario(ctx, scenario); err != nil {
		return nil, err
	}

	s.log.Infof("Hire scenario %d updated", scenario.ID)
	return scenario, nil
}

// DeleteScenario removes a hire scenario visible to userID
func (s *Service) DeleteScenario(ctx context.Context, userID, scenarioID int64) error {
	if _, err := s.store.FindScenario(ctx, scenarioID, userID); err != nil {
		return err
	}
	if err := s.store.DeleteScenario(ctx, scenarioID); err != nil {
		return err
	}

	s.log.Infof("Hire scenario %d deleted", scenarioID)
	return nil
}
