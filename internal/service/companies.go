package service

import (
	"context"
	"strings"

	"github.com/Dan9191/runway-service/internal/models"
)

// CreateCompany creates a company owned by userID
func (s *Service) CreateCompany(ctx context.Context, userID int64, name string) (*models.Company, error) {
	company := &models.Company{Name: strings.TrimSpace(name), UserID: userID}
	if err := s.store.CreateCompany(ctx, company); err != nil {
		return nil, err
	}

	s.log.Infof("Company %d created for user %d", company.ID, userID)
	return company, nil
}

// ListCompanies returns the companies owned by userID
func (s *Service) ListCompanies(ctx context.Context, userID int64) ([]models.Company, error) {
	return s.store.ListCompanies(ctx, userID)
}

// GetCompany returns a company if userID owns it
func (s *Service) GetCompany(ctx context.Context, userID, companyID int64) (*models.Company, error) {
	return s.store.FindCompany(ctx, companyID, userID)
}
