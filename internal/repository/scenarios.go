package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/runway-service/internal/models"
)

const scenarioColumns = `h.id, h.company_id, h.role_title, h.monthly_salary, h.monthly_benefits, h.monthly_overhead, h.start_date, h.created_at`

func scanScenario(row scanner, h *models.HireScenario) error {
	return row.Scan(&h.ID, &h.CompanyID, &h.RoleTitle, &h.MonthlySalary, &h.MonthlyBenefits, &h.MonthlyOverhead, &h.StartDate, &h.CreatedAt)
}

// CreateScenario stores a new hire scenario
func (r *Repository) CreateScenario(ctx context.Context, h *models.HireScenario) error {
	query := `
		INSERT INTO runway.hire_scenarios
			(company_id, role_title, monthly_salary, monthly_benefits, monthly_overhead, start_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING id, monthly_salary, monthly_benefits, monthly_overhead, created_at`
	err := r.db.QueryRowContext(ctx, query, h.CompanyID, h.RoleTitle, h.MonthlySalary, h.MonthlyBenefits, h.MonthlyOverhead, h.StartDate).
		Scan(&h.ID, &h.MonthlySalary, &h.MonthlyBenefits, &h.MonthlyOverhead, &h.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create hire scenario: %w", err)
	}
	return nil
}

// ListScenarios returns a company's hire scenarios, newest first
func (r *Repository) ListScenarios(ctx context.Context, companyID int64) ([]models.HireScenario, error) {
	query := `
		SELECT ` + scenarioColumns + `
		FROM runway.hire_scenarios h
		WHERE h.company_id = $1
		ORDER BY h.created_at DESC, h.id DESC`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hire scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := []models.HireScenario{}
	for rows.Next() {
		var h models.HireScenario
		if err := scanScenario(rows, &h); err != nil {
			return nil, fmt.Errorf("failed to scan hire scenario: %w", err)
		}
		scenarios = append(scenarios, h)
	}
	return scenarios, rows.Err()
}

// FindScenario retrieves a hire scenario whose company belongs to userID
func (r *Repository) FindScenario(ctx context.Context, scenarioID, userID int64) (*models.HireScenario, error) {
	query := `
		SELECT ` + scenarioColumns + `
		FROM runway.hire_scenarios h
		JOIN runway.companies c ON c.id = h.company_id
		WHERE h.id = $1 AND c.user_id = $2`
	h := &models.HireScenario{}
	err := scanScenario(r.db.QueryRowContext(ctx, query, scenarioID, userID), h)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "Hire scenario", ID: scenarioID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find hire scenario: %w", err)
	}
	return h, nil
}

// UpdateScenario overwrites the mutable fields of a hire scenario and reads back the stored amounts
func (r *Repository) UpdateScenario(ctx context.Context, h *models.HireScenario) error {
	query := `
		UPDATE runway.hire_scenarios
		SET role_title = $2, monthly_salary = $3, monthly_benefits = $4, monthly_overhead = $5, start_date = $6
		WHERE id = $1
		RETURNING monthly_salary, monthly_benefits, monthly_overhead`
	err := r.db.QueryRowContext(ctx, query, h.ID, h.RoleTitle, h.MonthlySalary, h.MonthlyBenefits, h.MonthlyOverhead, h.StartDate).
		Scan(&h.MonthlySalary, &h.MonthlyBenefits, &h.MonthlyOverhead)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "Hire scenario", ID: h.ID}
	}
	if err != nil {
		return fmt.Errorf("failed to update hire scenario: %w", err)
	}
	return nil
}

// DeleteScenario removes a hire scenario
func (r *Repository) DeleteScenario(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runway.hire_scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hire scenario: %w", err)
	}
	return expectOneRow(res, "Hire scenario", id)
}
