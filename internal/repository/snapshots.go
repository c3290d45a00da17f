package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/runway-service/internal/models"
)

const snapshotColumns = `s.id, s.company_id, s.current_cash, s.monthly_revenue, s.monthly_expenses, s.snapshot_date, s.created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner, s *models.FinancialSnapshot) error {
	return row.Scan(&s.ID, &s.CompanyID, &s.CurrentCash, &s.MonthlyRevenue, &s.MonthlyExpenses, &s.SnapshotDate, &s.CreatedAt)
}

// CreateSnapshot stores a new financial snapshot
func (r *Repository) CreateSnapshot(ctx context.Context, s *models.FinancialSnapshot) error {
	query := `
		INSERT INTO runway.financial_snapshots
			(company_id, current_cash, monthly_revenue, monthly_expenses, snapshot_date, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, current_cash, monthly_revenue, monthly_expenses, created_at`
	err := r.db.QueryRowContext(ctx, query, s.CompanyID, s.CurrentCash, s.MonthlyRevenue, s.MonthlyExpenses, s.SnapshotDate).
		Scan(&s.ID, &s.CurrentCash, &s.MonthlyRevenue, &s.MonthlyExpenses, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create financial snapshot: %w", err)
	}
	return nil
}

// ListSnapshots returns a company's snapshots, newest first
func (r *Repository) ListSnapshots(ctx context.Context, companyID int64) ([]models.FinancialSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM runway.financial_snapshots s
		WHERE s.company_id = $1
		ORDER BY s.created_at DESC, s.id DESC`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []models.FinancialSnapshot{}
	for rows.Next() {
		var s models.FinancialSnapshot
		if err := scanSnapshot(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan financial snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// FindSnapshot retrieves a snapshot whose company belongs to userID
func (r *Repository) FindSnapshot(ctx context.Context, snapshotID, userID int64) (*models.FinancialSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM runway.financial_snapshots s
		JOIN runway.companies c ON c.id = s.company_id
		WHERE s.id = $1 AND c.user_id = $2`
	s := &models.FinancialSnapshot{}
	err := scanSnapshot(r.db.QueryRowContext(ctx, query, snapshotID, userID), s)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "Financial snapshot", ID: snapshotID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find financial snapshot: %w", err)
	}
	return s, nil
}

// UpdateSnapshot overwrites the mutable fields of a snapshot and reads back the stored amounts
func (r *Repository) UpdateSnapshot(ctx context.Context, s *models.FinancialSnapshot) error {
	query := `
		UPDATE runway.financial_snapshots
		SET current_cash = $2, monthly_revenue = $3, monthly_expenses = $4, snapshot_date = $5
		WHERE id = $1
		RETURNING current_cash, monthly_revenue, monthly_expenses`
	err := r.db.QueryRowContext(ctx, query, s.ID, s.CurrentCash, s.MonthlyRevenue, s.MonthlyExpenses, s.SnapshotDate).
		Scan(&s.CurrentCash, &s.MonthlyRevenue, &s.MonthlyExpenses)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "Financial snapshot", ID: s.ID}
	}
	if err != nil {
		return fmt.Errorf("failed to update financial snapshot: %w", err)
	}
	return nil
}

// DeleteSnapshot removes a snapshot
func (r *Repository) DeleteSnapshot(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runway.financial_snapshots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete financial snapshot: %w", err)
	}
	return expectOneRow(res, "Financial snapshot", id)
}

// ListLatestSnapshots returns the most recent snapshot of every company along with its owner
func (r *Repository) ListLatestSnapshots(ctx context.Context) ([]models.LatestSnapshot, error) {
	query := `
		SELECT DISTINCT ON (s.company_id)
			c.name, u.name, u.email, ` + snapshotColumns + `
		FROM runway.financial_snapshots s
		JOIN runway.companies c ON c.id = s.company_id
		JOIN runway.users u ON u.id = c.user_id
		ORDER BY s.company_id, s.snapshot_date DESC, s.id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest snapshots: %w", err)
	}
	defer rows.Close()

	var latest []models.LatestSnapshot
	for rows.Next() {
		var l models.LatestSnapshot
		s := &l.Snapshot
		err := rows.Scan(&l.CompanyName, &l.OwnerName, &l.OwnerEmail,
			&s.ID, &s.CompanyID, &s.CurrentCash, &s.MonthlyRevenue, &s.MonthlyExpenses, &s.SnapshotDate, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan latest snapshot: %w", err)
		}
		latest = append(latest, l)
	}
	return latest, rows.Err()
}

func expectOneRow(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return &models.NotFoundError{Entity: what, ID: id}
	}
	return nil
}
