package repository

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE SCHEMA IF NOT EXISTS runway`,
	`CREATE TABLE IF NOT EXISTS runway.users (
		id            BIGSERIAL PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS runway.companies (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		user_id    BIGINT NOT NULL REFERENCES runway.users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS runway.financial_snapshots (
		id               BIGSERIAL PRIMARY KEY,
		company_id       BIGINT NOT NULL REFERENCES runway.companies(id) ON DELETE CASCADE,
		current_cash     NUMERIC(15, 2) NOT NULL,
		monthly_revenue  NUMERIC(15, 2) NOT NULL,
		monthly_expenses NUMERIC(15, 2) NOT NULL,
		snapshot_date    TIMESTAMPTZ NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS runway.hire_scenarios (
		id               BIGSERIAL PRIMARY KEY,
		company_id       BIGINT NOT NULL REFERENCES runway.companies(id) ON DELETE CASCADE,
		role_title       TEXT NOT NULL,
		monthly_salary   NUMERIC(15, 2) NOT NULL,
		monthly_benefits NUMERIC(15, 2) NOT NULL,
		monthly_overhead NUMERIC(15, 2) NOT NULL,
		start_date       TIMESTAMPTZ NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS financial_snapshots_company_idx ON runway.financial_snapshots (company_id)`,
	`CREATE INDEX IF NOT EXISTS hire_scenarios_company_idx ON runway.hire_scenarios (company_id)`,
}

// Migrate creates the schema and tables if they do not exist
func (r *Repository) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
