package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO runway.users (email, name, password_hash, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, user.Email, user.Name, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("user %s: %w", user.Email, models.ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM runway.users
		WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// FindUserByID retrieves a user by id
func (r *Repository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM runway.users
		WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *Repository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "User"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateCompany creates a company owned by company.UserID
func (r *Repository) CreateCompany(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO runway.companies (name, user_id, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, company.Name, company.UserID).
		Scan(&company.ID, &company.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// ListCompanies returns all companies owned by a user
func (r *Repository) ListCompanies(ctx context.Context, userID int64) ([]models.Company, error) {
	query := `
		SELECT id, name, user_id, created_at
		FROM runway.companies
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []models.Company{}
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.UserID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// FindCompany retrieves a company only if it belongs to userID
func (r *Repository) FindCompany(ctx context.Context, companyID, userID int64) (*models.Company, error) {
	c := &models.Company{}
	query := `
		SELECT id, name, user_id, created_at
		FROM runway.companies
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRowContext(ctx, query, companyID, userID).
		Scan(&c.ID, &c.Name, &c.UserID, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "Company", ID: companyID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return c, nil
}
