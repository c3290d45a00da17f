package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/runway-service/internal/auth"
	"github.com/Dan9191/runway-service/internal/config"
	"github.com/Dan9191/runway-service/internal/metrics"
	"github.com/Dan9191/runway-service/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes.
const maxPasswordBytes = 72

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooLong    = errors.New("password is too long (maximum 72 bytes)")
	ErrCompanyMismatch    = errors.New("financial snapshot and hire scenario must belong to the same company")
)

// Store is the persistence the service depends on
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)

	CreateCompany(ctx context.Context, company *models.Company) error
	ListCompanies(ctx context.Context, userID int64) ([]models.Company, error)
	FindCompany(ctx context.Context, companyID, userID int64) (*models.Company, error)

	CreateSnapshot(ctx context.Context, s *models.FinancialSnapshot) error
	ListSnapshots(ctx context.Context, companyID int64) ([]models.FinancialSnapshot, error)
	FindSnapshot(ctx context.Context, snapshotID, userID int64) (*models.FinancialSnapshot, error)
	UpdateSnapshot(ctx context.Context, s *models.FinancialSnapshot) error
	DeleteSnapshot(ctx context.Context, id int64) error
	ListLatestSnapshots(ctx context.Context) ([]models.LatestSnapshot, error)

	CreateScenario(ctx context.Context, h *models.HireScenario) error
	ListScenarios(ctx context.Context, companyID int64) ([]models.HireScenario, error)
	FindScenario(ctx context.Context, scenarioID, userID int64) (*models.HireScenario, error)
	UpdateScenario(ctx context.Context, h *models.HireScenario) error
	DeleteScenario(ctx context.Context, id int64) error
}

// Service handles business logic
type Service struct {
	store   Store
	log     *logrus.Logger
	config  *config.Config
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewService initializes a new service
func NewService(store Store, log *logrus.Logger, cfg *config.Config, m *metrics.Metrics) *Service {
	return &Service{store: store, log: log, config: cfg, metrics: m, now: time.Now}
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if len(password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hashedPassword),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := auth.IssueToken(user.ID, user.Email, s.config.JWTSecret, s.config.TokenTTL, s.now())
	if err != nil {
		return "", err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return token, nil
}

// User returns the authenticated user's profile
func (s *Service) User(ctx context.Context, userID int64) (*models.User, error) {
	return s.store.FindUserByID(ctx, userID)
}
