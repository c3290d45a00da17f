package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Dan9191/runway-service/internal/auth"
	"github.com/Dan9191/runway-service/internal/config"
	"github.com/Dan9191/runway-service/internal/models"
	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/Dan9191/runway-service/internal/service/servicetest"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Store = (*servicetest.MemoryStore)(nil)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*Service, *servicetest.MemoryStore) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := servicetest.NewMemoryStore()
	cfg := &config.Config{JWTSecret: testSecret, TokenTTL: 30 * time.Minute}
	return NewService(store, log, cfg, nil), store
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedCompany(t *testing.T, svc *Service, email string) (*models.User, *models.Company) {
	t.Helper()
	ctx := context.Background()
	user, err := svc.Register(ctx, "Founder", email, "password123")
	require.NoError(t, err)
	company, err := svc.CreateCompany(ctx, user.ID, "Acme")
	require.NoError(t, err)
	return user, company
}

func seedSnapshot(t *testing.T, svc *Service, userID, companyID int64, cash, revenue, expenses string) *models.FinancialSnapshot {
	t.Helper()
	s := &models.FinancialSnapshot{
		CompanyID:       companyID,
		CurrentCash:     dec(cash),
		MonthlyRevenue:  dec(revenue),
		MonthlyExpenses: dec(expenses),
		SnapshotDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.CreateSnapshot(context.Background(), userID, s))
	return s
}

func seedScenario(t *testing.T, svc *Service, userID, companyID int64, salary, benefits, overhead string) *models.HireScenario {
	t.Helper()
	h := &models.HireScenario{
		CompanyID:       companyID,
		RoleTitle:       "Senior Engineer",
		MonthlySalary:   dec(salary),
		MonthlyBenefits: dec(benefits),
		MonthlyOverhead: dec(overhead),
		StartDate:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.CreateScenario(context.Background(), userID, h))
	return h
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, " Ada ", "Ada@Example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "Ada", user.Name)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	_, err = svc.Register(ctx, "Ada", "ada@example.com", "another one")
	assert.ErrorIs(t, err, models.ErrDuplicate)

	token, err := svc.Login(ctx, "ADA@example.com", "correct horse")
	require.NoError(t, err)
	userID, err := auth.ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_PasswordTooLong(t *testing.T) {
	svc, _ := newTestService(t)
	long := make([]byte, 73)
	for i := range long {
		long[i] = 'x'
	}
	_, err := svc.Register(context.Background(), "A", "a@example.com", string(long))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestCompanies_ScopedToOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner, company := seedCompany(t, svc, "owner@example.com")
	other, _ := seedCompany(t, svc, "other@example.com")

	got, err := svc.GetCompany(ctx, owner.ID, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	_, err = svc.GetCompany(ctx, other.ID, company.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	list, err := svc.ListCompanies(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateSnapshot_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner, company := seedCompany(t, svc, "owner@example.com")
	other, _ := seedCompany(t, svc, "other@example.com")

	negative := &models.FinancialSnapshot{CompanyID: company.ID, CurrentCash: dec("-1")}
	assert.ErrorIs(t, svc.CreateSnapshot(ctx, owner.ID, negative), runway.ErrInvalidAmount)

	foreign := &models.FinancialSnapshot{CompanyID: company.ID, CurrentCash: dec("1")}
	assert.ErrorIs(t, svc.CreateSnapshot(ctx, other.ID, foreign), models.ErrNotFound)

	undated := &models.FinancialSnapshot{CompanyID: company.ID, CurrentCash: dec("1")}
	require.NoError(t, svc.CreateSnapshot(ctx, owner.ID, undated))
	assert.False(t, undated.SnapshotDate.IsZero())
}

func TestUpdateSnapshot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner, company := seedCompany(t, svc, "owner@example.com")
	s := seedSnapshot(t, svc, owner.ID, company.ID, "300000", "20000", "50000")

	cash := dec("250000")
	updated, err := svc.UpdateSnapshot(ctx, owner.ID, s.ID, models.SnapshotUpdate{CurrentCash: &cash})
	require.NoError(t, err)
	assert.True(t, updated.CurrentCash.Equal(cash))
	assert.True(t, updated.MonthlyRevenue.Equal(dec("20000")))

	bad := dec("-10")
	_, err = svc.UpdateSnapshot(ctx, owner.ID, s.ID, models.SnapshotUpdate{MonthlyExpenses: &bad})
	assert.ErrorIs(t, err, runway.ErrInvalidAmount)

	stored, err := svc.GetSnapshot(ctx, owner.ID, s.ID)
	require.NoError(t, err)
	assert.True(t, stored.MonthlyExpenses.Equal(dec("50000")), "rejected update must not be saved")
}

func TestDeleteSnapshot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner, company := seedCompany(t, svc, "owner@example.com")
	other, _ := seedCompany(t, svc, "other@example.com")
	s := seedSnapshot(t, svc, owner.ID, company.ID, "1000", "0", "10")

	assert.ErrorIs(t, svc.DeleteSnapshot(ctx, other.ID, s.ID), models.ErrNotFound)
	require.NoError(t, svc.DeleteSnapshot(ctx, owner.ID, s.ID))
	_, err := svc.GetSnapshot(ctx, owner.ID, s.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestScenarios_CRUD(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner, company := seedCompany(t, svc, "owner@example.com")

	blank := &models.HireScenario{CompanyID: company.ID, RoleTitle: " "}
	assert.ErrorIs(t, svc.CreateScenario(ctx, owner.ID, blank), runway.ErrEmptyRoleTitle)

	h := seedScenario(t, svc, owner.ID, company.ID, "10000", "1500", "500")
	list, err := svc.ListScenarios(ctx, owner.ID, company.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	title := "Staff Engineer"
	salary := dec("14000")
	updated, err := svc.UpdateScenario(ctx, owner.ID, h.ID, models.ScenarioUpdate{RoleTitle: &title, MonthlySalary: &salary})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.RoleTitle)
	assert.True(t, updated.MonthlyBenefits.Equal(dec("1500")))

	require.NoError(t, svc.DeleteScenario(ctx, owner.ID, h.ID))
	_, err = svc.GetScenario(ctx, owner.ID, h.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCalculateHiringImpact(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner, company := seedCompany(t, svc, "owner@example.com")
	s := seedSnapshot(t, svc, owner.ID, company.ID, "300000", "20000", "50000")
	h := seedScenario(t, svc, owner.ID, company.ID, "10000", "1500", "500")

	report, err := svc.CalculateHiringImpact(ctx, owner.ID, s.ID, h.ID)
	require.NoError(t, err)
	assert.Equal(t, runway.RiskRisky, report.Impact.RiskLevel)
	assert.Equal(t, "7.14", report.Impact.NewRunwayMonths.StringFixed(2))
	assert.Equal(t, "-2.86", report.Impact.RunwayDeltaMonths.StringFixed(2))
	assert.Equal(t, s.ID, report.Snapshot.ID)
	assert.Equal(t, h.ID, report.Scenario.ID)
}

func TestCalculateHiringImpact_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	owner, company := seedCompany(t, svc, "owner@example.com")
	second, err := svc.CreateCompany(ctx, owner.ID, "Second Co")
	require.NoError(t, err)
	other, _ := seedCompany(t, svc, "other@example.com")

	s := seedSnapshot(t, svc, owner.ID, company.ID, "300000", "20000", "50000")
	h := seedScenario(t, svc, owner.ID, second.ID, "10000", "0", "0")

	_, err = svc.CalculateHiringImpact(ctx, owner.ID, s.ID, h.ID)
	assert.ErrorIs(t, err, ErrCompanyMismatch)

	_, err = svc.CalculateHiringImpact(ctx, other.ID, s.ID, h.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.CalculateHiringImpact(ctx, owner.ID, s.ID, 9999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRunwayAlerts(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	risky, riskyCo := seedCompany(t, svc, "risky@example.com")
	seedSnapshot(t, svc, risky.ID, riskyCo.ID, "300000", "20000", "50000") // 10 months

	safe, safeCo := seedCompany(t, svc, "safe@example.com")
	seedSnapshot(t, svc, safe.ID, safeCo.ID, "100000", "50000", "40000") // profitable

	recovered, recoveredCo := seedCompany(t, svc, "recovered@example.com")
	old := &models.FinancialSnapshot{
		CompanyID: recoveredCo.ID, CurrentCash: dec("1000"), MonthlyExpenses: dec("1000"),
		SnapshotDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.CreateSnapshot(ctx, recovered.ID, old))
	seedSnapshot(t, svc, recovered.ID, recoveredCo.ID, "1000000", "0", "10000") // 100 months

	alerts, err := svc.RunwayAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "risky@example.com", alerts[0].OwnerEmail)
	assert.Equal(t, runway.RiskRisky, alerts[0].RiskLevel)
	assert.True(t, alerts[0].RunwayMonths.Equal(dec("10")))
	assert.True(t, alerts[0].MonthlyBurn.Equal(dec("-30000")))

	store.FailLatest = errors.New("db down")
	_, err = svc.RunwayAlerts(ctx)
	assert.Error(t, err)
}
