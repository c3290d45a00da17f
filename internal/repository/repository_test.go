package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestRepo connects to TEST_DB_CONN and skips when it is unset.
func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := os.Getenv("TEST_DB_CONN")
	if dsn == "" {
		t.Skip("TEST_DB_CONN not set")
	}
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func TestRepository_Postgres(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	user := &models.User{Email: uuid.NewString() + "@example.com", Name: "Ada", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(ctx, user))
	require.NotZero(t, user.ID)

	dup := &models.User{Email: user.Email, Name: "Other", PasswordHash: "y"}
	assert.ErrorIs(t, repo.CreateUser(ctx, dup), models.ErrDuplicate)

	company := &models.Company{Name: "Acme", UserID: user.ID}
	require.NoError(t, repo.CreateCompany(ctx, company))

	_, err := repo.FindCompany(ctx, company.ID, user.ID+1_000_000)
	assert.ErrorIs(t, err, models.ErrNotFound)

	older := &models.FinancialSnapshot{
		CompanyID:       company.ID,
		CurrentCash:     decimal.RequireFromString("500000.00"),
		MonthlyRevenue:  decimal.RequireFromString("20000.00"),
		MonthlyExpenses: decimal.RequireFromString("50000.00"),
		SnapshotDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateSnapshot(ctx, older))
	newer := *older
	newer.CurrentCash = decimal.RequireFromString("120000.55")
	newer.SnapshotDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateSnapshot(ctx, &newer))

	got, err := repo.FindSnapshot(ctx, newer.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentCash.Equal(newer.CurrentCash), "NUMERIC round trip keeps exact cents")

	got.MonthlyExpenses = decimal.RequireFromString("45000.00")
	require.NoError(t, repo.UpdateSnapshot(ctx, got))

	latest, err := repo.ListLatestSnapshots(ctx)
	require.NoError(t, err)
	var found bool
	for _, l := range latest {
		if l.Snapshot.CompanyID == company.ID {
			found = true
			assert.Equal(t, newer.ID, l.Snapshot.ID)
			assert.Equal(t, user.Email, l.OwnerEmail)
			assert.True(t, l.Snapshot.MonthlyExpenses.Equal(decimal.NewFromInt(45000)))
		}
	}
	assert.True(t, found)

	scenario := &models.HireScenario{
		CompanyID:       company.ID,
		RoleTitle:       "Engineer",
		MonthlySalary:   decimal.NewFromInt(15000),
		MonthlyBenefits: decimal.NewFromInt(3000),
		MonthlyOverhead: decimal.NewFromInt(2000),
		StartDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateScenario(ctx, scenario))
	scenarios, err := repo.ListScenarios(ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, scenarios, 1)

	require.NoError(t, repo.DeleteScenario(ctx, scenario.ID))
	assert.ErrorIs(t, repo.DeleteScenario(ctx, scenario.ID), models.ErrNotFound)
	require.NoError(t, repo.DeleteSnapshot(ctx, older.ID))
	_, err = repo.FindSnapshot(ctx, older.ID, user.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRepository_ReturnsStoredAmounts(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	user := &models.User{Email: uuid.NewString() + "@example.com", Name: "Ada", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(ctx, user))
	company := &models.Company{Name: "Acme", UserID: user.ID}
	require.NoError(t, repo.CreateCompany(ctx, company))

	s := &models.FinancialSnapshot{
		CompanyID:       company.ID,
		CurrentCash:     decimal.RequireFromString("1000.005"),
		MonthlyRevenue:  decimal.Zero,
		MonthlyExpenses: decimal.RequireFromString("250.333"),
		SnapshotDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateSnapshot(ctx, s))
	assert.Equal(t, "1000.01", s.CurrentCash.StringFixed(2))
	assert.Equal(t, "250.33", s.MonthlyExpenses.StringFixed(2))
	assert.True(t, s.CurrentCash.Equal(decimal.RequireFromString("1000.01")))

	s.MonthlyRevenue = decimal.RequireFromString("99.999")
	require.NoError(t, repo.UpdateSnapshot(ctx, s))
	assert.True(t, s.MonthlyRevenue.Equal(decimal.NewFromInt(100)))

	h := &models.HireScenario{
		CompanyID:       company.ID,
		RoleTitle:       "Engineer",
		MonthlySalary:   decimal.RequireFromString("15000.125"),
		MonthlyBenefits: decimal.Zero,
		MonthlyOverhead: decimal.Zero,
		StartDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateScenario(ctx, h))
	assert.True(t, h.MonthlySalary.Equal(decimal.RequireFromString("15000.13")))

	h.MonthlyOverhead = decimal.RequireFromString("0.004")
	require.NoError(t, repo.UpdateScenario(ctx, h))
	assert.True(t, h.MonthlyOverhead.IsZero())

	missing := *s
	missing.ID = -1
	assert.ErrorIs(t, repo.UpdateSnapshot(ctx, &missing), models.ErrNotFound)
	missingScenario := *h
	missingScenario.ID = -1
	assert.ErrorIs(t, repo.UpdateScenario(ctx, &missingScenario), models.ErrNotFound)
}
