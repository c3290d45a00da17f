// Package servicetest provides an in-memory service.Store for tests.
package servicetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Dan9191/runway-service/internal/models"
)

// MemoryStore keeps every record in maps guarded by a mutex.
type MemoryStore struct {
	mu        sync.Mutex
	nextID    int64
	clock     time.Time
	users     map[int64]models.User
	companies map[int64]models.Company
	snapshots map[int64]models.FinancialSnapshot
	scenarios map[int64]models.HireScenario

	// FailLatest makes ListLatestSnapshots return this error.
	FailLatest error
}

// Amounts are kept to cents, matching the NUMERIC(15,2) columns.
const amountPlaces = 2

func storeSnapshotAmounts(s *models.FinancialSnapshot) {
	s.CurrentCash = s.CurrentCash.Round(amountPlaces)
	s.MonthlyRevenue = s.MonthlyRevenue.Round(amountPlaces)
	s.MonthlyExpenses = s.MonthlyExpenses.Round(amountPlaces)
}

func storeScenarioAmounts(h *models.HireScenario) {
	h.MonthlySalary = h.MonthlySalary.Round(amountPlaces)
	h.MonthlyBenefits = h.MonthlyBenefits.Round(amountPlaces)
	h.MonthlyOverhead = h.MonthlyOverhead.Round(amountPlaces)
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clock:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		users:     map[int64]models.User{},
		companies: map[int64]models.Company{},
		snapshots: map[int64]models.FinancialSnapshot{},
		scenarios: map[int64]models.HireScenario{},
	}
}

// tick returns a fresh id and a strictly increasing creation time.
func (m *MemoryStore) tick() (int64, time.Time) {
	m.nextID++
	m.clock = m.clock.Add(time.Second)
	return m.nextID, m.clock
}

func (m *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return fmt.Errorf("user %s: %w", user.Email, models.ErrDuplicate)
		}
	}
	user.ID, user.CreatedAt = m.tick()
	m.users[user.ID] = *user
	return nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, &models.NotFoundError{Entity: "User"}
}

func (m *MemoryStore) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "User"}
	}
	return &u, nil
}

func (m *MemoryStore) CreateCompany(_ context.Context, company *models.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	company.ID, company.CreatedAt = m.tick()
	m.companies[company.ID] = *company
	return nil
}

func (m *MemoryStore) ListCompanies(_ context.Context, userID int64) ([]models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Company{}
	for _, c := range m.companies {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryStore) FindCompany(_ context.Context, companyID, userID int64) (*models.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companies[companyID]
	if !ok || c.UserID != userID {
		return nil, &models.NotFoundError{Entity: "Company", ID: companyID}
	}
	return &c, nil
}

func (m *MemoryStore) ownedBy(companyID, userID int64) bool {
	c, ok := m.companies[companyID]
	return ok && c.UserID == userID
}

func (m *MemoryStore) CreateSnapshot(_ context.Context, s *models.FinancialSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID, s.CreatedAt = m.tick()
	storeSnapshotAmounts(s)
	m.snapshots[s.ID] = *s
	return nil
}

func (m *MemoryStore) ListSnapshots(_ context.Context, companyID int64) ([]models.FinancialSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.FinancialSnapshot{}
	for _, s := range m.snapshots {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MemoryStore) FindSnapshot(_ context.Context, snapshotID, userID int64) (*models.FinancialSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.snapshots[snapshotID]
	if !ok || !m.ownedBy(s.CompanyID, userID) {
		return nil, &models.NotFoundError{Entity: "Financial snapshot", ID: snapshotID}
	}
	return &s, nil
}

func (m *MemoryStore) UpdateSnapshot(_ context.Context, s *models.FinancialSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.snapshots[s.ID]; !ok {
		return &models.NotFoundError{Entity: "Financial snapshot", ID: s.ID}
	}
	storeSnapshotAmounts(s)
	m.snapshots[s.ID] = *s
	return nil
}

func (m *MemoryStore) DeleteSnapshot(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.snapshots[id]; !ok {
		return &models.NotFoundError{Entity: "Financial snapshot", ID: id}
	}
	delete(m.snapshots, id)
	return nil
}

func (m *MemoryStore) ListLatestSnapshots(_ context.Context) ([]models.LatestSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailLatest != nil {
		return nil, m.FailLatest
	}

	latest := map[int64]models.FinancialSnapshot{}
	for _, s := range m.snapshots {
		cur, ok := latest[s.CompanyID]
		if !ok || s.SnapshotDate.After(cur.SnapshotDate) || (s.SnapshotDate.Equal(cur.SnapshotDate) && s.ID > cur.ID) {
			latest[s.CompanyID] = s
		}
	}

	out := []models.LatestSnapshot{}
	for companyID, s := range latest {
		c := m.companies[companyID]
		u := m.users[c.UserID]
		out = append(out, models.LatestSnapshot{
			CompanyName: c.Name,
			OwnerName:   u.Name,
			OwnerEmail:  u.Email,
			Snapshot:    s,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Snapshot.CompanyID < out[j].Snapshot.CompanyID })
	return out, nil
}

func (m *MemoryStore) CreateScenario(_ context.Context, h *models.HireScenario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h.ID, h.CreatedAt = m.tick()
	storeScenarioAmounts(h)
	m.scenarios[h.ID] = *h
	return nil
}

func (m *MemoryStore) ListScenarios(_ context.Context, companyID int64) ([]models.HireScenario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.HireScenario{}
	for _, h := range m.scenarios {
		if h.CompanyID == companyID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MemoryStore) FindScenario(_ context.Context, scenarioID, userID int64) (*models.HireScenario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.scenarios[scenarioID]
	if !ok || !m.ownedBy(h.CompanyID, userID) {
		return nil, &models.NotFoundError{Entity: "Hire scenario", ID: scenarioID}
	}
	return &h, nil
}

func (m *MemoryStore) UpdateScenario(_ context.Context, h *models.HireScenario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.scenarios[h.ID]; !ok {
		return &models.NotFoundError{Entity: "Hire scenario", ID: h.ID}
	}
	storeScenarioAmounts(h)
	m.scenarios[h.ID] = *h
	return nil
}

func (m *MemoryStore) DeleteScenario(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.scenarios[id]; !ok {
		return &models.NotFoundError{Entity: "Hire scenario", ID: id}
	}
	delete(m.scenarios, id)
	return nil
}
