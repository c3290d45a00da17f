package handler

import (
	"net/http"
	"time"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/shopspring/decimal"
)

type scenarioCreateRequest struct {
	RoleTitle       string           `json:"role_title" validate:"required,min=1,max=200"`
	MonthlySalary   *decimal.Decimal `json:"monthly_salary" validate:"required,decimal_gte0,decimal_max"`
	MonthlyBenefits *decimal.Decimal `json:"monthly_benefits" validate:"required,decimal_gte0,decimal_max"`
	MonthlyOverhead *decimal.Decimal `json:"monthly_overhead" validate:"required,decimal_gte0,decimal_max"`
	StartDate       *time.Time       `json:"start_date" validate:"required"`
}

type scenarioUpdateRequest struct {
	RoleTitle       *string          `json:"role_title" validate:"omitempty,min=1,max=200"`
	MonthlySalary   *decimal.Decimal `json:"monthly_salary" validate:"omitempty,decimal_gte0,decimal_max"`
	MonthlyBenefits *decimal.Decimal `json:"monthly_benefits" validate:"omitempty,decimal_gte0,decimal_max"`
	MonthlyOverhead *decimal.Decimal `json:"monthly_overhead" validate:"omitempty,decimal_gte0,decimal_max"`
	StartDate       *time.Time       `json:"start_date"`
}

// CreateScenario handles hire scenario creation for ?company_id=
func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDQuery(w, r)
	if !ok {
		return
	}
	var req scenarioCreateRequest
	if !h.decode(w, r, &req) {
		return
	}

	scenario := &models.HireScenario{
		CompanyID:       companyID,
		RoleTitle:       req.RoleTitle,
		MonthlySalary:   *req.MonthlySalary,
		MonthlyBenefits: *req.MonthlyBenefits,
		MonthlyOverhead: *req.MonthlyOverhead,
		StartDate:       *req.StartDate,
	}
	if err := h.svc.CreateScenario(r.Context(), userID(r), scenario); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, scenario)
}

// ListScenarios returns the hire scenarios of ?company_id=, newest first
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDQuery(w, r)
	if !ok {
		return
	}
	scenarios, err := h.svc.ListScenarios(r.Context(), userID(r), companyID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scenarios)
}

// GetScenario returns one hire scenario
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "scenario_id")
	if !ok {
		return
	}
	scenario, err := h.svc.GetScenario(r.Context(), userID(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scenario)
}

// UpdateScenario applies a partial update
func (h *Handler) UpdateScenario(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "scenario_id")
	if !ok {
		return
	}
	var req scenarioUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}
	scenario, err := h.svc.UpdateScenario(r.Context(), userID(r), id, models.ScenarioUpdate{
		RoleTitle:       req.RoleTitle,
		MonthlySalary:   req.MonthlySalary,
		MonthlyBenefits: req.MonthlyBenefits,
		MonthlyOverhead: req.MonthlyOverhead,
		StartDate:       req.StartDate,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scenario)
}

// DeleteScenario removes a hire scenario
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "scenario_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteScenario(r.Context(), userID(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
