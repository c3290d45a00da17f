package handler

import (
	"net/http"
	"time"

	"github.com/Dan9191/runway-service/internal/models"
	"github.com/shopspring/decimal"
)

type snapshotCreateRequest struct {
	CurrentCash     *decimal.Decimal `json:"current_cash" validate:"required,decimal_gt0,decimal_max"`
	MonthlyRevenue  *decimal.Decimal `json:"monthly_revenue" validate:"required,decimal_gte0,decimal_max"`
	MonthlyExpenses *decimal.Decimal `json:"monthly_expenses" validate:"required,decimal_gte0,decimal_max"`
	SnapshotDate    *time.Time       `json:"snapshot_date"`
}

type snapshotUpdateRequest struct {
	CurrentCash     *decimal.Decimal `json:"current_cash" validate:"omitempty,decimal_gt0,decimal_max"`
	MonthlyRevenue  *decimal.Decimal `json:"monthly_revenue" validate:"omitempty,decimal_gte0,decimal_max"`
	MonthlyExpenses *decimal.Decimal `json:"monthly_expenses" validate:"omitempty,decimal_gte0,decimal_max"`
	SnapshotDate    *time.Time       `json:"snapshot_date"`
}

// CreateSnapshot handles financial snapshot creation for ?company_id=
func (h *Handler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDQuery(w, r)
	if !ok {
		return
	}
	var req snapshotCreateRequest
	if !h.decode(w, r, &req) {
		return
	}

	snapshot := &models.FinancialSnapshot{
		CompanyID:       companyID,
		CurrentCash:     *req.CurrentCash,
		MonthlyRevenue:  *req.MonthlyRevenue,
		MonthlyExpenses: *req.MonthlyExpenses,
	}
	if req.SnapshotDate != nil {
		snapshot.SnapshotDate = *req.SnapshotDate
	}
	if err := h.svc.CreateSnapshot(r.Context(), userID(r), snapshot); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, snapshot)
}

// ListSnapshots returns the snapshots of ?company_id=, newest first
func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyIDQuery(w, r)
	if !ok {
		return
	}
	snapshots, err := h.svc.ListSnapshots(r.Context(), userID(r), companyID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshots)
}

// GetSnapshot returns one snapshot
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "snapshot_id")
	if !ok {
		return
	}
	snapshot, err := h.svc.GetSnapshot(r.Context(), userID(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// UpdateSnapshot applies a partial update
func (h *Handler) UpdateSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "snapshot_id")
	if !ok {
		return
	}
	var req snapshotUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}
	snapshot, err := h.svc.UpdateSnapshot(r.Context(), userID(r), id, models.SnapshotUpdate{
		CurrentCash:     req.CurrentCash,
		MonthlyRevenue:  req.MonthlyRevenue,
		MonthlyExpenses: req.MonthlyExpenses,
		SnapshotDate:    req.SnapshotDate,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// DeleteSnapshot removes a snapshot
func (h *Handler) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "snapshot_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSnapshot(r.Context(), userID(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
