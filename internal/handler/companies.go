package handler

import "net/http"

type companyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CreateCompany handles company creation
func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if !h.decode(w, r, &req) {
		return
	}
	company, err := h.svc.CreateCompany(r.Context(), userID(r), req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, company)
}

// ListCompanies returns the caller's companies
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.ListCompanies(r.Context(), userID(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

// GetCompany returns one of the caller's companies
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "company_id")
	if !ok {
		return
	}
	company, err := h.svc.GetCompany(r.Context(), userID(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}
