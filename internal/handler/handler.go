package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Dan9191/runway-service/internal/middleware"
	"github.com/Dan9191/runway-service/internal/models"
	"github.com/Dan9191/runway-service/internal/runway"
	"github.com/Dan9191/runway-service/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc      *service.Service
	log      *logrus.Logger
	validate *validator.Validate
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log, validate: newValidator()}
}

type errorResponse struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// fail maps service and domain errors onto HTTP status codes
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var nf *models.NotFoundError
	switch {
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Entity+" not found")
	case errors.Is(err, runway.ErrInvalidAmount),
		errors.Is(err, runway.ErrEmptyRoleTitle),
		errors.Is(err, service.ErrCompanyMismatch),
		errors.Is(err, service.ErrPasswordTooLong):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrDuplicate):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Incorrect email or password")
	default:
		h.log.WithField("request_id", middleware.RequestIDFromContext(r.Context())).
			Errorf("Request failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decode reads a JSON body into dst and validates it. Unknown fields are
// ignored. It writes the error response itself and reports whether the
// handler should continue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Detail: "Validation failed",
			Errors: validationErrors(err),
		})
		return false
	}
	return true
}

func userID(r *http.Request) int64 {
	id, _ := middleware.UserIDFromContext(r.Context())
	return id
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func companyIDQuery(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("company_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "company_id query parameter is required")
		return 0, false
	}
	return id, true
}

// Root describes the service
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":        "Runway API",
		"description": "Hiring decision intelligence for startup founders",
		"health":      "/health",
		"metrics":     "/metrics",
	})
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
