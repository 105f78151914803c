package mission

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/mission"
)

type Handler struct {
	svc        *mission.Service
	expenseSvc *expense.Service
}

func NewHandler(svc *mission.Service, expenseSvc *expense.Service) *Handler {
	return &Handler{svc: svc, expenseSvc: expenseSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/expenses", h.listExpenses)
	r.Patch("/{id}/status", h.updateStatus)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createMissionRequest struct {
	Missionnaire string              `json:"missionnaire"`
	Reference    string              `json:"reference"`
	DateStart    time.Time           `json:"date_start"`
	DateEnd      time.Time           `json:"date_end"`
	RatePerDay   int64               `json:"rate_per_day"`
	DayCount     int                 `json:"day_count"`
	PaymentMode  mission.PaymentMode `json:"payment_mode"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Missionnaire == "" {
		http.Error(w, "missionnaire is required", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Create(r.Context(), mission.CreateParams{
		Missionnaire: req.Missionnaire,
		Reference:    req.Reference,
		DateStart:    req.DateStart,
		DateEnd:      req.DateEnd,
		RatePerDay:   req.RatePerDay,
		DayCount:     req.DayCount,
		PaymentMode:  req.PaymentMode,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(m))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := mission.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.ValidationStatus = new(mission.ValidationStatus(s))
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	missions, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(missions))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, mission.ErrNotFound) {
			http.Error(w, "mission not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(m))
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	expenses, err := h.expenseSvc.ListByMission(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponses(expenses))
}

type updateStatusRequest struct {
	Status mission.ValidationStatus `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateValidationStatus(r.Context(), id, req.Status); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateMissionRequest struct {
	Missionnaire *string              `json:"missionnaire,omitempty"`
	Reference    *string              `json:"reference,omitempty"`
	DateStart    *time.Time           `json:"date_start,omitempty"`
	DateEnd      *time.Time           `json:"date_end,omitempty"`
	RatePerDay   *int64               `json:"rate_per_day,omitempty"`
	DayCount     *int                 `json:"day_count,omitempty"`
	PaymentMode  *mission.PaymentMode `json:"payment_mode,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, mission.ErrNotFound) {
			http.Error(w, "mission not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Missionnaire != nil {
		m.Missionnaire = *req.Missionnaire
	}

	if req.Reference != nil {
		m.Reference = *req.Reference
	}

	if req.DateStart != nil {
		m.DateStart = *req.DateStart
	}

	if req.DateEnd != nil {
		m.DateEnd = *req.DateEnd
	}

	if req.RatePerDay != nil {
		m.RatePerDay = *req.RatePerDay
	}

	if req.DayCount != nil {
		m.DayCount = *req.DayCount
	}

	if req.PaymentMode != nil {
		m.PaymentMode = *req.PaymentMode
	}

	if err := h.svc.Update(r.Context(), m); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(m))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, mission.ErrNotFound) {
			http.Error(w, "mission not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
