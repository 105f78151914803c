package activity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/activity"
)

type Handler struct {
	svc *activity.Service
}

func NewHandler(svc *activity.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/status", h.updateStatus)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createActivityRequest struct {
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	PlannedBudget  int64           `json:"planned_budget"`
	ConsumedBudget int64           `json:"consumed_budget"`
	Status         activity.Status `json:"status"`
	RubricID       uuid.UUID       `json:"rubric_id"`
	MissionID      uuid.UUID       `json:"mission_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), activity.CreateParams{
		Title:          req.Title,
		Description:    req.Description,
		PlannedBudget:  req.PlannedBudget,
		ConsumedBudget: req.ConsumedBudget,
		Status:         req.Status,
		RubricID:       req.RubricID,
		MissionID:      req.MissionID,
	})
	if err != nil {
		if errors.Is(err, activity.ErrMissingParent) {
			http.Error(w, "rubric_id and mission_id are required", http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponses(activities))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, activity.ErrNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(a))
}

type updateStatusRequest struct {
	Status activity.Status `json:"status"`
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

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateActivityRequest struct {
	Title          *string          `json:"title,omitempty"`
	Description    *string          `json:"description,omitempty"`
	PlannedBudget  *int64           `json:"planned_budget,omitempty"`
	ConsumedBudget *int64           `json:"consumed_budget,omitempty"`
	Status         *activity.Status `json:"status,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, activity.ErrNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Title != nil {
		a.Title = *req.Title
	}

	if req.Description != nil {
		a.Description = *req.Description
	}

	if req.PlannedBudget != nil {
		a.PlannedBudget = *req.PlannedBudget
	}

	if req.ConsumedBudget != nil {
		a.ConsumedBudget = *req.ConsumedBudget
	}

	if req.Status != nil {
		a.Status = *req.Status
	}

	if err := h.svc.Update(r.Context(), a); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, activity.ErrNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
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
