package rubric

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/activity"
	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/rubric"
)

type Handler struct {
	svc         *rubric.Service
	activitySvc *activity.Service
}

func NewHandler(svc *rubric.Service, activitySvc *activity.Service) *Handler {
	return &Handler{svc: svc, activitySvc: activitySvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/summary", h.summary)
	r.Get("/{id}/activities", h.listActivities)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createRubricRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Budget      int64  `json:"budget"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRubricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	rub, err := h.svc.Create(r.Context(), rubric.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(rub))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	rubrics, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]rubricResponse, len(rubrics))
	for i, rub := range rubrics {
		resp[i] = toResponse(rub)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, rubric.ErrNotFound) {
			http.Error(w, "rubric not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(rub))
}

// summary returns the rubric rolled up with its activities.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, rubric.ErrNotFound) {
			http.Error(w, "rubric not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	activities, err := h.activitySvc.ListByRubric(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(budget.RubricRollup(*rub, activities)))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	activities, err := h.activitySvc.ListByRubric(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toActivityResponses(activities))
}

type updateRubricRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Budget      *int64  `json:"budget,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRubricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, rubric.ErrNotFound) {
			http.Error(w, "rubric not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		rub.Name = *req.Name
	}

	if req.Description != nil {
		rub.Description = *req.Description
	}

	if req.Budget != nil {
		rub.Budget = *req.Budget
	}

	if err := h.svc.Update(r.Context(), rub); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(rub))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, rubric.ErrHasDocuments):
			http.Error(w, "rubric has attached documents", http.StatusConflict)
		case errors.Is(err, rubric.ErrNotFound):
			http.Error(w, "rubric not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

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
