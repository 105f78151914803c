package document

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/document"
)

type Handler struct {
	svc *document.Service
}

func NewHandler(svc *document.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.listByRubric)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
}

type createDocumentRequest struct {
	Title      string     `json:"title"`
	FileRef    string     `json:"file_ref"`
	RubricID   uuid.UUID  `json:"rubric_id"`
	MissionID  *uuid.UUID `json:"mission_id,omitempty"`
	ActivityID *uuid.UUID `json:"activity_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Create(r.Context(), document.CreateParams{
		Title:      req.Title,
		FileRef:    req.FileRef,
		RubricID:   req.RubricID,
		MissionID:  req.MissionID,
		ActivityID: req.ActivityID,
	})
	if err != nil {
		if errors.Is(err, document.ErrMissingRubric) {
			http.Error(w, "rubric_id is required", http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(d))
}

func (h *Handler) listByRubric(w http.ResponseWriter, r *http.Request) {
	rubricID, err := uuid.Parse(r.URL.Query().Get("rubric_id"))
	if err != nil {
		http.Error(w, "rubric_id is required", http.StatusBadRequest)
		return
	}

	documents, err := h.svc.ListByRubric(r.Context(), rubricID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]documentResponse, len(documents))
	for i, d := range documents {
		resp[i] = toResponse(d)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(d))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			http.Error(w, "document not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type documentResponse struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	FileRef    string     `json:"file_ref"`
	RubricID   uuid.UUID  `json:"rubric_id"`
	MissionID  *uuid.UUID `json:"mission_id,omitempty"`
	ActivityID *uuid.UUID `json:"activity_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toResponse(d *document.Document) documentResponse {
	return documentResponse{
		ID:         d.ID,
		Title:      d.Title,
		FileRef:    d.FileRef,
		RubricID:   d.RubricID,
		MissionID:  d.MissionID,
		ActivityID: d.ActivityID,
		CreatedAt:  d.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
