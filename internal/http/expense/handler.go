package expense

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/expense"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createExpenseRequest struct {
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Amount     int64     `json:"amount"`
	ReceiptRef string    `json:"receipt_ref"`
	MissionID  uuid.UUID `json:"mission_id"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Create(r.Context(), expense.CreateParams{
		Name:       req.Name,
		Date:       req.Date,
		Amount:     req.Amount,
		ReceiptRef: req.ReceiptRef,
		MissionID:  req.MissionID,
	})
	if err != nil {
		if errors.Is(err, expense.ErrReceiptRequired) {
			http.Error(w, "receipt_ref is required", http.StatusBadRequest)
			return
		}

		if errors.Is(err, expense.ErrMissingMission) {
			http.Error(w, "mission_id is required", http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expenses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponses(expenses))
}

func parseListFilter(r *http.Request) (expense.ListFilter, error) {
	var filter expense.ListFilter

	if s := r.URL.Query().Get("mission_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, errors.New("invalid mission_id")
		}

		filter.MissionID = &id
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, errors.New("invalid start_date")
		}

		filter.StartDate = &t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, errors.New("invalid end_date")
		}

		filter.EndDate = &t
	}

	return filter, nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

type updateExpenseRequest struct {
	Name       *string    `json:"name,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Amount     *int64     `json:"amount,omitempty"`
	ReceiptRef *string    `json:"receipt_ref,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		e.Name = *req.Name
	}

	if req.Date != nil {
		e.Date = *req.Date
	}

	if req.Amount != nil {
		e.Amount = *req.Amount
	}

	if req.ReceiptRef != nil {
		e.ReceiptRef = *req.ReceiptRef
	}

	if err := h.svc.Update(r.Context(), e); err != nil {
		if errors.Is(err, expense.ErrReceiptRequired) {
			http.Error(w, "receipt_ref is required", http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
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
