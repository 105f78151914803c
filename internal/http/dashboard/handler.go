package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/dashboard"
)

const defaultMonthsBack = 6

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.overview)
	r.Get("/counts", h.counts)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	monthsBack := defaultMonthsBack

	if s := r.URL.Query().Get("months"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			http.Error(w, "invalid months", http.StatusBadRequest)
			return
		}

		monthsBack = n
	}

	order := budget.SortAscending
	if r.URL.Query().Get("order") == "desc" {
		order = budget.SortDescending
	}

	ov, err := h.svc.Overview(r.Context(), monthsBack, order)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toOverviewResponse(ov))
}

func (h *Handler) counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toCountsResponse(counts))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
