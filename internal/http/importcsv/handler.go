package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/importer"
)

type Handler struct {
	importSvc  *importer.Service
	expenseSvc *expense.Service
}

func NewHandler(importSvc *importer.Service, expenseSvc *expense.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		expenseSvc: expenseSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/confirm", h.confirmImport)
}

type expenseResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Amount     int64     `json:"amount"`
	ReceiptRef string    `json:"receipt_ref"`
	MissionID  uuid.UUID `json:"mission_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type importSuccessResponse struct {
	Imported int               `json:"imported"`
	Expenses []expenseResponse `json:"expenses"`
}

type createParamsDTO struct {
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Amount     int64     `json:"amount"`
	ReceiptRef string    `json:"receipt_ref"`
}

type conflictDTO struct {
	Incoming createParamsDTO `json:"incoming"`
	Existing expenseResponse `json:"existing"`
}

type importConflictResponse struct {
	New       []createParamsDTO `json:"new"`
	Conflicts []conflictDTO     `json:"conflicts"`
}

type confirmRequest struct {
	MissionID uuid.UUID         `json:"mission_id"`
	Params    []createParamsDTO `json:"params"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	bank := importer.Bank(r.FormValue("bank"))
	if bank == "" {
		http.Error(w, "bank field is required", http.StatusBadRequest)
		return
	}

	missionID, err := uuid.Parse(r.FormValue("mission_id"))
	if err != nil {
		http.Error(w, "mission_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(bank, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.expenseSvc.ImportBatch(r.Context(), missionID, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := importConflictResponse{
			New:       make([]createParamsDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}
		for _, p := range result.New {
			resp.New = append(resp.New, toParamsDTO(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toParamsDTO(c.Incoming),
				Existing: toExpenseResponse(c.Existing),
			})
		}

		writeJSON(w, http.StatusConflict, resp)

		return
	}

	writeJSON(w, http.StatusCreated, toSuccessResponse(result.Imported))
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.MissionID == uuid.Nil {
		http.Error(w, "mission_id is required", http.StatusBadRequest)
		return
	}

	params := make([]expense.CreateParams, 0, len(req.Params))
	for _, p := range req.Params {
		params = append(params, expense.CreateParams{
			Name:       p.Name,
			Date:       p.Date,
			Amount:     p.Amount,
			ReceiptRef: p.ReceiptRef,
		})
	}

	expenses, err := h.expenseSvc.CreateBatch(r.Context(), req.MissionID, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toSuccessResponse(expenses))
}

func toSuccessResponse(expenses []*expense.Expense) importSuccessResponse {
	responses := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}

	return importSuccessResponse{
		Imported: len(expenses),
		Expenses: responses,
	}
}

func toExpenseResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:         e.ID,
		Name:       e.Name,
		Date:       e.Date,
		Amount:     e.Amount,
		ReceiptRef: e.ReceiptRef,
		MissionID:  e.MissionID,
		CreatedAt:  e.CreatedAt,
	}
}

func toParamsDTO(p expense.CreateParams) createParamsDTO {
	return createParamsDTO{
		Name:       p.Name,
		Date:       p.Date,
		Amount:     p.Amount,
		ReceiptRef: p.ReceiptRef,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
