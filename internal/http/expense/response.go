package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/expense"
)

type expenseResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Date       time.Time  `json:"date"`
	Amount     int64      `json:"amount"`
	ReceiptRef string     `json:"receipt_ref"`
	MissionID  uuid.UUID  `json:"mission_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:         e.ID,
		Name:       e.Name,
		Date:       e.Date,
		Amount:     e.Amount,
		ReceiptRef: e.ReceiptRef,
		MissionID:  e.MissionID,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toResponses(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}
