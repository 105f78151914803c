package mission

import (
	"time"

	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/mission"
)

type missionResponse struct {
	ID               uuid.UUID                `json:"id"`
	Missionnaire     string                   `json:"missionnaire"`
	Reference        string                   `json:"reference,omitempty"`
	DateStart        time.Time                `json:"date_start"`
	DateEnd          time.Time                `json:"date_end"`
	RatePerDay       int64                    `json:"rate_per_day"`
	DayCount         int                      `json:"day_count"`
	Total            int64                    `json:"total"`
	PaymentMode      mission.PaymentMode      `json:"payment_mode"`
	ValidationStatus mission.ValidationStatus `json:"validation_status"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        *time.Time               `json:"updated_at,omitempty"`
}

// Total is recomputed here on every response; it is never read from
// storage.
func toResponse(m *mission.Mission) missionResponse {
	return missionResponse{
		ID:               m.ID,
		Missionnaire:     m.Missionnaire,
		Reference:        m.Reference,
		DateStart:        m.DateStart,
		DateEnd:          m.DateEnd,
		RatePerDay:       m.RatePerDay,
		DayCount:         m.DayCount,
		Total:            budget.MissionTotal(*m),
		PaymentMode:      m.PaymentMode,
		ValidationStatus: m.ValidationStatus,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toResponseList(missions []*mission.Mission) []missionResponse {
	resp := make([]missionResponse, len(missions))
	for i, m := range missions {
		resp[i] = toResponse(m)
	}

	return resp
}

type expenseResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	Amount     int64     `json:"amount"`
	ReceiptRef string    `json:"receipt_ref"`
}

func toExpenseResponses(expenses []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = expenseResponse{
			ID:         e.ID,
			Name:       e.Name,
			Date:       e.Date,
			Amount:     e.Amount,
			ReceiptRef: e.ReceiptRef,
		}
	}

	return resp
}
