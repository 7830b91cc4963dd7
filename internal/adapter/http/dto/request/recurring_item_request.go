package request

import (
	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateRecurringItemRequest is the body of POST /recurring-items.
// Amount accepts a JSON string ("49.90") or number.
type CreateRecurringItemRequest struct {
	AccountID  string          `json:"account_id"`
	CategoryID string          `json:"category_id"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"49.90"`
	Kind       string          `json:"kind" example:"expense"`
	Frequency  string          `json:"frequency" example:"monthly"`
	StartDate  *calendar.Date  `json:"start_date" swaggertype:"string" example:"2024-01-31"`
	EndDate    *calendar.Date  `json:"end_date" swaggertype:"string"`
	Note       string          `json:"note" binding:"max=500"`
}

func (r CreateRecurringItemRequest) ToInput() usecase.CreateRecurringItemInput {
	return usecase.CreateRecurringItemInput{
		AccountID:  r.AccountID,
		CategoryID: r.CategoryID,
		Amount:     r.Amount,
		Kind:       r.Kind,
		Frequency:  r.Frequency,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Note:       r.Note,
	}
}

// UpdateRecurringItemRequest is the body of PATCH /recurring-items/:id.
// Absent fields are left unchanged; a JSON null cannot be told apart from an
// absent field, so removing the end date takes clear_end_date.
type UpdateRecurringItemRequest struct {
	AccountID    *string          `json:"account_id"`
	CategoryID   *string          `json:"category_id"`
	Amount       *decimal.Decimal `json:"amount" swaggertype:"string"`
	Kind         *string          `json:"kind"`
	Frequency    *string          `json:"frequency"`
	StartDate    *calendar.Date   `json:"start_date" swaggertype:"string"`
	EndDate      *calendar.Date   `json:"end_date" swaggertype:"string"`
	ClearEndDate bool             `json:"clear_end_date"`
	Note         *string          `json:"note" binding:"omitempty,max=500"`
}

func (r UpdateRecurringItemRequest) ToInput() usecase.UpdateRecurringItemInput {
	return usecase.UpdateRecurringItemInput{
		AccountID:    r.AccountID,
		CategoryID:   r.CategoryID,
		Amount:       r.Amount,
		Kind:         r.Kind,
		Frequency:    r.Frequency,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		ClearEndDate: r.ClearEndDate,
		Note:         r.Note,
	}
}

// MarkExecutedRequest is the optional body of POST /recurring-items/:id/execute.
type MarkExecutedRequest struct {
	ExecutionDate *calendar.Date `json:"execution_date" swaggertype:"string" example:"2024-04-30"`
}
