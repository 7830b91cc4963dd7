package response

import (
	"time"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type RecurringItemResponse struct {
	ID                string          `json:"id"`
	OwnerSpaceID      string          `json:"owner_space_id"`
	AccountID         string          `json:"account_id"`
	CategoryID        string          `json:"category_id,omitempty"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"string" example:"49.9"`
	Kind              string          `json:"kind"`
	Frequency         string          `json:"frequency"`
	StartDate         calendar.Date   `json:"start_date" swaggertype:"string"`
	EndDate           *calendar.Date  `json:"end_date" swaggertype:"string"`
	LastExecutedDate  *calendar.Date  `json:"last_executed_date" swaggertype:"string"`
	NextExecutionDate calendar.Date   `json:"next_execution_date" swaggertype:"string"`
	IsActive          bool            `json:"is_active"`
	Status            string          `json:"status" example:"active"`
	Note              string          `json:"note,omitempty"`
	CreatedBy         string          `json:"created_by"`
	UpdatedBy         string          `json:"updated_by"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromRecurringItem(item entities.RecurringItem) RecurringItemResponse {
	return RecurringItemResponse{
		ID:                item.ID,
		OwnerSpaceID:      item.OwnerSpaceID,
		AccountID:         item.AccountID,
		CategoryID:        item.CategoryID,
		Amount:            item.Amount,
		Kind:              string(item.Kind),
		Frequency:         string(item.Frequency),
		StartDate:         item.StartDate,
		EndDate:           item.EndDate,
		LastExecutedDate:  item.LastExecutedDate,
		NextExecutionDate: item.NextExecutionDate,
		IsActive:          item.IsActive,
		Status:            string(item.Status()),
		Note:              item.Note,
		CreatedBy:         item.CreatedBy,
		UpdatedBy:         item.UpdatedBy,
		Version:           item.Version,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

// FromRecurringItems never returns nil, so an empty list renders as [].
func FromRecurringItems(items []entities.RecurringItem) []RecurringItemResponse {
	out := make([]RecurringItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromRecurringItem(item))
	}
	return out
}

type SummaryResponse struct {
	OwnerSpaceID string          `json:"owner_space_id"`
	AsOf         calendar.Date   `json:"as_of" swaggertype:"string"`
	Expenses     decimal.Decimal `json:"monthly_expenses" swaggertype:"string"`
	Income       decimal.Decimal `json:"monthly_income" swaggertype:"string"`
	Net          decimal.Decimal `json:"net" swaggertype:"string"`
	DueToday     int             `json:"due_today"`
	ActiveCount  int             `json:"active_count"`
}

func FromSummary(s entities.MonthlySummary) SummaryResponse {
	return SummaryResponse{
		OwnerSpaceID: s.OwnerSpaceID,
		AsOf:         s.AsOf,
		Expenses:     s.Expenses.Round(2),
		Income:       s.Income.Round(2),
		Net:          s.Net.Round(2),
		DueToday:     s.DueToday,
		ActiveCount:  s.ActiveCount,
	}
}

type ExecutionFailureResponse struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

type ExecutionReportResponse struct {
	ReferenceDate calendar.Date              `json:"reference_date" swaggertype:"string"`
	Executed      []RecurringItemResponse    `json:"executed"`
	Failed        []ExecutionFailureResponse `json:"failed"`
}

func FromExecutionReport(r entities.ExecutionReport) ExecutionReportResponse {
	failed := make([]ExecutionFailureResponse, 0, len(r.Failed))
	for _, f := range r.Failed {
		failed = append(failed, ExecutionFailureResponse{ItemID: f.ItemID, Reason: f.Reason})
	}
	return ExecutionReportResponse{
		ReferenceDate: r.ReferenceDate,
		Executed:      FromRecurringItems(r.Executed),
		Failed:        failed,
	}
}
