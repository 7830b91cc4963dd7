package entities

import (
	"time"

	"recurring_finance/internal/domain/calendar"

	"github.com/shopspring/decimal"
)

// Firing is the event handed to the ledger when a due item is executed.
// The ledger turns it into a realized transaction.
type Firing struct {
	ItemID         string          `json:"item_id"`
	OwnerSpaceID   string          `json:"owner_space_id"`
	AccountID      string          `json:"account_id"`
	CategoryID     string          `json:"category_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Kind           Kind            `json:"kind"`
	Note           string          `json:"note,omitempty"`
	OccurrenceDate calendar.Date   `json:"occurrence_date"`
	FiredAt        time.Time       `json:"fired_at"`
	ActorID        string          `json:"actor_id"`
}

// NewFiring builds the ledger event for the item's current occurrence.
func NewFiring(item RecurringItem, actorID string, firedAt time.Time) Firing {
	return Firing{
		ItemID:         item.ID,
		OwnerSpaceID:   item.OwnerSpaceID,
		AccountID:      item.AccountID,
		CategoryID:     item.CategoryID,
		Amount:         item.Amount,
		Kind:           item.Kind,
		Note:           item.Note,
		OccurrenceDate: item.NextExecutionDate,
		FiredAt:        firedAt.UTC(),
		ActorID:        actorID,
	}
}
