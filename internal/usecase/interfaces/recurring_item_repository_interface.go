package interfaces

import (
	"context"
	"errors"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored item no longer has
// the expected version (another writer got there first, or it was deleted).
var ErrVersionConflict = errors.New("recurring item version conflict")

// IRecurringItemRepository abstracts the document store holding recurring
// items. Every query is partitioned by owner space.
//
// GetByID returns the zero RecurringItem (empty ID) when nothing matches.

type IRecurringItemRepository interface {
	Create(ctx context.Context, item entities.RecurringItem) (entities.RecurringItem, error)
	GetByID(ctx context.Context, ownerSpaceID, id string) (entities.RecurringItem, error)
	Save(ctx context.Context, item entities.RecurringItem, expectedVersion int64) (entities.RecurringItem, error)
	Delete(ctx context.Context, ownerSpaceID, id string) (bool, error)
	ListBySpace(ctx context.Context, ownerSpaceID string) ([]entities.RecurringItem, error)
	ListDue(ctx context.Context, ownerSpaceID string, ref calendar.Date) ([]entities.RecurringItem, error)
	ListAllDue(ctx context.Context, ref calendar.Date) ([]entities.RecurringItem, error)
}
