package interfaces

import (
	"context"

	"recurring_finance/internal/domain/entities"
)

// ILedgerPublisher hands a firing to the external ledger, which materializes
// it as a realized transaction.
type ILedgerPublisher interface {
	PublishFiring(ctx context.Context, firing entities.Firing) error
}
