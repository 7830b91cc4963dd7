package usecase

import (
	"context"
	"fmt"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/domain/schedule"
)

// ExecuteDue fires every item of the space that is due as of ref (today when
// nil). Each firing is published to the ledger first and the item is advanced
// only once the ledger accepted it, so a ledger outage leaves the item due for
// the next run. A failure on one item never stops the others.
func (u *RecurringItemUseCase) ExecuteDue(ctx context.Context, scope entities.Scope, ref *calendar.Date) (entities.ExecutionReport, error) {
	due, err := u.Due(ctx, scope, ref)
	if err != nil {
		return entities.ExecutionReport{}, err
	}
	return u.execute(ctx, due, scope.ActorID, u.referenceDate(ref)), nil
}

// ExecuteAllDue is the scheduler entry point: it sweeps every space.
func (u *RecurringItemUseCase) ExecuteAllDue(ctx context.Context) (entities.ExecutionReport, error) {
	today := u.clock.Today()

	candidates, err := u.repo.ListAllDue(ctx, today)
	if err != nil {
		return entities.ExecutionReport{}, fmt.Errorf("list all due items: %w", err)
	}
	due := schedule.DueItems(candidates, today)
	schedule.SortByNextExecution(due)

	return u.execute(ctx, due, entities.SchedulerActorID, today), nil
}

func (u *RecurringItemUseCase) execute(ctx context.Context, items []entities.RecurringItem, actorID string, ref calendar.Date) entities.ExecutionReport {
	report := entities.ExecutionReport{ReferenceDate: ref}

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			report.Failed = append(report.Failed, failure(item, err))
			continue
		}

		// Catch-up is one occurrence per run: the execution date is the
		// occurrence being fired, not the run date.
		occurrence := item.NextExecutionDate
		if _, err := schedule.NextAfterExecution(occurrence, item.Frequency); err != nil {
			report.Failed = append(report.Failed, failure(item, fmt.Errorf("execute %s: %w", item.ID, err)))
			continue
		}
		if err := u.ledger.PublishFiring(ctx, entities.NewFiring(item, actorID, u.now())); err != nil {
			u.logger.Error("publish firing failed",
				"owner_space_id", item.OwnerSpaceID, "item_id", item.ID,
				"occurrence_date", occurrence.String(), "error", err)
			report.Failed = append(report.Failed, failure(item, err))
			continue
		}

		itemScope := entities.Scope{OwnerSpaceID: item.OwnerSpaceID, ActorID: actorID}
		executed, err := u.markExecuted(ctx, itemScope, item.ID, &occurrence, &occurrence)
		if err != nil {
			// The firing is already out; the ledger deduplicates on
			// item_id + occurrence_date if this occurrence is fired again.
			u.logger.Error("mark executed failed after firing",
				"owner_space_id", item.OwnerSpaceID, "item_id", item.ID,
				"occurrence_date", occurrence.String(), "error", err)
			report.Failed = append(report.Failed, failure(item, err))
			continue
		}
		report.Executed = append(report.Executed, executed)
	}

	u.logger.Info("due items executed",
		"reference_date", ref.String(),
		"actor_id", actorID,
		"executed", len(report.Executed),
		"failed", len(report.Failed),
	)
	return report
}

func failure(item entities.RecurringItem, err error) entities.ExecutionFailure {
	return entities.ExecutionFailure{
		ItemID:       item.ID,
		OwnerSpaceID: item.OwnerSpaceID,
		Reason:       err.Error(),
	}
}
