package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"recurring_finance/internal/domain/calendar"
	"recurring_finance/internal/domain/entities"
	"recurring_finance/internal/domain/schedule"
	"recurring_finance/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultMaxAttempts = 3

// CreateRecurringItemInput is the payload of Create. A nil StartDate means
// "today".
type CreateRecurringItemInput struct {
	AccountID  string
	CategoryID string
	Amount     decimal.Decimal
	Kind       string
	Frequency  string
	StartDate  *calendar.Date
	EndDate    *calendar.Date
	Note       string
}

// UpdateRecurringItemInput is a partial update: nil fields are left alone.
// ClearEndDate withdraws the end date.
type UpdateRecurringItemInput struct {
	AccountID    *string
	CategoryID   *string
	Amount       *decimal.Decimal
	Kind         *string
	Frequency    *string
	StartDate    *calendar.Date
	EndDate      *calendar.Date
	ClearEndDate bool
	Note         *string
}

func (in UpdateRecurringItemInput) empty() bool {
	return in.AccountID == nil && in.CategoryID == nil && in.Amount == nil && in.Kind == nil &&
		in.Frequency == nil && in.StartDate == nil && in.EndDate == nil && !in.ClearEndDate && in.Note == nil
}

// IRecurringItemUseCase exposes the recurring item lifecycle, the due scan
// and the monthly projection.
//
//   - Create / Update / Reschedule / Delete => item maintenance
//   - MarkExecuted / Pause / Resume => lifecycle transitions
//   - Due / ExecuteDue / ExecuteAllDue => due scanning and execution
//   - Summary => monthly cash-flow projection
type IRecurringItemUseCase interface {
	Create(ctx context.Context, scope entities.Scope, input CreateRecurringItemInput) (entities.RecurringItem, error)
	Update(ctx context.Context, scope entities.Scope, id string, input UpdateRecurringItemInput) (entities.RecurringItem, error)
	Reschedule(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error)
	MarkExecuted(ctx context.Context, scope entities.Scope, id string, executionDate *calendar.Date) (entities.RecurringItem, error)
	Pause(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error)
	Resume(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error)
	Delete(ctx context.Context, scope entities.Scope, id string) error
	GetByID(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error)
	List(ctx context.Context, scope entities.Scope) ([]entities.RecurringItem, error)
	Due(ctx context.Context, scope entities.Scope, ref *calendar.Date) ([]entities.RecurringItem, error)
	Summary(ctx context.Context, scope entities.Scope) (entities.MonthlySummary, error)
	ExecuteDue(ctx context.Context, scope entities.Scope, ref *calendar.Date) (entities.ExecutionReport, error)
	ExecuteAllDue(ctx context.Context) (entities.ExecutionReport, error)
}

type RecurringItemUseCase struct {
	repo        interfaces.IRecurringItemRepository
	ledger      interfaces.ILedgerPublisher
	clock       interfaces.IClock
	cache       interfaces.ISummaryCache
	logger      *slog.Logger
	maxAttempts int
	now         func() time.Time

	// writes counts invalidations so Summary never caches a projection that
	// a concurrent write has already made stale.
	writes atomic.Uint64
}

var _ IRecurringItemUseCase = (*RecurringItemUseCase)(nil)

// NewRecurringItemUseCase wires the use case. cache and logger may be nil.
func NewRecurringItemUseCase(
	repo interfaces.IRecurringItemRepository,
	ledger interfaces.ILedgerPublisher,
	clock interfaces.IClock,
	cache interfaces.ISummaryCache,
	logger *slog.Logger,
) *RecurringItemUseCase {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RecurringItemUseCase{
		repo:        repo,
		ledger:      ledger,
		clock:       clock,
		cache:       cache,
		logger:      logger.With("component", "recurring_item_usecase"),
		maxAttempts: defaultMaxAttempts,
		now:         time.Now,
	}
}

// WithMaxAttempts bounds how many times a transition is retried after a
// version conflict.
func (u *RecurringItemUseCase) WithMaxAttempts(n int) *RecurringItemUseCase {
	if n > 0 {
		u.maxAttempts = n
	}
	return u
}

func (u *RecurringItemUseCase) Create(ctx context.Context, scope entities.Scope, input CreateRecurringItemInput) (entities.RecurringItem, error) {
	if err := validateScope(scope); err != nil {
		return entities.RecurringItem{}, err
	}
	accountID := strings.TrimSpace(input.AccountID)
	if accountID == "" {
		return entities.RecurringItem{}, invalid("account_id", "is required")
	}
	if !input.Amount.IsPositive() {
		return entities.RecurringItem{}, invalid("amount", "must be greater than zero")
	}
	kind, err := entities.ParseKind(input.Kind)
	if err != nil {
		return entities.RecurringItem{}, invalid("kind", err.Error())
	}
	frequency, err := entities.ParseFrequency(input.Frequency)
	if err != nil {
		return entities.RecurringItem{}, invalid("frequency", err.Error())
	}

	today := u.clock.Today()
	start := today
	if input.StartDate != nil && !input.StartDate.IsZero() {
		start = *input.StartDate
	}
	next, err := schedule.AdvanceToOnOrAfter(start, frequency, today)
	if err != nil {
		return entities.RecurringItem{}, fmt.Errorf("create recurring item: %w", err)
	}

	var end *calendar.Date
	if input.EndDate != nil && !input.EndDate.IsZero() {
		e := *input.EndDate
		end = &e
	}

	now := u.now().UTC()
	item := entities.RecurringItem{
		ID:                uuid.NewString(),
		OwnerSpaceID:      strings.TrimSpace(scope.OwnerSpaceID),
		AccountID:         accountID,
		CategoryID:        strings.TrimSpace(input.CategoryID),
		Amount:            input.Amount,
		Kind:              kind,
		Frequency:         frequency,
		StartDate:         start,
		EndDate:           end,
		NextExecutionDate: next,
		IsActive:          end == nil || !next.After(*end),
		Note:              strings.TrimSpace(input.Note),
		CreatedBy:         scope.ActorID,
		UpdatedBy:         scope.ActorID,
		Version:           1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		return entities.RecurringItem{}, fmt.Errorf("create recurring item: %w", err)
	}
	u.invalidate(item.OwnerSpaceID)
	u.logger.Info("recurring item created",
		"owner_space_id", created.OwnerSpaceID,
		"item_id", created.ID,
		"frequency", created.Frequency,
		"next_execution_date", created.NextExecutionDate.String(),
		"status", created.Status(),
	)
	return created, nil
}

func (u *RecurringItemUseCase) Update(ctx context.Context, scope entities.Scope, id string, input UpdateRecurringItemInput) (entities.RecurringItem, error) {
	if input.empty() {
		return entities.RecurringItem{}, invalid("payload", "no fields to update")
	}
	if input.ClearEndDate && input.EndDate != nil {
		return entities.RecurringItem{}, invalid("end_date", "cannot be set and cleared at once")
	}

	// Everything is validated up front so a bad field never half-applies.
	var (
		accountID string
		kind      entities.Kind
		frequency entities.Frequency
		err       error
	)
	if input.AccountID != nil {
		if accountID = strings.TrimSpace(*input.AccountID); accountID == "" {
			return entities.RecurringItem{}, invalid("account_id", "must not be empty")
		}
	}
	if input.Amount != nil && !input.Amount.IsPositive() {
		return entities.RecurringItem{}, invalid("amount", "must be greater than zero")
	}
	if input.Kind != nil {
		if kind, err = entities.ParseKind(*input.Kind); err != nil {
			return entities.RecurringItem{}, invalid("kind", err.Error())
		}
	}
	if input.Frequency != nil {
		if frequency, err = entities.ParseFrequency(*input.Frequency); err != nil {
			return entities.RecurringItem{}, invalid("frequency", err.Error())
		}
	}
	if input.StartDate != nil && input.StartDate.IsZero() {
		return entities.RecurringItem{}, invalid("start_date", "must not be empty")
	}
	if input.EndDate != nil && input.EndDate.IsZero() {
		return entities.RecurringItem{}, invalid("end_date", "must not be empty; use clear_end_date to remove it")
	}

	// Schedule fields are stored as given; NextExecutionDate only moves on
	// Reschedule or MarkExecuted.
	return u.mutate(ctx, scope, id, "update", func(item *entities.RecurringItem, _ calendar.Date) error {
		if input.AccountID != nil {
			item.AccountID = accountID
		}
		if input.CategoryID != nil {
			item.CategoryID = strings.TrimSpace(*input.CategoryID)
		}
		if input.Amount != nil {
			item.Amount = *input.Amount
		}
		if input.Kind != nil {
			item.Kind = kind
		}
		if input.Frequency != nil {
			item.Frequency = frequency
		}
		if input.StartDate != nil {
			item.StartDate = *input.StartDate
		}
		if input.EndDate != nil {
			end := *input.EndDate
			item.EndDate = &end
		}
		if input.ClearEndDate {
			item.EndDate = nil
		}
		if input.Note != nil {
			item.Note = strings.TrimSpace(*input.Note)
		}
		// An end date moved before the pending occurrence expires the item.
		if item.EndDate != nil && item.NextExecutionDate.After(*item.EndDate) {
			item.IsActive = false
		}
		return nil
	})
}

// Reschedule re-derives NextExecutionDate from StartDate as of today and
// expires the item when that lands after its end date. It never re-activates
// a paused item.
func (u *RecurringItemUseCase) Reschedule(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error) {
	return u.mutate(ctx, scope, id, "reschedule", func(item *entities.RecurringItem, today calendar.Date) error {
		next, err := schedule.AdvanceToOnOrAfter(item.StartDate, item.Frequency, today)
		if err != nil {
			return err
		}
		item.NextExecutionDate = next
		if item.EndDate != nil && next.After(*item.EndDate) {
			item.IsActive = false
		}
		return nil
	})
}

// MarkExecuted records an execution on executionDate (today when nil) and
// moves the schedule one step forward. A next date past the end date expires
// the item but is still stored.
func (u *RecurringItemUseCase) MarkExecuted(ctx context.Context, scope entities.Scope, id string, executionDate *calendar.Date) (entities.RecurringItem, error) {
	return u.markExecuted(ctx, scope, id, executionDate, nil)
}

// markExecuted optionally requires the stored next date to still equal
// expected, so a runner working from a stale scan cannot move a schedule
// backwards or execute the same occurrence twice.
func (u *RecurringItemUseCase) markExecuted(ctx context.Context, scope entities.Scope, id string, executionDate, expected *calendar.Date) (entities.RecurringItem, error) {
	return u.mutate(ctx, scope, id, "mark executed", func(item *entities.RecurringItem, today calendar.Date) error {
		if status := item.Status(); status != entities.ItemStatusActive {
			return fmt.Errorf("%w: cannot execute %s item", ErrInvalidTransition, status)
		}
		if expected != nil && item.NextExecutionDate != *expected {
			return fmt.Errorf("%w: occurrence %s already executed", ErrInvalidTransition, expected)
		}

		executed := today
		if executionDate != nil && !executionDate.IsZero() {
			executed = *executionDate
		}
		candidate, err := schedule.NextAfterExecution(executed, item.Frequency)
		if err != nil {
			return err
		}

		item.LastExecutedDate = &executed
		item.NextExecutionDate = candidate
		if item.EndDate != nil && candidate.After(*item.EndDate) {
			item.IsActive = false
		}
		return nil
	})
}

// Pause moves an active item to paused. Dates are untouched.
func (u *RecurringItemUseCase) Pause(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error) {
	return u.mutate(ctx, scope, id, "pause", func(item *entities.RecurringItem, _ calendar.Date) error {
		if status := item.Status(); status != entities.ItemStatusActive {
			return fmt.Errorf("%w: cannot pause %s item", ErrInvalidTransition, status)
		}
		item.IsActive = false
		return nil
	})
}

// Resume moves a paused item back to active without recomputing its next
// date; a date left in the past is simply due on the next scan.
func (u *RecurringItemUseCase) Resume(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error) {
	return u.mutate(ctx, scope, id, "resume", func(item *entities.RecurringItem, _ calendar.Date) error {
		if status := item.Status(); status != entities.ItemStatusPaused {
			return fmt.Errorf("%w: cannot resume %s item", ErrInvalidTransition, status)
		}
		item.IsActive = true
		return nil
	})
}

func (u *RecurringItemUseCase) Delete(ctx context.Context, scope entities.Scope, id string) error {
	if err := validateScope(scope); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecurringItemID
	}

	deleted, err := u.repo.Delete(ctx, scope.OwnerSpaceID, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	if !deleted {
		return notFound(id)
	}
	u.invalidate(scope.OwnerSpaceID)
	u.logger.Info("recurring item deleted", "owner_space_id", scope.OwnerSpaceID, "item_id", id, "actor_id", scope.ActorID)
	return nil
}

func (u *RecurringItemUseCase) GetByID(ctx context.Context, scope entities.Scope, id string) (entities.RecurringItem, error) {
	if err := validateScope(scope); err != nil {
		return entities.RecurringItem{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RecurringItem{}, ErrInvalidRecurringItemID
	}

	item, err := u.repo.GetByID(ctx, scope.OwnerSpaceID, id)
	if err != nil {
		return entities.RecurringItem{}, fmt.Errorf("get %s: %w", id, err)
	}
	if item.ID == "" {
		return entities.RecurringItem{}, notFound(id)
	}
	return item, nil
}

// List returns the space's items ordered by next execution date.
func (u *RecurringItemUseCase) List(ctx context.Context, scope entities.Scope) ([]entities.RecurringItem, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	items, err := u.repo.ListBySpace(ctx, scope.OwnerSpaceID)
	if err != nil {
		return nil, fmt.Errorf("list recurring items: %w", err)
	}
	schedule.SortByNextExecution(items)
	return items, nil
}

// Due returns the items requiring execution as of ref (today when nil),
// ordered by next execution date.
func (u *RecurringItemUseCase) Due(ctx context.Context, scope entities.Scope, ref *calendar.Date) ([]entities.RecurringItem, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	asOf := u.referenceDate(ref)

	candidates, err := u.repo.ListDue(ctx, scope.OwnerSpaceID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list due items: %w", err)
	}
	// The store query narrows candidates; the selector is the rule.
	due := schedule.DueItems(candidates, asOf)
	schedule.SortByNextExecution(due)
	return due, nil
}

// Summary projects the space's active items onto monthly equivalents and
// counts the items due today.
func (u *RecurringItemUseCase) Summary(ctx context.Context, scope entities.Scope) (entities.MonthlySummary, error) {
	if err := validateScope(scope); err != nil {
		return entities.MonthlySummary{}, err
	}
	today := u.clock.Today()
	if u.cache != nil {
		if cached, ok := u.cache.Get(scope.OwnerSpaceID, today); ok {
			return cached, nil
		}
	}

	seen := u.writes.Load()
	items, err := u.repo.ListBySpace(ctx, scope.OwnerSpaceID)
	if err != nil {
		return entities.MonthlySummary{}, fmt.Errorf("summary: %w", err)
	}

	totals := schedule.MonthlyTotals(items)
	active := 0
	for _, item := range items {
		if item.IsActive {
			active++
		}
	}
	summary := entities.MonthlySummary{
		OwnerSpaceID: scope.OwnerSpaceID,
		AsOf:         today,
		Expenses:     totals.Expenses,
		Income:       totals.Income,
		Net:          totals.Net(),
		DueToday:     len(schedule.DueItems(items, today)),
		ActiveCount:  active,
	}
	if u.cache != nil && u.writes.Load() == seen {
		u.cache.Set(summary)
	}
	return summary, nil
}

type transition func(item *entities.RecurringItem, today calendar.Date) error

// mutate runs a read-modify-write on one item, guarded by its version. On a
// version conflict the item is re-read and the transition re-applied.
func (u *RecurringItemUseCase) mutate(ctx context.Context, scope entities.Scope, id, op string, apply transition) (entities.RecurringItem, error) {
	if err := validateScope(scope); err != nil {
		return entities.RecurringItem{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RecurringItem{}, ErrInvalidRecurringItemID
	}
	today := u.clock.Today()

	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		current, err := u.repo.GetByID(ctx, scope.OwnerSpaceID, id)
		if err != nil {
			return entities.RecurringItem{}, fmt.Errorf("%s %s: %w", op, id, err)
		}
		if current.ID == "" {
			return entities.RecurringItem{}, notFound(id)
		}

		next := current.Clone()
		if err := apply(&next, today); err != nil {
			return entities.RecurringItem{}, fmt.Errorf("%s %s: %w", op, id, err)
		}
		next.Version = current.Version + 1
		next.UpdatedAt = u.now().UTC()
		next.UpdatedBy = scope.ActorID

		saved, err := u.repo.Save(ctx, next, current.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			u.logger.Warn("version conflict, retrying",
				"op", op, "owner_space_id", scope.OwnerSpaceID, "item_id", id, "attempt", attempt)
			continue
		}
		if err != nil {
			return entities.RecurringItem{}, fmt.Errorf("%s %s: %w", op, id, err)
		}

		u.invalidate(scope.OwnerSpaceID)
		u.logger.Info("recurring item "+op,
			"owner_space_id", saved.OwnerSpaceID,
			"item_id", saved.ID,
			"version", saved.Version,
			"next_execution_date", saved.NextExecutionDate.String(),
			"status", saved.Status(),
		)
		return saved, nil
	}
	return entities.RecurringItem{}, fmt.Errorf("%s %s: %w", op, id, ErrConcurrentModification)
}

func (u *RecurringItemUseCase) referenceDate(ref *calendar.Date) calendar.Date {
	if ref != nil && !ref.IsZero() {
		return *ref
	}
	return u.clock.Today()
}

func (u *RecurringItemUseCase) invalidate(ownerSpaceID string) {
	u.writes.Add(1)
	if u.cache != nil {
		u.cache.Invalidate(ownerSpaceID)
	}
}

func validateScope(scope entities.Scope) error {
	if strings.TrimSpace(scope.OwnerSpaceID) == "" {
		return ErrInvalidOwnerSpaceID
	}
	return nil
}
