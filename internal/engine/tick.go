package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	"github.com/Steve0012345/Snoonu-App/internal/approval"
	"github.com/Steve0012345/Snoonu-App/internal/ledger"
)

const (
	// dueWindow marks an activity due once its start instant is within
	// this much virtual time in the future, or already past.
	dueWindow = 30 * time.Minute

	// completionLag is how long after the start instant a settled
	// activity transitions to completed.
	completionLag = 10 * time.Minute
)

// Tick advances the virtual clock and sweeps every activity through
// the lifecycle state machine. It is a no-op while the plan is
// inactive. The engine lock makes the whole tick atomic to outside
// observers: no caller can see a debited wallet next to a stale
// activity status.
func (e *Engine) Tick(ctx context.Context, elapsed time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return nil
	}

	now := e.clock.Advance(elapsed)
	e.metrics.TickObserved()

	memberIDs := e.household.MemberIDs()

	acts, err := e.activities.List(ctx)
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}

	for _, a := range acts {
		if err := e.step(ctx, a, now, memberIDs); err != nil {
			return err
		}
	}

	return nil
}

// step applies at most one lifecycle transition to a single activity.
// Transitions are independent per activity; an activity deferred for
// funds never affects its neighbors.
func (e *Engine) step(ctx context.Context, a *activity.Activity, now time.Time, memberIDs []uuid.UUID) error {
	if a.Status == activity.StatusCancelled {
		return nil
	}

	switch approval.Settleable(a, memberIDs) {
	case approval.VerdictRejected:
		a.Status = activity.StatusCancelled
		if err := e.activities.Update(ctx, a); err != nil {
			return fmt.Errorf("cancelling %s: %w", a.ID, err)
		}

		e.metrics.CancellationObserved()
		e.household.PushFeed(now, fmt.Sprintf("Cancelled: %s (split rejected).", a.Title))

		return nil
	case approval.VerdictPending:
		// Settlement deferred until every member has answered.
		return nil
	}

	if a.Status == activity.StatusScheduled && a.StartAt.Sub(now) <= dueWindow {
		return e.settle(ctx, a, now)
	}

	if (a.Status == activity.StatusPrepaid || a.Status == activity.StatusScheduled) && now.Sub(a.StartAt) >= completionLag {
		a.Status = activity.StatusCompleted
		if err := e.activities.Update(ctx, a); err != nil {
			return fmt.Errorf("completing %s: %w", a.ID, err)
		}

		e.metrics.CompletionObserved()
	}

	return nil
}

// settle debits the payer and moves the activity to prepaid. When the
// payer is the plan owner the wallet must cover the amount; an
// insufficient balance leaves the activity scheduled, to be retried on
// a later tick. Other household members are externally simulated
// payers: their debit is logged without touching the owner's wallet
// and always succeeds.
func (e *Engine) settle(ctx context.Context, a *activity.Activity, now time.Time) error {
	owner := e.household.OwnerID()

	payer := owner
	splitSummary := "me"

	if a.Split != nil {
		payer = a.Split.PayerMemberID
		splitSummary = string(a.Split.Mode)
	}

	params := ledger.DebitParams{
		Title:     a.Title,
		AmountQAR: a.AmountQAR,
		Vertical:  a.Vertical,
		Meta: ledger.Meta{
			ActivityID:    a.ID,
			PayerMemberID: payer,
			SplitSummary:  splitSummary,
		},
	}

	if payer == owner {
		if _, err := e.ledger.Debit(ctx, now, params); err != nil {
			if errors.Is(err, ledger.ErrInsufficientFunds) {
				e.metrics.InsufficientFundsObserved()
				slog.Debug("settlement deferred, wallet low", "activity", a.ID, "title", a.Title)

				return nil
			}

			return fmt.Errorf("settling %s: %w", a.ID, err)
		}

		if err := e.markPrepaid(ctx, a); err != nil {
			return err
		}

		e.metrics.SettlementObserved("owner")
		e.household.PushFeed(now, fmt.Sprintf("Auto-paid: %s (QAR %s).", a.Title, qar(a.AmountQAR)))

		return nil
	}

	params.Title = a.Title + " (paid by family)"
	params.Meta.SplitSummary = "family"

	if _, err := e.ledger.FamilyDebit(ctx, now, params); err != nil {
		return fmt.Errorf("settling %s: %w", a.ID, err)
	}

	if err := e.markPrepaid(ctx, a); err != nil {
		return err
	}

	e.metrics.SettlementObserved("family")
	e.household.PushFeed(now, fmt.Sprintf("%s paid by %s.", a.Title, e.household.MemberName(payer)))

	return nil
}

func (e *Engine) markPrepaid(ctx context.Context, a *activity.Activity) error {
	a.Status = activity.StatusPrepaid
	if err := e.activities.Update(ctx, a); err != nil {
		return fmt.Errorf("marking %s prepaid: %w", a.ID, err)
	}

	return nil
}
