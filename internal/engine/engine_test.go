package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	"github.com/Steve0012345/Snoonu-App/internal/clock"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
	"github.com/Steve0012345/Snoonu-App/internal/ledger"
)

var start = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newEngine(t *testing.T, walletQAR int64) *engine.Engine {
	t.Helper()

	return engine.New(engine.Params{
		Now:              start,
		HouseholdName:    "Nday Family",
		MonthlyBudgetQAR: 250_000,
		WalletBalanceQAR: walletQAR,
	})
}

func createActivity(t *testing.T, eng *engine.Engine, title string, startAt time.Time, amount int64, split *activity.SplitParams) *activity.Activity {
	t.Helper()

	acts, err := eng.CreateActivity(context.Background(), activity.CreateParams{
		Title:     title,
		Vertical:  activity.VerticalGroceries,
		StartAt:   startAt,
		AmountQAR: amount,
		Split:     split,
	})
	require.NoError(t, err)
	require.Len(t, acts, 1)

	return acts[0]
}

func TestEngine_ActivateRequiresActivities(t *testing.T) {
	eng := newEngine(t, 180_000)

	err := eng.ActivatePlan(context.Background())
	assert.ErrorIs(t, err, engine.ErrNoActivities)
	assert.False(t, eng.PlanActive())
}

func TestEngine_ActivateBlockedByPendingApproval(t *testing.T) {
	eng := newEngine(t, 180_000)
	member := eng.AddMember("Ahmed")

	a := createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, &activity.SplitParams{
		Mode:              activity.SplitModeEqual,
		RequiresApprovals: true,
	})

	err := eng.ActivatePlan(context.Background())
	assert.ErrorIs(t, err, engine.ErrPendingApprovals)

	require.NoError(t, eng.ApproveSplit(context.Background(), a.ID, member.ID))
	require.NoError(t, eng.ActivatePlan(context.Background()))
	assert.True(t, eng.PlanActive())
}

func TestEngine_TickNoOpWhileInactive(t *testing.T) {
	eng := newEngine(t, 180_000)
	createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, nil)

	require.NoError(t, eng.Tick(context.Background(), time.Hour))

	// Clock frozen, nothing settled.
	assert.Equal(t, start, eng.VirtualNow())

	balance, err := eng.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(180_000), balance)
}

func TestEngine_SettlementWithinDueWindow(t *testing.T) {
	eng := newEngine(t, 180_000)
	a := createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	// Start is 15 virtual minutes out, already inside the 30-minute due
	// window, so the first tick settles it.
	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err := eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusPrepaid, got.Status)

	balance, err := eng.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(158_000), balance)

	txns, err := eng.Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, ledger.KindDebit, txns[0].Kind)
	assert.Equal(t, "Groceries run", txns[0].Title)
	require.NotNil(t, txns[0].Meta)
	assert.Equal(t, a.ID, txns[0].Meta.ActivityID)
}

func TestEngine_SettlementIdempotent(t *testing.T) {
	eng := newEngine(t, 180_000)
	createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	require.NoError(t, eng.Tick(context.Background(), time.Second))
	require.NoError(t, eng.Tick(context.Background(), time.Second))
	require.NoError(t, eng.Tick(context.Background(), time.Second))

	txns, err := eng.Transactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, txns, 1, "a settled activity is never debited twice")
}

func TestEngine_CompletionTenMinutesPastStart(t *testing.T) {
	eng := newEngine(t, 180_000)
	a := createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	// Settle first.
	require.NoError(t, eng.Tick(context.Background(), time.Second))

	// Advance to one minute short of start+10m: still prepaid.
	require.NoError(t, eng.Tick(context.Background(), 24*time.Minute-time.Second))

	got, err := eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusPrepaid, got.Status)

	// Cross the ten-minute mark.
	require.NoError(t, eng.Tick(context.Background(), time.Minute))

	got, err = eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusCompleted, got.Status)
}

func TestEngine_NoSameTickSettleAndComplete(t *testing.T) {
	eng := newEngine(t, 180_000)

	// Start already more than ten virtual minutes in the past: due and
	// past the completion lag at once.
	a := createActivity(t, eng, "Groceries run", start.Add(-20*time.Minute), 22_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err := eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusPrepaid, got.Status, "settlement and completion never share a tick")

	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err = eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusCompleted, got.Status)
}

func TestEngine_InsufficientFundsRetriedAfterTopUp(t *testing.T) {
	eng := newEngine(t, 5_000)
	a := createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 10_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	// Wallet cannot cover it: the activity stays scheduled and the
	// wallet is untouched.
	require.NoError(t, eng.Tick(context.Background(), time.Second))
	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err := eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusScheduled, got.Status)

	balance, err := eng.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5_000), balance)

	_, err = eng.TopUpPreset(context.Background(), 10_000)
	require.NoError(t, err)

	// The next tick retries and succeeds.
	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err = eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusPrepaid, got.Status)

	balance, err = eng.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5_000), balance)
}

func TestEngine_UnderfundedNeverAutoCompletes(t *testing.T) {
	eng := newEngine(t, 5_000)
	a := createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 10_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	// Push virtual time far past start; without funds the activity must
	// keep waiting, not complete.
	require.NoError(t, eng.Tick(context.Background(), 2*time.Hour))

	got, err := eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusScheduled, got.Status)
}

func TestEngine_RejectionCancelsOnNextTick(t *testing.T) {
	eng := newEngine(t, 180_000)
	member := eng.AddMember("Ahmed")

	a := createActivity(t, eng, "Groceries run", start.Add(2*time.Hour), 22_000, &activity.SplitParams{
		Mode:              activity.SplitModeEqual,
		RequiresApprovals: true,
	})

	require.NoError(t, eng.RejectSplit(context.Background(), a.ID, member.ID))

	// A rejection does not block activation.
	require.NoError(t, eng.ActivatePlan(context.Background()))

	got, err := eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusScheduled, got.Status, "rejection alone does not cancel")

	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err = eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusCancelled, got.Status)

	// Nothing was debited.
	txns, err := eng.Transactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestEngine_PendingApprovalDefersSettlement(t *testing.T) {
	eng := newEngine(t, 180_000)
	member := eng.AddMember("Ahmed")

	plain := createActivity(t, eng, "Dinner with friends", start.Add(2*time.Hour), 14_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	// Created after activation: due immediately but still awaiting
	// Ahmed's answer, so ticks leave it alone.
	a := createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, &activity.SplitParams{
		Mode:              activity.SplitModeEqual,
		RequiresApprovals: true,
	})

	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err := eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusScheduled, got.Status)

	require.NoError(t, eng.ApproveSplit(context.Background(), a.ID, member.ID))
	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err = eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusPrepaid, got.Status)

	got, err = eng.Activity(context.Background(), plain.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusScheduled, got.Status, "a deferred split never blocks its neighbors")
}

func TestEngine_FamilyPayerLeavesWalletUntouched(t *testing.T) {
	eng := newEngine(t, 180_000)
	member := eng.AddMember("Ahmed")

	a := createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, &activity.SplitParams{
		Mode:          activity.SplitModeEqual,
		PayerMemberID: member.ID,
	})
	require.NoError(t, eng.ActivatePlan(context.Background()))

	require.NoError(t, eng.Tick(context.Background(), time.Second))

	got, err := eng.Activity(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.StatusPrepaid, got.Status)

	balance, err := eng.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(180_000), balance)

	txns, err := eng.Transactions(context.Background())
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Groceries run (paid by family)", txns[0].Title)
	require.NotNil(t, txns[0].Meta)
	assert.Equal(t, member.ID, txns[0].Meta.PayerMemberID)
	assert.Equal(t, "family", txns[0].Meta.SplitSummary)
}

func TestEngine_SpeedScalesVirtualTime(t *testing.T) {
	eng := newEngine(t, 180_000)
	createActivity(t, eng, "Groceries run", start.Add(2*time.Hour), 22_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	require.NoError(t, eng.SetSpeed(clock.SpeedFastest))
	require.NoError(t, eng.Tick(context.Background(), time.Minute))

	assert.Equal(t, start.Add(20*time.Minute), eng.VirtualNow())

	assert.ErrorIs(t, eng.SetSpeed(clock.Speed(7)), engine.ErrInvalidSpeed)
}

func TestEngine_BudgetCeilingAtCreation(t *testing.T) {
	eng := newEngine(t, 180_000)

	createActivity(t, eng, "Groceries run", start.Add(time.Hour), 200_000, nil)

	_, err := eng.CreateActivity(context.Background(), activity.CreateParams{
		Title:     "Dinner with friends",
		Vertical:  activity.VerticalDining,
		StartAt:   start.Add(2 * time.Hour),
		AmountQAR: 60_000,
	})
	assert.ErrorIs(t, err, activity.ErrBudgetExceeded)

	// Exactly at the ceiling fits.
	createActivity(t, eng, "Dinner with friends", start.Add(2*time.Hour), 50_000, nil)
}

func TestEngine_DeactivateFreezesSimulation(t *testing.T) {
	eng := newEngine(t, 180_000)
	createActivity(t, eng, "Groceries run", start.Add(2*time.Hour), 22_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))

	require.NoError(t, eng.Tick(context.Background(), time.Minute))
	frozen := eng.VirtualNow()

	eng.DeactivatePlan()
	require.NoError(t, eng.Tick(context.Background(), time.Hour))

	assert.Equal(t, frozen, eng.VirtualNow())
}

func TestEngine_FeedRecordsLifecycle(t *testing.T) {
	eng := newEngine(t, 180_000)
	createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))
	require.NoError(t, eng.Tick(context.Background(), time.Second))

	feed := eng.Feed()
	require.NotEmpty(t, feed)

	// Newest first: settlement, then activation, then creation.
	assert.Equal(t, "Auto-paid: Groceries run (QAR 220).", feed[0].Text)
	assert.Equal(t, "Plan activated.", feed[1].Text)
	assert.Equal(t, "Added activity: Groceries run (QAR 220).", feed[2].Text)
}

func TestEngine_Reset(t *testing.T) {
	eng := newEngine(t, 180_000)
	createActivity(t, eng, "Groceries run", start.Add(15*time.Minute), 22_000, nil)
	require.NoError(t, eng.ActivatePlan(context.Background()))
	require.NoError(t, eng.Tick(context.Background(), time.Second))

	fresh := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, eng.Reset(context.Background(), fresh, "Rina's Family"))

	assert.False(t, eng.PlanActive())
	assert.Equal(t, fresh, eng.VirtualNow())
	assert.Equal(t, "Rina's Family", eng.HouseholdName())

	acts, err := eng.Activities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, acts)

	balance, err := eng.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}
