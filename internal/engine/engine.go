// Package engine is the plan scheduler and ledger engine: a single
// owned state struct behind which the virtual clock, the ledger, the
// budget allocator, the approval gate and the activity lifecycle state
// machine live. Presentation layers hold an *Engine and invoke
// methods; nothing here reads the wall clock or performs I/O.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	activityStore "github.com/Steve0012345/Snoonu-App/internal/activity/store"
	"github.com/Steve0012345/Snoonu-App/internal/approval"
	"github.com/Steve0012345/Snoonu-App/internal/budget"
	"github.com/Steve0012345/Snoonu-App/internal/clock"
	"github.com/Steve0012345/Snoonu-App/internal/household"
	"github.com/Steve0012345/Snoonu-App/internal/ledger"
	ledgerStore "github.com/Steve0012345/Snoonu-App/internal/ledger/store"
	"github.com/Steve0012345/Snoonu-App/internal/metrics"
)

var (
	ErrNoActivities     = errors.New("add at least one activity first")
	ErrPendingApprovals = errors.New("some split activities still need family approval")
	ErrInvalidSpeed     = clock.ErrInvalidSpeed
)

const defaultHouseholdName = "Rina's Family"

// Params seeds a fresh engine. A zero Now falls back to the wall
// clock, which is the only moment real time is read.
type Params struct {
	Now              time.Time
	HouseholdName    string
	MonthlyBudgetQAR int64
	WalletBalanceQAR int64
	Metrics          *metrics.Metrics
}

// Engine owns all simulation state. One mutex serializes every entry
// point: ticks never overlap, and creations or approval mutations made
// between ticks are visible to the next one.
type Engine struct {
	mu sync.Mutex

	clock  *clock.Clock
	active bool

	activities *activity.Service
	ledger     *ledger.Service
	budget     *budget.Allocator
	household  *household.Service
	metrics    *metrics.Metrics
}

func New(params Params) *Engine {
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	name := params.HouseholdName
	if name == "" {
		name = defaultHouseholdName
	}

	acts := activityStore.New()
	hh := household.NewService(name)
	alloc := budget.NewAllocator(acts, params.MonthlyBudgetQAR)

	return &Engine{
		clock:      clock.New(now),
		activities: activity.NewService(acts, alloc, hh),
		ledger:     ledger.NewService(ledgerStore.New(params.WalletBalanceQAR)),
		budget:     alloc,
		household:  hh,
		metrics:    params.Metrics,
	}
}

// CreateActivity validates and expands a recurrence request into
// Scheduled activities. The first failing check wins and nothing is
// created; see activity.Service.Create for the order.
func (e *Engine) CreateActivity(ctx context.Context, params activity.CreateParams) ([]*activity.Activity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	acts, err := e.activities.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	e.household.PushFeed(e.clock.Now(), fmt.Sprintf("Added activity: %s (QAR %s).", params.Title, qar(params.AmountQAR)))

	return acts, nil
}

// ApproveSplit records memberID's approval on the activity's split.
func (e *Engine) ApproveSplit(ctx context.Context, activityID, memberID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.activities.Approve(ctx, activityID, memberID); err != nil {
		return err
	}

	e.household.PushFeed(e.clock.Now(), fmt.Sprintf("%s approved a split.", e.household.MemberName(memberID)))

	return nil
}

// RejectSplit records a rejection. The activity stays as is until the
// next tick observes the rejection and cancels it.
func (e *Engine) RejectSplit(ctx context.Context, activityID, memberID uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.activities.Reject(ctx, activityID, memberID); err != nil {
		return err
	}

	e.household.PushFeed(e.clock.Now(), fmt.Sprintf("%s rejected a split.", e.household.MemberName(memberID)))

	return nil
}

// ActivatePlan turns the auto-pay simulation on. It refuses an empty
// plan and outstanding Pending approvals. Rejected approvals do not
// block activation; the next tick cancels those activities instead.
func (e *Engine) ActivatePlan(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active {
		return nil
	}

	acts, err := e.activities.List(ctx)
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}

	if len(acts) == 0 {
		return ErrNoActivities
	}

	if approval.ActivationBlocked(acts, e.household.MemberIDs()) {
		return ErrPendingApprovals
	}

	e.active = true
	e.household.PushFeed(e.clock.Now(), "Plan activated.")

	return nil
}

func (e *Engine) DeactivatePlan() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return
	}

	e.active = false
	e.household.PushFeed(e.clock.Now(), "Plan paused.")
}

func (e *Engine) PlanActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.active
}

func (e *Engine) VirtualNow() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.clock.Now()
}

func (e *Engine) Speed() clock.Speed {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.clock.Speed()
}

// SetSpeed swaps the clock multiplier; it applies from the next tick
// on with no retroactive recompute.
func (e *Engine) SetSpeed(s clock.Speed) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.clock.SetSpeed(s)
}

// TopUpPreset credits the wallet with one of the fixed presets.
func (e *Engine) TopUpPreset(ctx context.Context, amountQAR int64) (*ledger.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	txn, err := e.ledger.TopUpPreset(ctx, e.clock.Now(), amountQAR)
	if err != nil {
		return nil, err
	}

	e.household.PushFeed(e.clock.Now(), fmt.Sprintf("Wallet topped up by QAR %s.", qar(amountQAR)))

	return txn, nil
}

func (e *Engine) Balance(ctx context.Context) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ledger.Balance(ctx)
}

// Transactions returns the ledger log, most recent first.
func (e *Engine) Transactions(ctx context.Context) ([]*ledger.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ledger.Transactions(ctx)
}

func (e *Engine) Activities(ctx context.Context) ([]*activity.Activity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.activities.List(ctx)
}

func (e *Engine) Activity(ctx context.Context, id uuid.UUID) (*activity.Activity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.activities.Get(ctx, id)
}

func (e *Engine) TotalAllocated(ctx context.Context) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.budget.TotalAllocated(ctx)
}

func (e *Engine) RemainingBudget(ctx context.Context) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.budget.Remaining(ctx)
}

func (e *Engine) MonthlyBudget() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.budget.MonthlyBudget()
}

// SetMonthlyBudget replaces the ceiling. Existing allocations are not
// re-validated; an already-allocated total may exceed the new budget.
func (e *Engine) SetMonthlyBudget(v int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.budget.SetMonthlyBudget(v)
}

// SetWalletBalance overwrites the wallet without logging a
// transaction; scenario seeding only.
func (e *Engine) SetWalletBalance(ctx context.Context, v int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.ledger.SetBalance(ctx, v)
}

func (e *Engine) HouseholdName() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.household.Name()
}

func (e *Engine) OwnerID() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.household.OwnerID()
}

func (e *Engine) Members() []*household.Member {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.household.Members()
}

func (e *Engine) MemberName(id uuid.UUID) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.household.MemberName(id)
}

func (e *Engine) Invites() []*household.Invite {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.household.Invites()
}

func (e *Engine) Feed() []*household.FeedEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.household.Feed()
}

// AddMember joins a member directly, bypassing the invite flow;
// scenario seeding uses this.
func (e *Engine) AddMember(name string) *household.Member {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.household.AddMember(name)
}

// InviteMember records a pending household invite.
func (e *Engine) InviteMember(contact string) (*household.Invite, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	inv, err := e.household.Invite(contact, e.clock.Now())
	if err != nil {
		return nil, err
	}

	e.household.PushFeed(e.clock.Now(), fmt.Sprintf("Invite sent to %s.", inv.Contact))

	return inv, nil
}

// AcceptInvite turns a pending invite into a household member.
func (e *Engine) AcceptInvite(inviteID uuid.UUID, name string) (*household.Member, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.household.AcceptInvite(inviteID, name)
	if err != nil {
		return nil, err
	}

	e.household.PushFeed(e.clock.Now(), fmt.Sprintf("%s joined your Family.", m.Name))

	return m, nil
}

// RemoveMember drops a member; the owner can never be removed.
func (e *Engine) RemoveMember(id uuid.UUID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	name := e.household.MemberName(id)

	if err := e.household.RemoveMember(id); err != nil {
		return err
	}

	e.household.PushFeed(e.clock.Now(), fmt.Sprintf("%s removed from Family.", name))

	return nil
}

// Reset wipes all simulation state: empty activity set, empty log,
// zero wallet, fresh household, paused plan, clock rewound to now.
func (e *Engine) Reset(ctx context.Context, now time.Time, householdName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if householdName == "" {
		householdName = defaultHouseholdName
	}

	if err := e.activities.Reset(ctx); err != nil {
		return fmt.Errorf("resetting activities: %w", err)
	}

	if err := e.ledger.Reset(ctx, 0); err != nil {
		return fmt.Errorf("resetting ledger: %w", err)
	}

	e.household.Reset(householdName)
	e.clock.Reset(now)
	e.active = false

	return nil
}

// qar renders dirhams for feed lines, dropping cents when whole.
func qar(dirhams int64) string {
	if dirhams%100 == 0 {
		return fmt.Sprintf("%d", dirhams/100)
	}

	return fmt.Sprintf("%.2f", float64(dirhams)/100)
}
