package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=activity
type Repository interface {
	InsertActivities(ctx context.Context, acts []*Activity) error
	GetActivity(ctx context.Context, id uuid.UUID) (*Activity, error)
	ListActivities(ctx context.Context) ([]*Activity, error)
	UpdateActivity(ctx context.Context, a *Activity) error
	Reset(ctx context.Context) error
}

// BudgetChecker answers whether a new total cost fits under the
// monthly budget ceiling. Checked at creation time only.
type BudgetChecker interface {
	CanAllocate(ctx context.Context, newTotalCost int64) (bool, error)
}

// MemberSource exposes the household roster the gate evaluates
// against. The activity service only reads it.
type MemberSource interface {
	MemberIDs() []uuid.UUID
	OwnerID() uuid.UUID
}

type Service struct {
	repo    Repository
	budget  BudgetChecker
	members MemberSource
}

func NewService(repo Repository, budget BudgetChecker, members MemberSource) *Service {
	return &Service{repo: repo, budget: budget, members: members}
}

// SplitParams is the optional split spec supplied at creation.
type SplitParams struct {
	Mode                  SplitMode
	CustomAmountsByMember map[uuid.UUID]int64

	// PayerMemberID defaults to the plan owner when zero.
	PayerMemberID uuid.UUID

	RequiresApprovals bool

	// Approvals, when non-nil, replaces the default seeding entirely.
	Approvals map[uuid.UUID]Approval
}

type CreateParams struct {
	Title      string
	Vertical   Vertical
	StartAt    time.Time
	AmountQAR  int64
	Recurrence Recurrence

	// Count is the number of occurrences; forced to 1 when Recurrence
	// is RecurrenceNone.
	Count int

	Split *SplitParams
}

// Create validates the request, expands the recurrence and inserts one
// Scheduled activity per occurrence. Validation short-circuits in
// order title, amount, date, budget; a failing check creates nothing.
func (s *Service) Create(ctx context.Context, params CreateParams) ([]*Activity, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrEmptyTitle
	}

	if params.AmountQAR <= 0 {
		return nil, ErrInvalidAmount
	}

	if params.StartAt.IsZero() {
		return nil, ErrMissingDate
	}

	count := params.Count
	if params.Recurrence == RecurrenceNone || count < 1 {
		count = 1
	}

	starts := ExpandRecurrence(params.StartAt, params.Recurrence, count)

	ok, err := s.budget.CanAllocate(ctx, int64(len(starts))*params.AmountQAR)
	if err != nil {
		return nil, fmt.Errorf("checking budget: %w", err)
	}

	if !ok {
		return nil, ErrBudgetExceeded
	}

	var seriesID *uuid.UUID

	if len(starts) > 1 {
		id := uuid.New()
		seriesID = &id
	}

	split := s.buildSplit(params.Split)

	acts := make([]*Activity, len(starts))
	for i, start := range starts {
		acts[i] = &Activity{
			ID:        uuid.New(),
			Title:     params.Title,
			Vertical:  params.Vertical,
			StartAt:   start,
			AmountQAR: params.AmountQAR,
			Status:    StatusScheduled,
			SeriesID:  seriesID,
			Split:     split.Clone(),
		}
	}

	if err := s.repo.InsertActivities(ctx, acts); err != nil {
		return nil, fmt.Errorf("inserting activities: %w", err)
	}

	return acts, nil
}

// buildSplit fills in payer and approval defaults. The owner's own
// approval is seeded Approved; every other member starts Pending.
func (s *Service) buildSplit(params *SplitParams) *Split {
	if params == nil {
		return nil
	}

	split := &Split{
		Mode:                  params.Mode,
		CustomAmountsByMember: params.CustomAmountsByMember,
		PayerMemberID:         params.PayerMemberID,
		RequiresApprovals:     params.RequiresApprovals,
		Approvals:             params.Approvals,
	}

	owner := s.members.OwnerID()

	if split.PayerMemberID == uuid.Nil {
		split.PayerMemberID = owner
	}

	if split.Approvals == nil {
		split.Approvals = make(map[uuid.UUID]Approval)
		for _, id := range s.members.MemberIDs() {
			if id == owner {
				split.Approvals[id] = ApprovalApproved
			} else {
				split.Approvals[id] = ApprovalPending
			}
		}
	}

	return split
}

// Approve records a member's approval on a split activity. Activities
// without a split are left untouched.
func (s *Service) Approve(ctx context.Context, activityID, memberID uuid.UUID) error {
	return s.setApproval(ctx, activityID, memberID, ApprovalApproved)
}

// Reject records a member's rejection on a split activity. The
// activity is not cancelled here; the next tick observes the rejection
// and cancels it.
func (s *Service) Reject(ctx context.Context, activityID, memberID uuid.UUID) error {
	return s.setApproval(ctx, activityID, memberID, ApprovalRejected)
}

func (s *Service) setApproval(ctx context.Context, activityID, memberID uuid.UUID, value Approval) error {
	a, err := s.repo.GetActivity(ctx, activityID)
	if err != nil {
		return err
	}

	if a.Split == nil {
		return nil
	}

	if a.Split.Approvals == nil {
		a.Split.Approvals = make(map[uuid.UUID]Approval)
	}

	a.Split.Approvals[memberID] = value

	if err := s.repo.UpdateActivity(ctx, a); err != nil {
		return fmt.Errorf("updating approvals: %w", err)
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Activity, error) {
	return s.repo.GetActivity(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Activity, error) {
	return s.repo.ListActivities(ctx)
}

// Update persists a status transition made by the scheduler.
func (s *Service) Update(ctx context.Context, a *Activity) error {
	return s.repo.UpdateActivity(ctx, a)
}

// Reset drops every activity; used when loading a scenario.
func (s *Service) Reset(ctx context.Context) error {
	return s.repo.Reset(ctx)
}
