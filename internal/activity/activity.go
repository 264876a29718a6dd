package activity

import (
	"time"

	"github.com/google/uuid"
)

// Vertical is the service category an activity belongs to.
type Vertical string

const (
	VerticalGroceries Vertical = "Groceries"
	VerticalDining    Vertical = "Dining"
	VerticalGym       Vertical = "Gym"
	VerticalCinema    Vertical = "Cinema"
	VerticalTransport Vertical = "Transport"
	VerticalOther     Vertical = "Other"
)

// Verticals lists every known vertical, in display order.
func Verticals() []Vertical {
	return []Vertical{
		VerticalGroceries,
		VerticalDining,
		VerticalGym,
		VerticalCinema,
		VerticalTransport,
		VerticalOther,
	}
}

func (v Vertical) Valid() bool {
	switch v {
	case VerticalGroceries, VerticalDining, VerticalGym, VerticalCinema, VerticalTransport, VerticalOther:
		return true
	}

	return false
}

// Status represents the lifecycle state of an activity.
//
// Scheduled -> Prepaid -> Completed, with Cancelled reachable from
// Scheduled or Prepaid through split rejection. Completed and Cancelled
// are terminal.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusPrepaid   Status = "prepaid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no further transition can leave the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Recurrence describes how an activity repeats.
type Recurrence string

const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceBiweekly Recurrence = "biweekly"
	RecurrenceMonthly  Recurrence = "monthly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceWeekly, RecurrenceBiweekly, RecurrenceMonthly:
		return true
	}

	return false
}

// SplitMode describes how a split activity's cost is shared.
type SplitMode string

const (
	SplitModeMe     SplitMode = "me"
	SplitModeEqual  SplitMode = "equal"
	SplitModeCustom SplitMode = "custom"
)

// Approval is one member's answer on an approval-requiring split.
type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

// Split is the optional payment-sharing annex on an activity. A nil
// *Split means the activity is not shared; there is no enabled flag to
// check, so approval data cannot be read off a non-split activity.
type Split struct {
	Mode SplitMode

	// CustomAmountsByMember holds per-member amounts in dirhams,
	// consulted only when Mode is SplitModeCustom.
	CustomAmountsByMember map[uuid.UUID]int64

	// PayerMemberID is the member debited at settlement.
	PayerMemberID uuid.UUID

	// RequiresApprovals gates activation and auto-pay on every
	// household member's approval.
	RequiresApprovals bool

	Approvals map[uuid.UUID]Approval
}

// Clone returns a deep copy so callers can hand out split state without
// sharing the approval maps.
func (s *Split) Clone() *Split {
	if s == nil {
		return nil
	}

	out := &Split{
		Mode:              s.Mode,
		PayerMemberID:     s.PayerMemberID,
		RequiresApprovals: s.RequiresApprovals,
	}

	if s.CustomAmountsByMember != nil {
		out.CustomAmountsByMember = make(map[uuid.UUID]int64, len(s.CustomAmountsByMember))
		for id, amount := range s.CustomAmountsByMember {
			out.CustomAmountsByMember[id] = amount
		}
	}

	if s.Approvals != nil {
		out.Approvals = make(map[uuid.UUID]Approval, len(s.Approvals))
		for id, a := range s.Approvals {
			out.Approvals[id] = a
		}
	}

	return out
}

// Activity is a single scheduled spend event, possibly one occurrence
// of a recurring series.
type Activity struct {
	ID       uuid.UUID
	Title    string
	Vertical Vertical
	StartAt  time.Time

	// AmountQAR is the cost in dirhams (QAR cents). Always > 0.
	AmountQAR int64

	Status Status

	// SeriesID is shared by every occurrence expanded from one
	// recurrence request; nil for one-off activities.
	SeriesID *uuid.UUID

	Split *Split
}

// Clone returns a deep copy of the activity.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}

	out := *a
	out.Split = a.Split.Clone()

	if a.SeriesID != nil {
		id := *a.SeriesID
		out.SeriesID = &id
	}

	return &out
}
