// Package approval decides whether split activities may settle and
// whether the plan may activate. The gate is side-effect-free: it
// renders verdicts, and the scheduler applies them.
package approval

import (
	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
)

// Verdict is the gate's answer for one activity.
type Verdict int

const (
	// VerdictSettleable means nothing blocks settlement.
	VerdictSettleable Verdict = iota

	// VerdictPending defers settlement until every member has answered.
	VerdictPending

	// VerdictRejected marks the activity for lazy cancellation on the
	// next tick that observes it.
	VerdictRejected
)

// Settleable evaluates an activity's approval map against the current
// household roster. Rejection takes precedence over pending entries.
// Activities without an approval-requiring split are always
// settleable.
func Settleable(a *activity.Activity, memberIDs []uuid.UUID) Verdict {
	if a.Split == nil || !a.Split.RequiresApprovals {
		return VerdictSettleable
	}

	verdict := VerdictSettleable

	for _, id := range memberIDs {
		switch a.Split.Approvals[id] {
		case activity.ApprovalRejected:
			return VerdictRejected
		case activity.ApprovalPending:
			verdict = VerdictPending
		}
	}

	return verdict
}

// ActivationBlocked reports whether any approval-requiring activity
// still has a Pending entry among the household members. Rejected
// entries do not block activation; those activities are cancelled
// lazily by the next tick instead.
func ActivationBlocked(acts []*activity.Activity, memberIDs []uuid.UUID) bool {
	for _, a := range acts {
		if a.Split == nil || !a.Split.RequiresApprovals {
			continue
		}

		for _, id := range memberIDs {
			if a.Split.Approvals[id] == activity.ApprovalPending {
				return true
			}
		}
	}

	return false
}
