// Package budget computes allocated spend against the monthly budget
// ceiling. The ceiling is enforced at activity creation only; changing
// the budget afterwards performs no re-validation of what was already
// allocated.
package budget

import (
	"context"
	"fmt"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
)

// Lister is the read side of the activity collection.
type Lister interface {
	ListActivities(ctx context.Context) ([]*activity.Activity, error)
}

type Allocator struct {
	activities Lister
	monthlyQAR int64
}

func NewAllocator(activities Lister, monthlyQAR int64) *Allocator {
	return &Allocator{activities: activities, monthlyQAR: monthlyQAR}
}

// TotalAllocated sums the cost of every non-cancelled activity. It is
// recomputed on demand, never cached, so it always reflects the latest
// mutation.
func (a *Allocator) TotalAllocated(ctx context.Context) (int64, error) {
	acts, err := a.activities.ListActivities(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing activities: %w", err)
	}

	var sum int64

	for _, act := range acts {
		if act.Status != activity.StatusCancelled {
			sum += act.AmountQAR
		}
	}

	return sum, nil
}

// Remaining is the headroom left under the ceiling, clamped at zero.
func (a *Allocator) Remaining(ctx context.Context) (int64, error) {
	allocated, err := a.TotalAllocated(ctx)
	if err != nil {
		return 0, err
	}

	if allocated >= a.monthlyQAR {
		return 0, nil
	}

	return a.monthlyQAR - allocated, nil
}

// CanAllocate reports whether a new total cost fits under the ceiling.
func (a *Allocator) CanAllocate(ctx context.Context, newTotalCost int64) (bool, error) {
	allocated, err := a.TotalAllocated(ctx)
	if err != nil {
		return false, err
	}

	return allocated+newTotalCost <= a.monthlyQAR, nil
}

func (a *Allocator) MonthlyBudget() int64 {
	return a.monthlyQAR
}

// SetMonthlyBudget replaces the ceiling without re-validating existing
// allocations.
func (a *Allocator) SetMonthlyBudget(v int64) {
	a.monthlyQAR = v
}
