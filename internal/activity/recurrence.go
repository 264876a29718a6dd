package activity

import "time"

// ExpandRecurrence generates the start instants for a recurrence
// request. Occurrence zero is always the base instant. Weekly and
// biweekly occurrences advance by 7 and 14 days; monthly occurrences
// use calendar-month arithmetic, not a fixed day count. A count below
// one is treated as one, and RecurrenceNone always yields a single
// instant.
func ExpandRecurrence(start time.Time, recurrence Recurrence, count int) []time.Time {
	if recurrence == RecurrenceNone || count < 1 {
		return []time.Time{start}
	}

	out := make([]time.Time, 0, count)

	for i := 0; i < count; i++ {
		switch recurrence {
		case RecurrenceWeekly:
			out = append(out, start.AddDate(0, 0, 7*i))
		case RecurrenceBiweekly:
			out = append(out, start.AddDate(0, 0, 14*i))
		case RecurrenceMonthly:
			out = append(out, start.AddDate(0, i, 0))
		default:
			out = append(out, start)
		}
	}

	return out
}
