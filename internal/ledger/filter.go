package ledger

import "time"

// Filter restricts a ledger view by date range and entry kind. A zero Filter
// matches everything. Start and end dates are inclusive; the end date covers
// the entire calendar day.
type Filter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Kind      EntryKind
}

// Matches reports whether the entry passes every active constraint.
// Comparison is date-only: the start bound is normalized to midnight and the
// end bound to the last instant of its calendar day.
func (f Filter) Matches(entry *Entry) bool {
	if f.StartDate != nil {
		if entry.Date.Before(startOfDay(*f.StartDate)) {
			return false
		}
	}

	if f.EndDate != nil {
		if entry.Date.After(endOfDay(*f.EndDate)) {
			return false
		}
	}

	if f.Kind != "" && f.Kind != KindAll {
		if entry.Kind != f.Kind {
			return false
		}
	}

	return true
}

// Apply returns the entries matching the filter, preserving input order.
func (f Filter) Apply(entries []Entry) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for i := range entries {
		if f.Matches(&entries[i]) {
			filtered = append(filtered, entries[i])
		}
	}
	return filtered
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
