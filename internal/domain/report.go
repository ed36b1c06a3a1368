package domain

import (
	"fmt"
	"sort"
)

// HoursReport is a date-ordered collection of working-hours records for one
// user. Each day appears at most once; Add rejects a duplicate day instead
// of overwriting. The zero value is not usable — construct with
// NewHoursReport.
type HoursReport struct {
	days map[string]WorkingHours
}

// NewHoursReport returns an empty report. An empty report is a valid result
// for a range with no recorded days.
func NewHoursReport() *HoursReport {
	return &HoursReport{days: make(map[string]WorkingHours)}
}

// Add inserts a record keyed by its day.
// Returns ErrDuplicateDay if a record for that day is already present.
func (r *HoursReport) Add(wh WorkingHours) error {
	key := wh.DayKey()
	if _, ok := r.days[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDay, key)
	}
	r.days[key] = wh
	return nil
}

// Days returns all records ordered ascending by day.
func (r *HoursReport) Days() []WorkingHours {
	keys := make([]string, 0, len(r.days))
	for k := range r.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]WorkingHours, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.days[k])
	}
	return out
}

// Len returns the number of days in the report.
func (r *HoursReport) Len() int {
	return len(r.days)
}
