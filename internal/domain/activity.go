package domain

import (
	"fmt"
	"time"
)

// ActivityType is the kind of work event a user reports.
type ActivityType string

const (
	// ActivityEntry signals the start of a work session on a calendar day.
	ActivityEntry ActivityType = "ENTRY"
	// ActivityExit signals the end of a work session on a calendar day.
	ActivityExit ActivityType = "EXIT"
)

// ParseActivityType converts a raw string into an ActivityType.
// Only the exact values "ENTRY" and "EXIT" are accepted.
func ParseActivityType(s string) (ActivityType, error) {
	switch ActivityType(s) {
	case ActivityEntry:
		return ActivityEntry, nil
	case ActivityExit:
		return ActivityExit, nil
	default:
		return "", fmt.Errorf("unknown activity type %q", s)
	}
}

// MarshalJSON encodes the type as a bare JSON string ("ENTRY" / "EXIT").
func (a ActivityType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(a) + `"`), nil
}

// UnmarshalJSON decodes a bare JSON string, rejecting anything that is not
// exactly "ENTRY" or "EXIT".
func (a *ActivityType) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("activity type must be a JSON string, got %s", data)
	}
	parsed, err := ParseActivityType(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Activity is a single reported work event. It is transient: only its
// derived effect on a WorkingHours record is persisted.
type Activity struct {
	User       string
	Type       ActivityType
	ReportedAt time.Time
}

// Day returns the calendar date (midnight UTC) the activity belongs to.
// Entry and exit on different calendar dates are unrelated days; there is no
// cross-midnight shift handling.
func (a Activity) Day() time.Time {
	y, m, d := a.ReportedAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
