// Package domain contains the core data types for the Attendance API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkingHours is the persisted from/to time pair for one user on one
// calendar day. At most one record exists per (User, Day); the store enforces
// this with a unique constraint and a full-row upsert.
// ToTime is nil until a matching exit is reported.
type WorkingHours struct {
	ID        uuid.UUID
	User      string
	Day       time.Time // date only, midnight UTC
	FromTime  TimeOfDay
	ToTime    *TimeOfDay
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayKey returns the record's day in ISO format ("2006-01-02").
// Used as the report map key; ISO dates sort lexicographically in
// chronological order.
func (w WorkingHours) DayKey() string {
	return w.Day.Format(DayFormat)
}

// DayFormat is the wire and key format for calendar days.
const DayFormat = "2006-01-02"
