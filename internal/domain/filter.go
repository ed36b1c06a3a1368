package domain

import "time"

// WorkingHoursFilter selects the records of one user within an inclusive
// date range. Both dates are required; FromDate must not be after ToDate
// (equal dates select a single day). Validation lives in the service layer.
type WorkingHoursFilter struct {
	User     string
	FromDate time.Time
	ToDate   time.Time
}
