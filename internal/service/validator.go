// Package service contains the business logic for the Attendance API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"fmt"
	"strings"

	"github.com/pkordes/attendance/backend/internal/domain"
)

// ValidateFilter checks a report filter before it reaches the store.
// Checks run in order and stop at the first failure, so the error always
// names the first invalid field:
//  1. user must not be blank (whitespace-only is blank),
//  2. fromDate must be set,
//  3. toDate must be set,
//  4. fromDate must not be after toDate (equal dates select a single day).
//
// Failures wrap domain.ErrValidation.
func ValidateFilter(filter domain.WorkingHoursFilter) error {
	if strings.TrimSpace(filter.User) == "" {
		return fmt.Errorf("%w: user cannot be empty", domain.ErrValidation)
	}
	if filter.FromDate.IsZero() {
		return fmt.Errorf("%w: fromDate cannot be empty", domain.ErrValidation)
	}
	if filter.ToDate.IsZero() {
		return fmt.Errorf("%w: toDate cannot be empty", domain.ErrValidation)
	}
	if filter.FromDate.After(filter.ToDate) {
		return fmt.Errorf("%w: fromDate cannot be after toDate", domain.ErrValidation)
	}
	return nil
}
