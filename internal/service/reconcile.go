package service

import (
	"fmt"

	"github.com/pkordes/attendance/backend/internal/domain"
)

// Reconcile turns one activity event into the authoritative working-hours
// record for that user and day, given the day's existing record (nil when
// the day has no record yet). It is a pure function: no I/O, deterministic,
// and the caller is responsible for persisting the result.
//
// ENTRY is valid only when no record exists for the day — a completed record
// blocks a new entry just like an open one (one entry/exit pair per day).
// EXIT is valid only when an open record exists (ToTime not yet set); the
// exit time is accepted as-is, even if it is earlier than the entry time.
func Reconcile(activity domain.Activity, existing *domain.WorkingHours) (domain.WorkingHours, error) {
	switch activity.Type {
	case domain.ActivityExit:
		return reconcileExit(activity, existing)
	default:
		return reconcileEntry(activity, existing)
	}
}

func reconcileEntry(activity domain.Activity, existing *domain.WorkingHours) (domain.WorkingHours, error) {
	if existing != nil {
		return domain.WorkingHours{}, fmt.Errorf("cannot report entry: %w for %s",
			domain.ErrDuplicateEntry, activity.Day().Format(domain.DayFormat))
	}
	return domain.WorkingHours{
		User:     activity.User,
		Day:      activity.Day(),
		FromTime: domain.TimeOfDayFrom(activity.ReportedAt),
	}, nil
}

func reconcileExit(activity domain.Activity, existing *domain.WorkingHours) (domain.WorkingHours, error) {
	if existing == nil {
		return domain.WorkingHours{}, fmt.Errorf("cannot report exit: %w at %s",
			domain.ErrNoEntry, activity.Day().Format(domain.DayFormat))
	}
	if existing.ToTime != nil {
		return domain.WorkingHours{}, fmt.Errorf("cannot report exit: %w at %s",
			domain.ErrDuplicateExit, existing.ToTime)
	}
	toTime := domain.TimeOfDayFrom(activity.ReportedAt)
	return domain.WorkingHours{
		User:     activity.User,
		Day:      activity.Day(),
		FromTime: existing.FromTime,
		ToTime:   &toTime,
	}, nil
}
