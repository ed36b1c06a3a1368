package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/attendance/backend/internal/domain"
	"github.com/pkordes/attendance/backend/internal/repo"
)

// ReportService implements the working-hours reporting logic: querying
// per-day reports and reconciling entry/exit activities into records.
type ReportService struct {
	repo repo.WorkingHoursRepo
	log  *slog.Logger
}

// NewReportService constructs a ReportService backed by the provided repo.
// A nil logger falls back to slog.Default().
func NewReportService(r repo.WorkingHoursRepo, log *slog.Logger) *ReportService {
	if log == nil {
		log = slog.Default()
	}
	return &ReportService{repo: r, log: log}
}

// GetReport validates the filter, fetches the matching records, and
// assembles them into a date-ordered report.
// Returns domain.ErrValidation for an invalid filter and
// domain.ErrDuplicateDay if the store yields two records for one day —
// a store-integrity fault that is surfaced rather than coalesced.
func (s *ReportService) GetReport(ctx context.Context, filter domain.WorkingHoursFilter) (*domain.HoursReport, error) {
	if err := ValidateFilter(filter); err != nil {
		return nil, fmt.Errorf("service.ReportService.GetReport: %w", err)
	}

	s.log.DebugContext(ctx, "fetching hours report",
		"user", filter.User,
		"from_date", filter.FromDate.Format(domain.DayFormat),
		"to_date", filter.ToDate.Format(domain.DayFormat),
	)

	records, err := s.repo.Fetch(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.GetReport: %w", err)
	}
	s.log.DebugContext(ctx, "fetched working hours", "user", filter.User, "records", len(records))

	report := domain.NewHoursReport()
	for _, wh := range records {
		if err := report.Add(wh); err != nil {
			return nil, fmt.Errorf("service.ReportService.GetReport: %w", err)
		}
	}
	return report, nil
}

// ReportActivity reconciles one activity event against the existing record
// for the activity's calendar day and persists the result. Any failure
// aborts before the store is mutated.
//
// The fetch and the upsert are two separate store calls with no
// compare-and-swap between them: two concurrent reports for the same
// (user, day) can race in that window, last write wins. Each upsert itself
// is a single atomic statement.
func (s *ReportService) ReportActivity(ctx context.Context, activity domain.Activity) (domain.WorkingHours, error) {
	day := activity.Day()
	s.log.DebugContext(ctx, "reporting activity",
		"user", activity.User,
		"type", string(activity.Type),
		"day", day.Format(domain.DayFormat),
	)

	var existing *domain.WorkingHours
	current, err := s.repo.FetchDay(ctx, activity.User, day)
	switch {
	case err == nil:
		existing = &current
	case errors.Is(err, domain.ErrNotFound):
		// First activity of the day.
	default:
		return domain.WorkingHours{}, fmt.Errorf("service.ReportService.ReportActivity: %w", err)
	}

	updated, err := Reconcile(activity, existing)
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("service.ReportService.ReportActivity: %w", err)
	}

	persisted, err := s.repo.Upsert(ctx, updated)
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("service.ReportService.ReportActivity: %w", err)
	}
	s.log.DebugContext(ctx, "saved working hours",
		"user", persisted.User,
		"day", persisted.DayKey(),
		"from_time", persisted.FromTime.String(),
	)
	return persisted, nil
}
