// Package repo contains all database access logic for the Attendance API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/attendance/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// WorkingHoursRepo defines the persistence operations for working-hours
// records. The service layer depends on this interface, not the concrete
// Postgres implementation, which allows it to be unit-tested with a mock.
type WorkingHoursRepo interface {
	// Fetch returns all records for filter.User with day in
	// [filter.FromDate, filter.ToDate]. No order is guaranteed; callers
	// that need one sort themselves.
	Fetch(ctx context.Context, filter domain.WorkingHoursFilter) ([]domain.WorkingHours, error)

	// FetchDay retrieves the single record for (user, day).
	// Returns domain.ErrNotFound when no record exists for that day.
	FetchDay(ctx context.Context, user string, day time.Time) (domain.WorkingHours, error)

	// Upsert inserts the record, or overwrites from_time and to_time
	// wholesale when a row for (user, day) already exists. Not a merge:
	// the incoming record is authoritative. Atomic per call.
	Upsert(ctx context.Context, wh domain.WorkingHours) (domain.WorkingHours, error)
}

// pgWorkingHoursRepo is the Postgres implementation of WorkingHoursRepo.
type pgWorkingHoursRepo struct {
	db db
}

// NewWorkingHoursRepo constructs a WorkingHoursRepo backed by the provided
// db connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx
// for rollback isolation.
func NewWorkingHoursRepo(db db) WorkingHoursRepo {
	return &pgWorkingHoursRepo{db: db}
}

// Fetch returns every record in the filter's inclusive date range.
func (r *pgWorkingHoursRepo) Fetch(ctx context.Context, filter domain.WorkingHoursFilter) ([]domain.WorkingHours, error) {
	const q = `
		SELECT id, username, day, from_time, to_time, created_at, updated_at
		FROM working_hours
		WHERE username = @username
		AND   day >= @from_date
		AND   day <= @to_date`

	args := pgx.NamedArgs{
		"username":  filter.User,
		"from_date": filter.FromDate,
		"to_date":   filter.ToDate,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.WorkingHoursRepo.Fetch: %w", err)
	}
	defer rows.Close()

	var records []domain.WorkingHours
	for rows.Next() {
		wh, err := scanWorkingHours(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.WorkingHoursRepo.Fetch: scan: %w", err)
		}
		records = append(records, wh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.WorkingHoursRepo.Fetch: rows: %w", err)
	}

	return records, nil
}

// FetchDay retrieves the record for a single (user, day) pair.
func (r *pgWorkingHoursRepo) FetchDay(ctx context.Context, user string, day time.Time) (domain.WorkingHours, error) {
	const q = `
		SELECT id, username, day, from_time, to_time, created_at, updated_at
		FROM working_hours
		WHERE username = @username
		AND   day      = @day`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"username": user, "day": day})
	wh, err := scanWorkingHours(row)
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("repo.WorkingHoursRepo.FetchDay: %w", err)
	}
	return wh, nil
}

// Upsert inserts or fully overwrites the row for (user, day) and returns the
// persisted record. The single INSERT .. ON CONFLICT statement keeps each
// call atomic.
func (r *pgWorkingHoursRepo) Upsert(ctx context.Context, wh domain.WorkingHours) (domain.WorkingHours, error) {
	const q = `
		INSERT INTO working_hours (username, day, from_time, to_time)
		VALUES (@username, @day, @from_time, @to_time)
		ON CONFLICT (username, day) DO UPDATE
		SET from_time  = EXCLUDED.from_time,
		    to_time    = EXCLUDED.to_time,
		    updated_at = now()
		RETURNING id, username, day, from_time, to_time, created_at, updated_at`

	args := pgx.NamedArgs{
		"username":  wh.User,
		"day":       wh.Day,
		"from_time": toPgTime(wh.FromTime),
		"to_time":   toPgTimePtr(wh.ToTime), // nil becomes NULL
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanWorkingHours(row)
	if err != nil {
		return domain.WorkingHours{}, fmt.Errorf("repo.WorkingHoursRepo.Upsert: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing
// scanWorkingHours to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanWorkingHours maps a single database row into a domain.WorkingHours.
// It handles the UUID, DATE, and nullable TIME conversions.
func scanWorkingHours(s scanner) (domain.WorkingHours, error) {
	var (
		wh       domain.WorkingHours
		id       pgtype.UUID
		day      pgtype.Date
		fromTime pgtype.Time
		toTime   pgtype.Time
	)

	err := s.Scan(&id, &wh.User, &day, &fromTime, &toTime, &wh.CreatedAt, &wh.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.WorkingHours{}, domain.ErrNotFound
		}
		return domain.WorkingHours{}, err
	}

	wh.ID = uuid.UUID(id.Bytes)
	wh.Day = day.Time
	wh.FromTime = fromPgTime(fromTime)
	if toTime.Valid {
		t := fromPgTime(toTime)
		wh.ToTime = &t
	}

	return wh, nil
}

// toPgTime converts a domain.TimeOfDay into the microseconds-since-midnight
// representation pgtype.Time uses for Postgres TIME columns.
func toPgTime(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(t.Seconds()) * 1_000_000,
		Valid:        true,
	}
}

// toPgTimePtr converts an optional time of day; nil maps to SQL NULL.
func toPgTimePtr(t *domain.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return toPgTime(*t)
}

// fromPgTime converts a pgtype.Time back into a domain.TimeOfDay,
// truncating sub-second precision.
func fromPgTime(t pgtype.Time) domain.TimeOfDay {
	secs := int(t.Microseconds / 1_000_000)
	return domain.TimeOfDay{
		Hour:   secs / 3600,
		Minute: (secs % 3600) / 60,
		Second: secs % 60,
	}
}
