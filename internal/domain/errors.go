package domain

import "errors"

// ErrNotFound is returned by repo functions when the requested record does
// not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a report filter fails validation
// (blank user, missing date, fromDate after toDate).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrDuplicateEntry is returned when an entry is reported for a day that
// already has a record — completed or not. One entry/exit pair per day.
var ErrDuplicateEntry = errors.New("entry already reported")

// ErrNoEntry is returned when an exit is reported for a day with no record.
var ErrNoEntry = errors.New("entry was not reported")

// ErrDuplicateExit is returned when an exit is reported for a day whose
// record already has an exit time.
var ErrDuplicateExit = errors.New("exit already reported")

// ErrDuplicateDay is returned by HoursReport.Add when two records share a
// day. The store's unique (user, day) constraint makes this unreachable in
// practice; the report refuses to silently overwrite rather than mask a
// broken store.
var ErrDuplicateDay = errors.New("working hours already filled for day")
