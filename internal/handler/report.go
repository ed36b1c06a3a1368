package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/attendance/backend/internal/domain"
	"github.com/pkordes/attendance/backend/internal/observability"
)

// workingHoursResponse is the JSON shape of one day in a report.
// ToTime is null until an exit has been reported.
type workingHoursResponse struct {
	User     string             `json:"user"`
	Date     openapi_types.Date `json:"date"`
	FromTime domain.TimeOfDay   `json:"fromTime"`
	ToTime   *domain.TimeOfDay  `json:"toTime"`
}

// reportResponse wraps the per-day records keyed by ISO date.
// encoding/json marshals map keys in sorted order, and ISO dates sort
// lexicographically in chronological order, so the body is always ordered
// ascending by date.
type reportResponse struct {
	Report map[string]workingHoursResponse `json:"report"`
}

// GetReport handles GET /v1/report/{user}?fromDate=...&toDate=...
// Both dates are required and must be in "2006-01-02" format.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")

	fromDate, err := parseDateParam(r, "fromDate")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}
	toDate, err := parseDateParam(r, "toDate")
	if err != nil {
		respondRequestError(w, err.Error())
		return
	}

	filter := domain.WorkingHoursFilter{User: user, FromDate: fromDate, ToDate: toDate}
	report, err := s.reports.GetReport(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidationError(w, err)
			return
		}
		slog.ErrorContext(r.Context(), "get report failed", "user", user, "error", err)
		respondInternalError(w)
		return
	}
	observability.RecordReportQuery()

	respondJSON(w, http.StatusOK, toReportResponse(report))
}

// ReportActivity handles POST /v1/report/{user} with a bare JSON string
// body of "ENTRY" or "EXIT". The event timestamp is the server's current
// UTC time. Responds 201 with an empty body on success.
func (s *Server) ReportActivity(w http.ResponseWriter, r *http.Request) {
	user := chi.URLParam(r, "user")

	var activityType domain.ActivityType
	if err := json.NewDecoder(r.Body).Decode(&activityType); err != nil {
		observability.RecordActivity("", "rejected")
		respondRequestError(w, "request body must be \"ENTRY\" or \"EXIT\"")
		return
	}

	activity := domain.Activity{
		User:       user,
		Type:       activityType,
		ReportedAt: time.Now().UTC(),
	}

	if _, err := s.reports.ReportActivity(r.Context(), activity); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEntry),
			errors.Is(err, domain.ErrNoEntry),
			errors.Is(err, domain.ErrDuplicateExit),
			errors.Is(err, domain.ErrValidation):
			observability.RecordActivity(string(activityType), "rejected")
			respondValidationError(w, err)
		default:
			slog.ErrorContext(r.Context(), "report activity failed", "user", user, "error", err)
			observability.RecordActivity(string(activityType), "error")
			respondInternalError(w)
		}
		return
	}

	observability.RecordActivity(string(activityType), "accepted")
	w.WriteHeader(http.StatusCreated)
}

// parseDateParam reads a required "2006-01-02" query parameter.
// The router happily treats empty values as present, so emptiness is
// rejected here explicitly.
func parseDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	t, err := time.Parse(openapi_types.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in %s format", name, openapi_types.DateFormat)
	}
	return t, nil
}

// toReportResponse converts a domain report into the wire shape.
func toReportResponse(report *domain.HoursReport) reportResponse {
	out := reportResponse{Report: make(map[string]workingHoursResponse, report.Len())}
	for _, wh := range report.Days() {
		out.Report[wh.DayKey()] = workingHoursResponse{
			User:     wh.User,
			Date:     openapi_types.Date{Time: wh.Day},
			FromTime: wh.FromTime,
			ToTime:   wh.ToTime,
		}
	}
	return out
}
