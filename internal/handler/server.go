// Package handler implements the HTTP handlers for the Attendance API.
// All handlers are methods on Server; routes are registered in Routes so
// tests and main.go wire the exact same router.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/attendance/backend/internal/domain"
)

// ReportServicer defines the business operations the report handler depends
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ReportServicer interface {
	GetReport(ctx context.Context, filter domain.WorkingHoursFilter) (*domain.HoursReport, error)
	ReportActivity(ctx context.Context, activity domain.Activity) (domain.WorkingHours, error)
}

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	reports ReportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(reports ReportServicer) *Server {
	return &Server{reports: reports}
}

// Routes returns the chi router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Route("/v1/report/{user}", func(r chi.Router) {
		r.Get("/", s.GetReport)
		r.Post("/", s.ReportActivity)
	})
	return r
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
