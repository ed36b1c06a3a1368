// Package observability holds the Prometheus collectors for the Attendance
// API. Collectors are registered once at init and updated through small
// exported helpers so callers never touch prometheus types directly.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	activitiesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attendance",
		Subsystem: "report",
		Name:      "activities_total",
		Help:      "Reported entry/exit activities by type and outcome.",
	}, []string{"type", "outcome"})

	reportQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "attendance",
		Subsystem: "report",
		Name:      "queries_total",
		Help:      "Successfully served hours-report queries.",
	})
)

func init() {
	prometheus.MustRegister(activitiesTotal, reportQueriesTotal)
}

// RecordActivity counts one reported activity. outcome is "accepted",
// "rejected" (validation or reconciliation failure), or "error".
// activityType may be empty when the request body did not parse.
func RecordActivity(activityType, outcome string) {
	if activityType == "" {
		activityType = "unknown"
	}
	activitiesTotal.WithLabelValues(activityType, outcome).Inc()
}

// RecordReportQuery counts one successfully served report query.
func RecordReportQuery() {
	reportQueriesTotal.Inc()
}
