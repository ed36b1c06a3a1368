package handler

import (
	"net/http"
	"strings"
)

// errorResponse is the JSON shape of every error body:
// {"error":{"code":"...","message":"..."}}.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondValidationError writes a 400 for input rejected by validation or
// reconciliation. The message is extracted from the wrapped sentinel error.
func respondValidationError(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
	})
}

// respondRequestError writes a 400 for a request rejected before reaching
// the service layer (missing parameter, malformed date, malformed body).
func respondRequestError(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// respondInternalError writes a 500. The detail stays out of the response
// body; callers log the underlying error.
func respondInternalError(w http.ResponseWriter) {
	respondJSON(w, http.StatusInternalServerError, errorResponse{
		Error: errorDetail{Code: "internal_error", Message: "internal server error"},
	})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.ReportService.GetReport: validation error: user
// cannot be empty" → "validation error: user cannot be empty".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.ReportService.GetReport: ",
		"service.ReportService.ReportActivity: ",
	} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return msg
}
