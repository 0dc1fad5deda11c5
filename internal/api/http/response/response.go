// Package response writes JSON bodies for the HTTP API.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dtroode/pollkeeper/internal/apierror"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string                `json:"error"`
	Message string                `json:"message"`
	Fields  []apierror.FieldError `json:"fields,omitempty"`
}

// JSON writes data with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// Error writes an APIError as an ErrorBody.
func Error(w http.ResponseWriter, apiErr *apierror.APIError) {
	JSON(w, apiErr.HTTPCode, ErrorBody{
		Error:   http.StatusText(apiErr.HTTPCode),
		Message: apiErr.Message,
		Fields:  apiErr.Fields,
	})
}
