package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sarjithrm/quoraUpgradProject/internal/apperr"
)

// ErrorResponse is the uniform error body every failed request returns.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, ErrorResponse{Code: code, Message: message})
}

// AppError maps a business failure to its status and {code, message} body.
// Anything that is not an apperr.Error is an infrastructure fault and
// surfaces as a 500 without leaking detail.
func AppError(w http.ResponseWriter, err error) {
	if e, ok := apperr.As(err); ok {
		Error(w, e.HTTPStatus(), e.Code, e.Message)
		return
	}
	slog.Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, "SVR-001", "Unexpected error occurred")
}
