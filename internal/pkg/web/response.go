package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

const MimeJSON = "application/json"

// API error codes carried in the "error" field of ErrorResponse.
const (
	CodeInvalidInput    = "invalid_input"
	CodeUnknownField    = "unknown_field"
	CodePayloadTooLarge = "payload_too_large"
	CodeNotAcceptable   = "not_acceptable"
	CodeNotFound        = "not_found"
	CodeConnection      = "connection_error"
	CodeInternal        = "internal"
)

// ErrorResponse is the JSON error envelope. Errors carries field-level
// validation messages and is omitted when empty.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Fail writes a JSON error response with the given status and code. The
// underlying reason is logged, never sent to the client.
func Fail(w http.ResponseWriter, status int, reason error, code, msg string, errs map[string]string) {
	slog.Error("request failed", "code", code, "reason", reason)
	payload := &ErrorResponse{
		Error:   code,
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}
