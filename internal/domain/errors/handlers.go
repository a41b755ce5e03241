package errors

import "net/http"

// ErrorInfo is the error half of the API envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // e.g. "REMINDER_NOT_FOUND"
	Message string `json:"message"`           // Text the client may show as-is
	Details any    `json:"details,omitempty"` // Omitted for server and auth failures
}

// MetaInfo carries the request id so a client report can be matched to logs.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is {data, meta}.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is {error, meta}.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewErrorInfo builds the envelope error. Details never leave the service for
// 5xx, 401 and 403 responses.
func NewErrorInfo(statusCode int, code, message string, details any) *ErrorInfo {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return &ErrorInfo{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ErrorInfoOf renders an AppError, keeping non-empty details.
func ErrorInfoOf(appErr AppError) *ErrorInfo {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return NewErrorInfo(appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}
