package dto

import (
	"errors"

	domainerr "github.com/amirhossein-jamali/dbcoord/internal/domain/error"
)

// ErrorResponse is the body of every failed record API request.
// Code is the domain error code, not the HTTP status.
type ErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RecordID  string `json:"recordId,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// NewErrorResponse builds the response for err. A non-empty message replaces
// the error text, which keeps internal details out of server errors.
func NewErrorResponse(err error, message, requestID string) ErrorResponse {
	resp := ErrorResponse{
		Code:      domainerr.ErrorCode(err),
		Message:   message,
		RequestID: requestID,
	}
	if resp.Message == "" {
		resp.Message = err.Error()
	}

	var recordErr *domainerr.RecordError
	if errors.As(err, &recordErr) {
		resp.RecordID = recordErr.RecordID
	}
	return resp
}
