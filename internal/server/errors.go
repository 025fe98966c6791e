package server

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/casegen/pkg/errors"
)

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError maps err to a status code. Caller mistakes, including
// unsatisfiable constraints, are 400 and carry their code; anything else is
// an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetReqID(r.Context())

	switch {
	case errors.IsClient(err):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:     "bad_request",
			Code:      string(errors.GetCode(err)),
			Message:   errors.UserMessage(err),
			RequestID: reqID,
		})
	case stderrors.Is(err, context.DeadlineExceeded):
		writeErrorWithStatus(w, r, http.StatusGatewayTimeout, "request timed out")
	case stderrors.Is(err, context.Canceled):
		// The client is gone; nobody reads the reply.
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:     "internal_error",
			Message:   "An internal error occurred",
			RequestID: reqID,
		})
	}
}

func writeErrorWithStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:     "bad_request",
		Code:      string(errors.ErrCodeInvalidInput),
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
