package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/heartmarshall/dictionary-api/internal/domain"
	"github.com/heartmarshall/dictionary-api/pkg/ctxutil"
)

// errorResponse is the uniform body for every non-validation failure.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

type validationResponse struct {
	Errors []fieldErrorResponse `json:"errors"`
}

// Responder turns errors into HTTP responses. It is the only place where
// error kinds are mapped to status codes.
//
// By default validation failures and zero-effect updates/deletes are
// answered with 500 to keep the established API contract. With strict
// set they become 400 and 404 respectively.
type Responder struct {
	log    *zap.Logger
	strict bool
}

// NewResponder creates a Responder.
func NewResponder(logger *zap.Logger, strict bool) *Responder {
	return &Responder{log: logger.Named("http"), strict: strict}
}

// Error writes the response for err. message is the caller-facing text used
// for zero-effect and store failures; internals are never exposed.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error, message string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		status := http.StatusInternalServerError
		if rs.strict {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, toValidationResponse(ve))
	case errors.Is(err, domain.ErrNotFound):
		status := http.StatusInternalServerError
		if rs.strict {
			status = http.StatusNotFound
		}
		rs.log.Debug("no document affected",
			zap.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			zap.Error(err),
		)
		rs.fail(w, status, message)
	default:
		rs.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			zap.Error(err),
		)
		rs.fail(w, http.StatusInternalServerError, message)
	}
}

// BadRequest answers a request whose body could not be read as JSON.
func (rs *Responder) BadRequest(w http.ResponseWriter, message string) {
	rs.fail(w, http.StatusBadRequest, message)
}

// NotFound is the fallback for any request no route matched.
func (rs *Responder) NotFound(w http.ResponseWriter, r *http.Request) {
	rs.fail(w, http.StatusNotFound, fmt.Sprintf("Can't find %s on this server", r.URL.RequestURI()))
}

// fail writes {status, message}; status is "fail" for 4xx and "error" otherwise.
func (rs *Responder) fail(w http.ResponseWriter, code int, message string) {
	status := "error"
	if code >= 400 && code < 500 {
		status = "fail"
	}
	writeJSON(w, code, errorResponse{Status: status, Message: message})
}

func toValidationResponse(ve *domain.ValidationError) validationResponse {
	out := make([]fieldErrorResponse, len(ve.Errors))
	for i, fe := range ve.Errors {
		out[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message, Value: fe.Value}
	}
	return validationResponse{Errors: out}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
