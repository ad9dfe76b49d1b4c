package rest

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/akorchemkin/devstash-backend/internal/domain"
)

type validationResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields"`
}

type conflictResponse struct {
	Error string `json:"error"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type environmentInUseResponse struct {
	Error    string                    `json:"error"`
	Blocking []domain.EnvironmentUsage `json:"blocking"`
}

// handleError maps service errors to HTTP responses. Unrecognized errors are
// logged and hidden behind a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
		envInUseErr   *domain.EnvironmentInUseError
		rateErr       *domain.RateLimitedError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Error:  "validation failed",
			Fields: validationErr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		// Check violations surface as the bare sentinel; still a client error.
		writeError(w, http.StatusBadRequest, "validation failed")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &envInUseErr):
		writeJSON(w, http.StatusConflict, environmentInUseResponse{
			Error:    "environment still in use",
			Blocking: envInUseErr.Blocking,
		})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, conflictResponse{
			Error: "already exists",
			Field: conflictErr.Field,
			Value: conflictErr.Value,
		})
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.As(err, &rateErr):
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(rateErr)))
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// retryAfterSeconds rounds the hint up so clients never retry early.
func retryAfterSeconds(err *domain.RateLimitedError) int {
	secs := int(math.Ceil(err.RetryAfter.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}
