package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/openbooks/openbooks/internal/adapter/http/dto"
	"github.com/openbooks/openbooks/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMissingEntryDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountRequired):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBothSidesSet):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNegativeAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyBatch):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAmountImmutable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter.
func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
