package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/security"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses. Anything unmapped is a
// 500 with a generic message; the detail stays in the server log.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrInvalidNationalID),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrDateRangeTooLong),
		errors.Is(err, domain.ErrStartDateInPast),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInstructorRequired),
		errors.Is(err, domain.ErrSlotRequired),
		errors.Is(err, domain.ErrSlotNotPublished),
		errors.Is(err, domain.ErrInstructorTierMismatch):
		status, message = http.StatusBadRequest, err.Error()

	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrItemUnavailable),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInstructorAtCapacity),
		errors.Is(err, domain.ErrIdempotencyConflict),
		errors.Is(err, domain.ErrTerminalState),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrLinesNotReturned):
		status, message = http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrPaymentInsufficient):
		status, message = http.StatusUnprocessableEntity, err.Error()

	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		status, message = http.StatusUnauthorized, err.Error()

	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()

	default:
		logger.Error("Unhandled error", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
