package apiv1

import (
	"encoding/json"
	"errors"
	"net/http"

	"daycare-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeDomainError maps domain sentinel errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body so internals never leak.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusUnprocessableEntity, "invalid request")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrInvalidCode):
		writeError(w, http.StatusNotFound, "invalid access code")
	case errors.Is(err, domain.ErrCodeExpired):
		writeError(w, http.StatusGone, "access code expired")
	case errors.Is(err, domain.ErrCodeExhausted):
		writeError(w, http.StatusConflict, "access code exhausted")
	case errors.Is(err, domain.ErrCodeGenerationExhausted):
		writeError(w, http.StatusServiceUnavailable, "could not allocate a unique code")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
