package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkravets/tasktrack/internal/common"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps domain errors onto HTTP statuses. Authentication failures
// share one 401 body regardless of cause, so responses cannot be used to
// probe which accounts exist. Internal errors are logged with the request's
// correlation id and never echoed to the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrUnauthenticated),
		errors.Is(err, common.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		s.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "could not validate credentials"})
	case errors.Is(err, common.ErrInactiveAccount):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "inactive account"})
	case errors.Is(err, common.ErrWeakPassword):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, common.ErrForbidden):
		s.writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient privileges"})
	case errors.Is(err, common.ErrorAlreadyExists):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: "already exists"})
	case errors.Is(err, common.ErrorNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	default:
		s.logger.Error(r.Context(), "request failed",
			"error", err, "correlation_id", correlationID(r.Context()))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// decodeJSON parses the request body into dst, reporting malformed input as
// a 400. Returns false when the response has already been written.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.badRequest(w, "invalid request body")
		return false
	}
	return true
}
