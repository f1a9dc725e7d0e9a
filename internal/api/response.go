package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/docetangerina/estoque/internal/usecase"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// usecaseError maps use-case errors to HTTP statuses. Anything outside
// the domain taxonomy is a store failure and surfaces as a 500.
func usecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrDuplicateName), errors.Is(err, usecase.ErrDuplicateEmail):
		jsonError(w, http.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		jsonError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		jsonError(w, http.StatusNotFound, err.Error())
	default:
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}
