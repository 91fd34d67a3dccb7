package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dbarros/portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, 0, data)
}

// WriteJSONStatus marshals data and writes it with the given status code.
// A status of 0 leaves the default 200.
func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if status != 0 {
		w.WriteHeader(status)
	}
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps an error to its JSON response. Validation errors carry the
// field-level detail; ApiErr carries its own status; anything else is logged
// and surfaced as a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var validationErr *errs.ValidationErr
	if errors.As(err, &validationErr) {
		r.WriteJSONStatus(w, validationErr.StatusCode(), map[string]any{
			"success": false,
			"errors":  validationErr.Fields,
		})
		return
	}

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		// For unexpected errors, log and return generic internal error
		r.logger.Error().Msg(err.Error())
		r.WriteJSONStatus(w, http.StatusInternalServerError, map[string]any{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
			"status":  "error",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	response := map[string]any{
		"error":  apiErr.Error(),
		"status": "error",
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	r.WriteJSONStatus(w, apiErr.StatusCode, response)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
