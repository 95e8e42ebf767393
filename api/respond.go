package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/blognest/backend/errs"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// envelope is the shape of every successful response:
// {"status":"success","data":{<resource>:<value>}}, with "results" added
// on list responses.
type envelope struct {
	Status  string         `json:"status"`
	Results *int           `json:"results,omitempty"`
	Data    map[string]any `json:"data"`
}

func (r Responder) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes a single resource wrapped in the success envelope.
func (r Responder) WriteData(w http.ResponseWriter, statusCode int, resource string, value any) {
	r.writeJSON(w, statusCode, envelope{
		Status: "success",
		Data:   map[string]any{resource: value},
	})
}

// WriteList writes a collection wrapped in the success envelope with a
// results count.
func (r Responder) WriteList(w http.ResponseWriter, resource string, value any, results int) {
	r.writeJSON(w, http.StatusOK, envelope{
		Status:  "success",
		Results: &results,
		Data:    map[string]any{resource: value},
	})
}

// WriteNoData writes the success envelope with a null data payload, used
// after deletes.
func (r Responder) WriteNoData(w http.ResponseWriter) {
	r.writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   nil,
	})
}

// WriteError maps an error to a status code and a stable JSON error
// shape. Every controller error funnels through here; nothing is handled
// ad hoc.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return a generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status": "error",
			"error":  "Internal Server Error",
		})
		return
	}

	response := map[string]any{
		"status": "error",
		"error":  apiErr.Error(),
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}
	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}
	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Int("status", apiErr.StatusCode).Msg("request failed")
	}

	r.writeJSON(w, apiErr.StatusCode, response)
}

// URLParamUUID parses a UUID route parameter, writing a 400 response and
// returning false when it is missing or malformed.
func (r Responder) URLParamUUID(w http.ResponseWriter, req *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(req, name)
	if raw == "" {
		r.WriteError(w, errs.NewBadRequestError(fmt.Sprintf("missing %s", name)))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		r.WriteError(w, errs.NewBadRequestError(fmt.Sprintf("invalid %s", name)))
		return uuid.Nil, false
	}
	return id, true
}
