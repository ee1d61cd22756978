package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/aistackhub/internal/logging"
	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/questionnaire"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

const maxBodyBytes = 64 << 10

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeJSON reads a size-limited JSON body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, "Request body is required")
		default:
			writeError(w, http.StatusBadRequest, "Invalid request body")
		}
		return false
	}
	return true
}

func parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{services.ErrSessionNotFound, http.StatusNotFound, "Questionnaire not found"},
	{services.ErrSharedStackNotFound, http.StatusNotFound, "Shared stack not found"},
	{services.ErrToolNotFound, http.StatusNotFound, "Tool not found"},
	{services.ErrWorkflowNotFound, http.StatusNotFound, "Workflow not found"},
	{questionnaire.ErrWrongStep, http.StatusConflict, "Action not available at this step"},
	{models.ErrProfileIncomplete, http.StatusConflict, "Pick a budget and at least one focus area first"},
	{models.ErrMissingRole, http.StatusBadRequest, "Role is required"},
	{models.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},
	{models.ErrInvalidExperience, http.StatusBadRequest, "Invalid experience level"},
	{models.ErrInvalidBudget, http.StatusBadRequest, "Invalid budget"},
	{models.ErrInvalidFocus, http.StatusBadRequest, "Invalid focus area"},
	{models.ErrInvalidIndustry, http.StatusBadRequest, "Invalid industry"},
	{services.ErrUnsupportedFormat, http.StatusBadRequest, "Unsupported export format"},
	{context.Canceled, http.StatusServiceUnavailable, "Request cancelled"},
	{context.DeadlineExceeded, http.StatusServiceUnavailable, "Request timed out"},
}

// writeServiceError maps a service error to a response. Unknown errors are
// logged and reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			writeError(w, m.status, m.message)
			return
		}
	}
	logging.Error("Request failed", map[string]interface{}{
		"action":     action,
		"error":      err.Error(),
		"request_id": GetRequestIDFromContext(r.Context()),
	})
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
