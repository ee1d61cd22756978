package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

type ShareHandler struct {
	shares        services.ShareServiceInterface
	questionnaire services.QuestionnaireServiceInterface
}

func NewShareHandler(shares services.ShareServiceInterface, questionnaire services.QuestionnaireServiceInterface) *ShareHandler {
	return &ShareHandler{shares: shares, questionnaire: questionnaire}
}

// CreateShareRequest names either a finished questionnaire session or a full
// profile. The session wins when both are set.
type CreateShareRequest struct {
	SessionID *uuid.UUID           `json:"session_id,omitempty"`
	Profile   *models.DraftProfile `json:"profile,omitempty"`
}

type SharedStackResponse struct {
	SharedStack *models.SharedStack `json:"shared_stack"`
}

func (h *ShareHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateShareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var profile models.CompleteProfile
	switch {
	case req.SessionID != nil:
		state, err := h.questionnaire.Get(r.Context(), *req.SessionID)
		if err != nil {
			writeServiceError(w, r, "share stack", err)
			return
		}
		if state.Step != models.StepResult || state.Result == nil {
			writeError(w, http.StatusConflict, "Generate a stack before sharing")
			return
		}
		profile = state.Result.Profile
	case req.Profile != nil:
		p, err := req.Profile.Complete()
		if err != nil {
			writeServiceError(w, r, "share stack", err)
			return
		}
		profile = p
	default:
		writeError(w, http.StatusBadRequest, "session_id or profile is required")
		return
	}

	result, err := h.shares.Create(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, "share stack", err)
		return
	}

	status := http.StatusCreated
	if !result.Persisted {
		status = http.StatusOK
	}
	writeJSON(w, status, result)
}

func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}
	shared, err := h.shares.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get shared stack", err)
		return
	}
	writeJSON(w, http.StatusOK, SharedStackResponse{SharedStack: shared})
}

func (h *ShareHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}
	format := services.ExportFormat(r.URL.Query().Get("format"))
	switch format {
	case "":
		format = services.ExportText
	case services.ExportText, services.ExportMarkdown:
	default:
		writeError(w, http.StatusBadRequest, "Unsupported export format")
		return
	}

	shared, err := h.shares.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "export shared stack", err)
		return
	}
	body, err := h.shares.Export(shared.Stack, format)
	if err != nil {
		writeServiceError(w, r, "export shared stack", err)
		return
	}

	contentType := "text/plain; charset=utf-8"
	if format == services.ExportMarkdown {
		contentType = "text/markdown; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
