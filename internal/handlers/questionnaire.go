package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

type QuestionnaireHandler struct {
	questionnaire services.QuestionnaireServiceInterface
}

func NewQuestionnaireHandler(questionnaire services.QuestionnaireServiceInterface) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaire: questionnaire}
}

type SelectRoleRequest struct {
	Role models.Role `json:"role"`
}

type SelectExperienceRequest struct {
	Experience models.Experience `json:"experience"`
}

type ToggleFocusRequest struct {
	Focus models.Focus `json:"focus"`
}

type SelectBudgetRequest struct {
	Budget int `json:"budget"`
}

type SelectIndustryRequest struct {
	Industry models.Industry `json:"industry"`
}

type QuestionnaireResponse struct {
	Questionnaire models.QuestionnaireState `json:"questionnaire"`
}

func (h *QuestionnaireHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.DefaultQuestionnaireOptions())
}

func (h *QuestionnaireHandler) Create(w http.ResponseWriter, r *http.Request) {
	state, err := h.questionnaire.Create(r.Context())
	if err != nil {
		writeServiceError(w, r, "create questionnaire", err)
		return
	}
	writeJSON(w, http.StatusCreated, QuestionnaireResponse{Questionnaire: state})
}

func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "get questionnaire", func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
		return h.questionnaire.Get(ctx, id)
	})
}

func (h *QuestionnaireHandler) SelectRole(w http.ResponseWriter, r *http.Request) {
	var req SelectRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r, "select role", func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
		return h.questionnaire.SelectRole(ctx, id, req.Role)
	})
}

func (h *QuestionnaireHandler) SelectExperience(w http.ResponseWriter, r *http.Request) {
	var req SelectExperienceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r, "select experience", func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
		return h.questionnaire.SelectExperience(ctx, id, req.Experience)
	})
}

func (h *QuestionnaireHandler) ToggleFocus(w http.ResponseWriter, r *http.Request) {
	var req ToggleFocusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r, "toggle focus", func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
		return h.questionnaire.ToggleFocus(ctx, id, req.Focus)
	})
}

func (h *QuestionnaireHandler) SelectBudget(w http.ResponseWriter, r *http.Request) {
	var req SelectBudgetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r, "select budget", func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
		return h.questionnaire.SelectBudget(ctx, id, req.Budget)
	})
}

func (h *QuestionnaireHandler) SelectIndustry(w http.ResponseWriter, r *http.Request) {
	var req SelectIndustryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.respond(w, r, "select industry", func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
		return h.questionnaire.SelectIndustry(ctx, id, req.Industry)
	})
}

func (h *QuestionnaireHandler) Generate(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "generate stack", func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
		return h.questionnaire.Generate(ctx, id)
	})
}

func (h *QuestionnaireHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, "restart questionnaire", func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
		return h.questionnaire.Restart(ctx, id)
	})
}

func (h *QuestionnaireHandler) respond(w http.ResponseWriter, r *http.Request, action string, call func(context.Context, uuid.UUID) (models.QuestionnaireState, error)) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}
	state, err := call(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, action, err)
		return
	}
	writeJSON(w, http.StatusOK, QuestionnaireResponse{Questionnaire: state})
}
