package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/aistackhub/internal/models"
)

// DirectoryServiceInterface defines the contract for tool and workflow listings.
type DirectoryServiceInterface interface {
	GetAll() []models.Tool
	GetByCategory(category string) []models.Tool
	GetCategories() []string
	GetGroupedByCategory() []models.ToolsByCategory
	GetByID(id string) (models.Tool, error)
	Search(query string) []models.Tool
	ListWorkflows() []models.WorkflowDetail
	GetWorkflow(slug string) (models.WorkflowDetail, error)
}

// QuestionnaireServiceInterface defines the contract for questionnaire sessions.
type QuestionnaireServiceInterface interface {
	Create(ctx context.Context) (models.QuestionnaireState, error)
	Get(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error)
	SelectRole(ctx context.Context, id uuid.UUID, role models.Role) (models.QuestionnaireState, error)
	SelectExperience(ctx context.Context, id uuid.UUID, level models.Experience) (models.QuestionnaireState, error)
	ToggleFocus(ctx context.Context, id uuid.UUID, focus models.Focus) (models.QuestionnaireState, error)
	SelectBudget(ctx context.Context, id uuid.UUID, budget int) (models.QuestionnaireState, error)
	SelectIndustry(ctx context.Context, id uuid.UUID, industry models.Industry) (models.QuestionnaireState, error)
	Generate(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error)
	Restart(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error)
}

// RecommendationServiceInterface defines the contract for one-shot recommendations.
type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, draft models.DraftProfile) (models.ToolStack, error)
}

// ShareServiceInterface defines the contract for shared stacks.
type ShareServiceInterface interface {
	Create(ctx context.Context, profile models.CompleteProfile) (*ShareResult, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SharedStack, error)
	Export(stack models.ToolStack, format ExportFormat) (string, error)
}
