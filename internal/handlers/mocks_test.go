package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

type mockDirectoryService struct {
	GetAllFunc               func() []models.Tool
	GetByCategoryFunc        func(category string) []models.Tool
	GetCategoriesFunc        func() []string
	GetGroupedByCategoryFunc func() []models.ToolsByCategory
	GetByIDFunc              func(id string) (models.Tool, error)
	SearchFunc               func(query string) []models.Tool
	ListWorkflowsFunc        func() []models.WorkflowDetail
	GetWorkflowFunc          func(slug string) (models.WorkflowDetail, error)
}

func (m *mockDirectoryService) GetAll() []models.Tool {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil
}

func (m *mockDirectoryService) GetByCategory(category string) []models.Tool {
	if m.GetByCategoryFunc != nil {
		return m.GetByCategoryFunc(category)
	}
	return nil
}

func (m *mockDirectoryService) GetCategories() []string {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc()
	}
	return nil
}

func (m *mockDirectoryService) GetGroupedByCategory() []models.ToolsByCategory {
	if m.GetGroupedByCategoryFunc != nil {
		return m.GetGroupedByCategoryFunc()
	}
	return nil
}

func (m *mockDirectoryService) GetByID(id string) (models.Tool, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return models.Tool{}, services.ErrToolNotFound
}

func (m *mockDirectoryService) Search(query string) []models.Tool {
	if m.SearchFunc != nil {
		return m.SearchFunc(query)
	}
	return nil
}

func (m *mockDirectoryService) ListWorkflows() []models.WorkflowDetail {
	if m.ListWorkflowsFunc != nil {
		return m.ListWorkflowsFunc()
	}
	return nil
}

func (m *mockDirectoryService) GetWorkflow(slug string) (models.WorkflowDetail, error) {
	if m.GetWorkflowFunc != nil {
		return m.GetWorkflowFunc(slug)
	}
	return models.WorkflowDetail{}, services.ErrWorkflowNotFound
}

type mockQuestionnaireService struct {
	CreateFunc           func(ctx context.Context) (models.QuestionnaireState, error)
	GetFunc              func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error)
	SelectRoleFunc       func(ctx context.Context, id uuid.UUID, role models.Role) (models.QuestionnaireState, error)
	SelectExperienceFunc func(ctx context.Context, id uuid.UUID, level models.Experience) (models.QuestionnaireState, error)
	ToggleFocusFunc      func(ctx context.Context, id uuid.UUID, focus models.Focus) (models.QuestionnaireState, error)
	SelectBudgetFunc     func(ctx context.Context, id uuid.UUID, budget int) (models.QuestionnaireState, error)
	SelectIndustryFunc   func(ctx context.Context, id uuid.UUID, industry models.Industry) (models.QuestionnaireState, error)
	GenerateFunc         func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error)
	RestartFunc          func(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error)
}

func (m *mockQuestionnaireService) Create(ctx context.Context) (models.QuestionnaireState, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx)
	}
	return models.QuestionnaireState{}, nil
}

func (m *mockQuestionnaireService) Get(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return models.QuestionnaireState{}, services.ErrSessionNotFound
}

func (m *mockQuestionnaireService) SelectRole(ctx context.Context, id uuid.UUID, role models.Role) (models.QuestionnaireState, error) {
	if m.SelectRoleFunc != nil {
		return m.SelectRoleFunc(ctx, id, role)
	}
	return models.QuestionnaireState{}, nil
}

func (m *mockQuestionnaireService) SelectExperience(ctx context.Context, id uuid.UUID, level models.Experience) (models.QuestionnaireState, error) {
	if m.SelectExperienceFunc != nil {
		return m.SelectExperienceFunc(ctx, id, level)
	}
	return models.QuestionnaireState{}, nil
}

func (m *mockQuestionnaireService) ToggleFocus(ctx context.Context, id uuid.UUID, focus models.Focus) (models.QuestionnaireState, error) {
	if m.ToggleFocusFunc != nil {
		return m.ToggleFocusFunc(ctx, id, focus)
	}
	return models.QuestionnaireState{}, nil
}

func (m *mockQuestionnaireService) SelectBudget(ctx context.Context, id uuid.UUID, budget int) (models.QuestionnaireState, error) {
	if m.SelectBudgetFunc != nil {
		return m.SelectBudgetFunc(ctx, id, budget)
	}
	return models.QuestionnaireState{}, nil
}

func (m *mockQuestionnaireService) SelectIndustry(ctx context.Context, id uuid.UUID, industry models.Industry) (models.QuestionnaireState, error) {
	if m.SelectIndustryFunc != nil {
		return m.SelectIndustryFunc(ctx, id, industry)
	}
	return models.QuestionnaireState{}, nil
}

func (m *mockQuestionnaireService) Generate(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, id)
	}
	return models.QuestionnaireState{}, nil
}

func (m *mockQuestionnaireService) Restart(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, id)
	}
	return models.QuestionnaireState{}, nil
}

type mockRecommendationService struct {
	RecommendFunc func(ctx context.Context, draft models.DraftProfile) (models.ToolStack, error)
}

func (m *mockRecommendationService) Recommend(ctx context.Context, draft models.DraftProfile) (models.ToolStack, error) {
	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, draft)
	}
	return models.ToolStack{}, nil
}

type mockShareService struct {
	CreateFunc func(ctx context.Context, profile models.CompleteProfile) (*services.ShareResult, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*models.SharedStack, error)
	ExportFunc func(stack models.ToolStack, format services.ExportFormat) (string, error)
}

func (m *mockShareService) Create(ctx context.Context, profile models.CompleteProfile) (*services.ShareResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return &services.ShareResult{}, nil
}

func (m *mockShareService) Get(ctx context.Context, id uuid.UUID) (*models.SharedStack, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, services.ErrSharedStackNotFound
}

func (m *mockShareService) Export(stack models.ToolStack, format services.ExportFormat) (string, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(stack, format)
	}
	return "", nil
}
