package services

import (
	"errors"
	"strings"

	"github.com/HammerMeetNail/aistackhub/internal/catalog"
	"github.com/HammerMeetNail/aistackhub/internal/models"
)

var (
	ErrToolNotFound     = errors.New("tool not found")
	ErrWorkflowNotFound = errors.New("workflow not found")
)

// DirectoryService serves the public tool and workflow listings.
type DirectoryService struct {
	catalog *catalog.Catalog
}

func NewDirectoryService(c *catalog.Catalog) *DirectoryService {
	return &DirectoryService{catalog: c}
}

func (s *DirectoryService) GetAll() []models.Tool {
	return s.catalog.Tools()
}

func (s *DirectoryService) GetByCategory(category string) []models.Tool {
	return s.catalog.ToolsByCategory(strings.TrimSpace(category))
}

func (s *DirectoryService) GetCategories() []string {
	return s.catalog.Categories()
}

func (s *DirectoryService) Search(query string) []models.Tool {
	return s.catalog.Search(query)
}

func (s *DirectoryService) GetByID(id string) (models.Tool, error) {
	tool, ok := s.catalog.Tool(id)
	if !ok {
		return models.Tool{}, ErrToolNotFound
	}
	return tool, nil
}

func (s *DirectoryService) GetGroupedByCategory() []models.ToolsByCategory {
	var result []models.ToolsByCategory
	for _, category := range s.catalog.Categories() {
		result = append(result, models.ToolsByCategory{
			Category: category,
			Tools:    s.catalog.ToolsByCategory(category),
		})
	}
	return result
}

func (s *DirectoryService) ListWorkflows() []models.WorkflowDetail {
	workflows := s.catalog.Workflows()
	details := make([]models.WorkflowDetail, 0, len(workflows))
	for _, w := range workflows {
		details = append(details, s.resolve(w))
	}
	return details
}

func (s *DirectoryService) GetWorkflow(slug string) (models.WorkflowDetail, error) {
	w, ok := s.catalog.Workflow(slug)
	if !ok {
		return models.WorkflowDetail{}, ErrWorkflowNotFound
	}
	return s.resolve(w), nil
}

func (s *DirectoryService) resolve(w models.Workflow) models.WorkflowDetail {
	detail := models.WorkflowDetail{Workflow: w}
	for _, id := range w.ToolIDs {
		// catalog.New guarantees workflow tools exist.
		tool, _ := s.catalog.Tool(id)
		detail.Tools = append(detail.Tools, tool)
		detail.MonthlyCost += tool.MonthlyPrice
	}
	return detail
}
