package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

type DirectoryHandler struct {
	directory services.DirectoryServiceInterface
}

func NewDirectoryHandler(directory services.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

type ToolsResponse struct {
	Categories []string                 `json:"categories,omitempty"`
	Tools      []models.Tool            `json:"tools,omitempty"`
	Grouped    []models.ToolsByCategory `json:"grouped,omitempty"`
}

type WorkflowsResponse struct {
	Workflows []models.WorkflowDetail `json:"workflows"`
}

func (h *DirectoryHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("grouped") == "true" {
		writeJSON(w, http.StatusOK, ToolsResponse{Grouped: h.directory.GetGroupedByCategory()})
		return
	}
	if category := query.Get("category"); category != "" {
		writeJSON(w, http.StatusOK, ToolsResponse{Tools: h.directory.GetByCategory(category)})
		return
	}
	if q := query.Get("q"); q != "" {
		writeJSON(w, http.StatusOK, ToolsResponse{Tools: h.directory.Search(q)})
		return
	}

	writeJSON(w, http.StatusOK, ToolsResponse{Tools: h.directory.GetAll()})
}

func (h *DirectoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ToolsResponse{Categories: h.directory.GetCategories()})
}

func (h *DirectoryHandler) GetTool(w http.ResponseWriter, r *http.Request) {
	tool, err := h.directory.GetByID(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "get tool", err)
		return
	}
	writeJSON(w, http.StatusOK, tool)
}

func (h *DirectoryHandler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, WorkflowsResponse{Workflows: h.directory.ListWorkflows()})
}

func (h *DirectoryHandler) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	workflow, err := h.directory.GetWorkflow(r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, "get workflow", err)
		return
	}
	writeJSON(w, http.StatusOK, workflow)
}
