package handlers

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/services"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Templates holds the built-in page templates.
var Templates, _ = fs.Sub(embeddedTemplates, "templates")

// PageHandler renders the public landing page for a share link.
type PageHandler struct {
	templates *template.Template
	shares    services.ShareServiceInterface
}

func NewPageHandler(fsys fs.FS, shares services.ShareServiceInterface) (*PageHandler, error) {
	templates, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &PageHandler{templates: templates, shares: shares}, nil
}

type SharePageData struct {
	Title       string
	Description string
	Focus       string
	Stack       models.ToolStack
}

func (h *PageHandler) SharedStack(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	shared, err := h.shares.Get(r.Context(), id)
	if errors.Is(err, services.ErrSharedStackNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		writeServiceError(w, r, "render shared stack", err)
		return
	}

	stack := shared.Stack
	focus := make([]string, 0, len(stack.Profile.Focus()))
	for _, f := range stack.Profile.Focus() {
		focus = append(focus, string(f))
	}
	data := SharePageData{
		Title:       fmt.Sprintf("AI tool stack for a %s", stack.Profile.Role()),
		Description: fmt.Sprintf("%d tools for $%d/mo", len(stack.Tools), stack.TotalCost),
		Focus:       strings.Join(focus, ", "),
		Stack:       stack,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "share.html", data); err != nil {
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.templates.ExecuteTemplate(w, "404.html", nil); err != nil {
		http.Error(w, "Page not found", http.StatusNotFound)
	}
}
