// Package catalog holds the read-only tool directory and the lookup tables
// the recommendation engine consumes. A Catalog is built once and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/HammerMeetNail/aistackhub/internal/models"
)

// DefaultMonthlySavings applies to roles missing from the savings table.
const DefaultMonthlySavings = 1000

// RuleOrder lists the focus areas that can carry a rule, in the order the
// engine applies them. Other focus areas never contribute a tool.
var RuleOrder = []models.Focus{
	models.FocusVideo,
	models.FocusWriting,
	models.FocusDesign,
	models.FocusAnalytics,
}

var (
	ErrDuplicateTool   = errors.New("duplicate tool id")
	ErrUnknownTool     = errors.New("unknown tool id")
	ErrInvalidTool     = errors.New("invalid tool")
	ErrInvalidRule     = errors.New("invalid focus rule")
	ErrInvalidWorkflow = errors.New("invalid workflow")
)

// Rule binds a focus area (or the fallback slot) to a single tool.
type Rule struct {
	ToolID      string `json:"tool_id" yaml:"tool"`
	MatchReason string `json:"match_reason" yaml:"reason"`
}

// Definition is the raw, unvalidated content of a catalog.
type Definition struct {
	Tools       []models.Tool         `yaml:"tools"`
	FocusRules  map[models.Focus]Rule `yaml:"focus_rules"`
	Fallback    Rule                  `yaml:"fallback"`
	RoleSavings map[models.Role]int   `yaml:"role_savings"`
	Workflows   []models.Workflow     `yaml:"workflows"`
}

type Catalog struct {
	tools       map[string]models.Tool
	order       []string
	focusRules  map[models.Focus]Rule
	fallback    Rule
	roleSavings map[models.Role]int
	workflows   []models.Workflow
	categories  []string
}

// New validates def and builds a Catalog. The definition is copied; later
// changes to def do not affect the catalog.
func New(def Definition) (*Catalog, error) {
	c := &Catalog{
		tools:       make(map[string]models.Tool, len(def.Tools)),
		focusRules:  make(map[models.Focus]Rule, len(def.FocusRules)),
		roleSavings: make(map[models.Role]int, len(def.RoleSavings)),
	}

	for _, t := range def.Tools {
		if strings.TrimSpace(t.ID) == "" || strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("%w: id and name are required", ErrInvalidTool)
		}
		if t.MonthlyPrice < 0 {
			return nil, fmt.Errorf("%w: %s has a negative price", ErrInvalidTool, t.ID)
		}
		if _, exists := c.tools[t.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTool, t.ID)
		}
		t.Tags = slices.Clone(t.Tags)
		c.tools[t.ID] = t
		c.order = append(c.order, t.ID)
		if t.Category != "" && !slices.Contains(c.categories, t.Category) {
			c.categories = append(c.categories, t.Category)
		}
	}

	for focus, rule := range def.FocusRules {
		if !focus.Valid() {
			return nil, fmt.Errorf("%w: unknown focus %q", ErrInvalidRule, focus)
		}
		if !slices.Contains(RuleOrder, focus) {
			return nil, fmt.Errorf("%w: focus %q cannot carry a rule", ErrInvalidRule, focus)
		}
		if _, ok := c.tools[rule.ToolID]; !ok {
			return nil, fmt.Errorf("%w: focus %s references %s", ErrUnknownTool, focus, rule.ToolID)
		}
		c.focusRules[focus] = rule
	}

	if _, ok := c.tools[def.Fallback.ToolID]; !ok {
		return nil, fmt.Errorf("%w: fallback references %q", ErrUnknownTool, def.Fallback.ToolID)
	}
	c.fallback = def.Fallback

	for role, amount := range def.RoleSavings {
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q in savings table", ErrInvalidRule, role)
		}
		c.roleSavings[role] = amount
	}

	seen := make(map[string]bool, len(def.Workflows))
	for _, w := range def.Workflows {
		if w.Slug == "" || seen[w.Slug] {
			return nil, fmt.Errorf("%w: missing or duplicate slug %q", ErrInvalidWorkflow, w.Slug)
		}
		if w.Difficulty != "" && !w.Difficulty.Valid() {
			return nil, fmt.Errorf("%w: %s has difficulty %q", ErrInvalidWorkflow, w.Slug, w.Difficulty)
		}
		for _, id := range w.ToolIDs {
			if _, ok := c.tools[id]; !ok {
				return nil, fmt.Errorf("%w: workflow %s references %s", ErrUnknownTool, w.Slug, id)
			}
		}
		seen[w.Slug] = true
		w.ToolIDs = slices.Clone(w.ToolIDs)
		c.workflows = append(c.workflows, w)
	}

	return c, nil
}

// Tool returns the tool with the given id.
func (c *Catalog) Tool(id string) (models.Tool, bool) {
	t, ok := c.tools[id]
	return t, ok
}

// Tools returns every tool in definition order.
func (c *Catalog) Tools() []models.Tool {
	tools := make([]models.Tool, 0, len(c.order))
	for _, id := range c.order {
		tools = append(tools, c.tools[id])
	}
	return tools
}

func (c *Catalog) ToolsByCategory(category string) []models.Tool {
	var tools []models.Tool
	for _, id := range c.order {
		if t := c.tools[id]; strings.EqualFold(t.Category, category) {
			tools = append(tools, t)
		}
	}
	return tools
}

// Categories returns the distinct tool categories in first-seen order.
func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}

// Search matches query case-insensitively against name, description and tags.
func (c *Catalog) Search(query string) []models.Tool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.Tools()
	}
	var tools []models.Tool
	for _, id := range c.order {
		t := c.tools[id]
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			slices.ContainsFunc(t.Tags, func(tag string) bool { return strings.EqualFold(tag, q) }) {
			tools = append(tools, t)
		}
	}
	return tools
}

func (c *Catalog) Workflows() []models.Workflow {
	return slices.Clone(c.workflows)
}

func (c *Catalog) Workflow(slug string) (models.Workflow, bool) {
	for _, w := range c.workflows {
		if w.Slug == slug {
			return w, true
		}
	}
	return models.Workflow{}, false
}

// RuleFor returns the rule for a focus area, if one is defined.
func (c *Catalog) RuleFor(f models.Focus) (Rule, bool) {
	r, ok := c.focusRules[f]
	return r, ok
}

func (c *Catalog) Fallback() Rule {
	return c.fallback
}

// MonthlySavings returns the estimated monthly savings for a role.
func (c *Catalog) MonthlySavings(role models.Role) int {
	if amount, ok := c.roleSavings[role]; ok {
		return amount
	}
	return DefaultMonthlySavings
}

// UnmappedFocus lists focus areas users can pick that have no rule.
func (c *Catalog) UnmappedFocus() []models.Focus {
	var unmapped []models.Focus
	for _, f := range models.AllFocusAreas {
		if _, ok := c.focusRules[f]; !ok || !slices.Contains(RuleOrder, f) {
			unmapped = append(unmapped, f)
		}
	}
	return unmapped
}
