// Package recommend turns a completed profile into a tool stack.
package recommend

import (
	"github.com/HammerMeetNail/aistackhub/internal/catalog"
	"github.com/HammerMeetNail/aistackhub/internal/models"
)

const (
	// fallbackThreshold is the candidate count below which the general
	// assistant is appended.
	fallbackThreshold = 3

	hoursPerFocus = 5
	baseHours     = 10
)

// Engine applies the catalog's rules. It holds no mutable state and is safe
// for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Recommend builds the stack for p. It is deterministic and never fails.
func (e *Engine) Recommend(p models.CompleteProfile) models.ToolStack {
	tools := make([]models.ToolRecommendation, 0, models.MaxStackTools)
	seen := make(map[string]bool, models.MaxStackTools)

	add := func(rule catalog.Rule) {
		if seen[rule.ToolID] {
			return
		}
		tool, ok := e.catalog.Tool(rule.ToolID)
		if !ok {
			return
		}
		seen[rule.ToolID] = true
		tools = append(tools, tool.Recommend(rule.MatchReason))
	}

	for _, focus := range catalog.RuleOrder {
		if !p.HasFocus(focus) {
			continue
		}
		if rule, ok := e.catalog.RuleFor(focus); ok {
			add(rule)
		}
	}

	if len(tools) < fallbackThreshold {
		add(e.catalog.Fallback())
	}

	if len(tools) > models.MaxStackTools {
		tools = tools[:models.MaxStackTools]
	}

	total := 0
	for _, t := range tools {
		total += t.MonthlyPrice
	}

	return models.ToolStack{
		Profile:     p,
		Tools:       tools,
		TotalCost:   total,
		BudgetMatch: total <= p.Budget(),
		Savings: models.Savings{
			TimePerWeekHours: len(p.Focus())*hoursPerFocus + baseHours,
			CostPerMonth:     e.catalog.MonthlySavings(p.Role()),
		},
	}
}
