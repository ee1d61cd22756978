package models

import "time"

// MaxStackTools caps the number of tools in a recommendation.
const MaxStackTools = 4

type Savings struct {
	TimePerWeekHours int `json:"time_per_week_hours"`
	CostPerMonth     int `json:"cost_per_month"`
}

// ToolStack is the result of running the recommendation engine on a profile.
type ToolStack struct {
	Profile     CompleteProfile      `json:"profile"`
	Tools       []ToolRecommendation `json:"tools"`
	TotalCost   int                  `json:"total_cost"`
	BudgetMatch bool                 `json:"budget_match"`
	Savings     Savings              `json:"savings"`
}

// SharedStack is a stack persisted for a share link.
type SharedStack struct {
	ID        string    `json:"id"`
	Stack     ToolStack `json:"stack"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Views     int       `json:"views"`
}

func (s *SharedStack) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
