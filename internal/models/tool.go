package models

// Tool is a third-party AI product listed in the directory.
type Tool struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Category     string   `json:"category" yaml:"category"`
	MonthlyPrice int      `json:"price" yaml:"price"`
	Description  string   `json:"description" yaml:"description"`
	Website      string   `json:"website,omitempty" yaml:"website,omitempty"`
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ToolRecommendation is a catalog tool selected for a specific profile.
type ToolRecommendation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	MonthlyPrice int    `json:"price"`
	Description  string `json:"description"`
	MatchReason  string `json:"match_reason"`
}

// Recommend wraps the tool with the reason it was picked.
func (t Tool) Recommend(reason string) ToolRecommendation {
	return ToolRecommendation{
		ID:           t.ID,
		Name:         t.Name,
		Category:     t.Category,
		MonthlyPrice: t.MonthlyPrice,
		Description:  t.Description,
		MatchReason:  reason,
	}
}

type ToolsByCategory struct {
	Category string `json:"category"`
	Tools    []Tool `json:"tools"`
}
