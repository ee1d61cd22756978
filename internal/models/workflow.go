package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Workflow is a curated combination of directory tools.
type Workflow struct {
	Slug        string     `json:"slug" yaml:"slug"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Category    string     `json:"category" yaml:"category"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	ToolIDs     []string   `json:"tool_ids" yaml:"tools"`
	HoursSaved  int        `json:"hours_saved_per_week" yaml:"hours_saved_per_week"`
}

// WorkflowDetail is a workflow with its tools resolved from the catalog.
type WorkflowDetail struct {
	Workflow
	Tools       []Tool `json:"tools"`
	MonthlyCost int    `json:"monthly_cost"`
}
