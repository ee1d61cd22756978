package models

import (
	"time"

	"github.com/google/uuid"
)

// Step identifies where a questionnaire session is in the flow.
type Step string

const (
	StepRole           Step = "role"
	StepExperience     Step = "experience"
	StepBudgetAndFocus Step = "budget_and_focus"
	StepGenerating     Step = "generating"
	StepResult         Step = "result"
)

// QuestionnaireState is the stored form of a questionnaire session.
type QuestionnaireState struct {
	ID          uuid.UUID    `json:"id"`
	Step        Step         `json:"step"`
	Profile     DraftProfile `json:"profile"`
	CanGenerate bool         `json:"can_generate"`
	Result      *ToolStack   `json:"result,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// QuestionnaireOptions lists every choice the questionnaire offers.
type QuestionnaireOptions struct {
	Roles      []Role       `json:"roles"`
	Experience []Experience `json:"experience"`
	Budgets    []int        `json:"budgets"`
	FocusAreas []Focus      `json:"focus_areas"`
	Industries []Industry   `json:"industries"`
}

func DefaultQuestionnaireOptions() QuestionnaireOptions {
	return QuestionnaireOptions{
		Roles:      Roles,
		Experience: ExperienceLevels,
		Budgets:    Budgets,
		FocusAreas: AllFocusAreas,
		Industries: Industries,
	}
}
