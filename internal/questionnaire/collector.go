// Package questionnaire walks a user through the stack generator steps and
// hands the finished profile to the recommendation engine.
package questionnaire

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/recommend"
)

var ErrWrongStep = errors.New("action not available at this step")

// Recommender produces a stack for a completed profile.
type Recommender interface {
	Recommend(p models.CompleteProfile) models.ToolStack
}

// Collector is a single questionnaire session. It is not safe for concurrent
// use; each session belongs to one user.
type Collector struct {
	state models.QuestionnaireState
	now   func() time.Time
}

func New() *Collector {
	return newCollector(time.Now)
}

func newCollector(now func() time.Time) *Collector {
	ts := now().UTC()
	return &Collector{
		state: models.QuestionnaireState{
			ID:        uuid.New(),
			Step:      models.StepRole,
			CreatedAt: ts,
			UpdatedAt: ts,
		},
		now: now,
	}
}

// Restore resumes a session from a stored snapshot.
func Restore(state models.QuestionnaireState) *Collector {
	state.Profile.Focus = append([]models.Focus(nil), state.Profile.Focus...)
	return &Collector{state: state, now: time.Now}
}

// Snapshot returns a copy of the session state suitable for storage.
func (c *Collector) Snapshot() models.QuestionnaireState {
	s := c.state
	s.Profile.Focus = append([]models.Focus(nil), c.state.Profile.Focus...)
	s.CanGenerate = c.CanGenerate()
	return s
}

func (c *Collector) ID() uuid.UUID     { return c.state.ID }
func (c *Collector) Step() models.Step { return c.state.Step }

func (c *Collector) touch() {
	c.state.UpdatedAt = c.now().UTC()
}

func (c *Collector) require(step models.Step) error {
	if c.state.Step != step {
		return fmt.Errorf("%w: at %s, need %s", ErrWrongStep, c.state.Step, step)
	}
	return nil
}

// SelectRole records the role and advances to the experience step.
func (c *Collector) SelectRole(role models.Role) error {
	if err := c.require(models.StepRole); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidRole, role)
	}
	c.state.Profile.Role = role
	c.state.Step = models.StepExperience
	c.touch()
	return nil
}

// SelectExperience records the experience level and advances to budget and focus.
func (c *Collector) SelectExperience(level models.Experience) error {
	if err := c.require(models.StepExperience); err != nil {
		return err
	}
	if !level.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidExperience, level)
	}
	c.state.Profile.Experience = level
	c.state.Step = models.StepBudgetAndFocus
	c.touch()
	return nil
}

func (c *Collector) ToggleFocus(f models.Focus) error {
	if err := c.require(models.StepBudgetAndFocus); err != nil {
		return err
	}
	if err := c.state.Profile.ToggleFocus(f); err != nil {
		return err
	}
	c.touch()
	return nil
}

func (c *Collector) SelectBudget(budget int) error {
	if err := c.require(models.StepBudgetAndFocus); err != nil {
		return err
	}
	if !models.ValidBudget(budget) {
		return fmt.Errorf("%w: %d", models.ErrInvalidBudget, budget)
	}
	c.state.Profile.Budget = budget
	c.touch()
	return nil
}

// SelectIndustry sets the optional industry. An empty value clears it.
func (c *Collector) SelectIndustry(industry models.Industry) error {
	switch c.state.Step {
	case models.StepGenerating, models.StepResult:
		return fmt.Errorf("%w: industry is locked at %s", ErrWrongStep, c.state.Step)
	}
	if industry != "" && !industry.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidIndustry, industry)
	}
	c.state.Profile.Industry = industry
	c.touch()
	return nil
}

// CanGenerate reports whether the generate action is enabled.
func (c *Collector) CanGenerate() bool {
	return c.state.Step == models.StepBudgetAndFocus && c.state.Profile.Ready()
}

// Generate completes the profile, waits on pacer, runs the recommender and
// moves the session to the result step.
func (c *Collector) Generate(ctx context.Context, r Recommender, pacer recommend.Pacer) (models.ToolStack, error) {
	if err := c.require(models.StepBudgetAndFocus); err != nil {
		return models.ToolStack{}, err
	}
	if !c.CanGenerate() {
		return models.ToolStack{}, models.ErrProfileIncomplete
	}
	profile, err := c.state.Profile.Complete()
	if err != nil {
		return models.ToolStack{}, err
	}

	c.state.Step = models.StepGenerating
	c.touch()

	if pacer == nil {
		pacer = recommend.NoDelay
	}
	if err := pacer.Pace(ctx); err != nil {
		c.state.Step = models.StepBudgetAndFocus
		return models.ToolStack{}, err
	}

	stack := r.Recommend(profile)
	c.state.Result = &stack
	c.state.Step = models.StepResult
	c.touch()
	return stack, nil
}

// Result returns the generated stack once the session has reached the result step.
func (c *Collector) Result() (models.ToolStack, bool) {
	if c.state.Step != models.StepResult || c.state.Result == nil {
		return models.ToolStack{}, false
	}
	return *c.state.Result, true
}

// Restart returns a finished session to the first step with an empty profile.
// The session keeps its id.
func (c *Collector) Restart() error {
	if err := c.require(models.StepResult); err != nil {
		return err
	}
	c.state.Profile = models.DraftProfile{}
	c.state.Result = nil
	c.state.Step = models.StepRole
	c.touch()
	return nil
}
