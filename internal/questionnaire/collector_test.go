package questionnaire

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HammerMeetNail/aistackhub/internal/catalog"
	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/recommend"
)

func fixedClock() func() time.Time {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return func() time.Time { return ts }
}

func readyCollector(t *testing.T) *Collector {
	t.Helper()
	c := newCollector(fixedClock())
	if err := c.SelectRole(models.RoleDeveloper); err != nil {
		t.Fatalf("select role: %v", err)
	}
	if err := c.SelectExperience(models.ExperienceAdvanced); err != nil {
		t.Fatalf("select experience: %v", err)
	}
	return c
}

func TestCollector_HappyPath(t *testing.T) {
	c := readyCollector(t)
	if c.Step() != models.StepBudgetAndFocus {
		t.Fatalf("expected budget step, got %s", c.Step())
	}
	if c.CanGenerate() {
		t.Fatal("generate should be disabled before budget and focus")
	}

	if err := c.ToggleFocus(models.FocusWriting); err != nil {
		t.Fatalf("toggle focus: %v", err)
	}
	if c.CanGenerate() {
		t.Fatal("generate should be disabled without budget")
	}
	if err := c.SelectBudget(100); err != nil {
		t.Fatalf("select budget: %v", err)
	}
	if !c.CanGenerate() {
		t.Fatal("generate should be enabled")
	}

	engine := recommend.New(catalog.Default())
	stack, err := c.Generate(context.Background(), engine, recommend.NoDelay)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if c.Step() != models.StepResult {
		t.Fatalf("expected result step, got %s", c.Step())
	}
	if stack.TotalCost != 40 || len(stack.Tools) != 2 {
		t.Fatalf("unexpected stack: %+v", stack)
	}
	if got, ok := c.Result(); !ok || got.TotalCost != stack.TotalCost {
		t.Fatal("expected stored result")
	}
	if stack.Profile.Experience() != models.ExperienceAdvanced {
		t.Fatalf("expected experience to be retained, got %q", stack.Profile.Experience())
	}
}

func TestCollector_ToggleFocusRemoves(t *testing.T) {
	c := readyCollector(t)
	_ = c.SelectBudget(50)
	_ = c.ToggleFocus(models.FocusVideo)
	_ = c.ToggleFocus(models.FocusVideo)

	if c.CanGenerate() {
		t.Fatal("expected generate disabled after focus removed")
	}
	if _, err := c.Generate(context.Background(), recommend.New(catalog.Default()), nil); !errors.Is(err, models.ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete, got %v", err)
	}
	if c.Step() != models.StepBudgetAndFocus {
		t.Fatalf("expected to stay on budget step, got %s", c.Step())
	}
}

func TestCollector_WrongStep(t *testing.T) {
	c := newCollector(fixedClock())

	if err := c.SelectExperience(models.ExperienceBeginner); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
	if err := c.ToggleFocus(models.FocusVideo); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
	if err := c.SelectBudget(100); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
	if err := c.Restart(); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}

	_ = c.SelectRole(models.RoleMarketer)
	if err := c.SelectRole(models.RoleDesigner); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep for second role selection, got %v", err)
	}
}

func TestCollector_InvalidValues(t *testing.T) {
	c := newCollector(fixedClock())
	if err := c.SelectRole("pilot"); !errors.Is(err, models.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if c.Step() != models.StepRole {
		t.Fatal("invalid role must not advance")
	}

	c = readyCollector(t)
	if err := c.SelectBudget(75); !errors.Is(err, models.ErrInvalidBudget) {
		t.Fatalf("expected ErrInvalidBudget, got %v", err)
	}
	if err := c.ToggleFocus("podcasts"); !errors.Is(err, models.ErrInvalidFocus) {
		t.Fatalf("expected ErrInvalidFocus, got %v", err)
	}
	if err := c.SelectIndustry("mining"); !errors.Is(err, models.ErrInvalidIndustry) {
		t.Fatalf("expected ErrInvalidIndustry, got %v", err)
	}
}

func TestCollector_Industry(t *testing.T) {
	c := newCollector(fixedClock())
	if err := c.SelectIndustry(models.IndustrySaaS); err != nil {
		t.Fatalf("select industry: %v", err)
	}
	if got := c.Snapshot().Profile.Industry; got != models.IndustrySaaS {
		t.Fatalf("expected saas, got %q", got)
	}
	if err := c.SelectIndustry(""); err != nil {
		t.Fatalf("clear industry: %v", err)
	}
	if got := c.Snapshot().Profile.Industry; got != "" {
		t.Fatalf("expected industry cleared, got %q", got)
	}
}

func TestCollector_PacerErrorRevertsStep(t *testing.T) {
	c := readyCollector(t)
	_ = c.SelectBudget(100)
	_ = c.ToggleFocus(models.FocusDesign)

	boom := errors.New("gone")
	pacer := recommend.PacerFunc(func(context.Context) error { return boom })
	if _, err := c.Generate(context.Background(), recommend.New(catalog.Default()), pacer); !errors.Is(err, boom) {
		t.Fatalf("expected pacer error, got %v", err)
	}
	if c.Step() != models.StepBudgetAndFocus {
		t.Fatalf("expected step to revert, got %s", c.Step())
	}
	if !c.CanGenerate() {
		t.Fatal("expected session to remain generatable")
	}
}

func TestCollector_RestartAndRegenerate(t *testing.T) {
	engine := recommend.New(catalog.Default())
	c := readyCollector(t)
	_ = c.SelectBudget(200)
	_ = c.ToggleFocus(models.FocusVideo)
	first, err := c.Generate(context.Background(), engine, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	id := c.ID()
	if err := c.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if c.ID() != id {
		t.Fatal("restart must keep the session id")
	}
	if c.Step() != models.StepRole {
		t.Fatalf("expected role step, got %s", c.Step())
	}
	if _, ok := c.Result(); ok {
		t.Fatal("expected result cleared")
	}

	_ = c.SelectRole(models.RoleDeveloper)
	_ = c.SelectExperience(models.ExperienceAdvanced)
	_ = c.SelectBudget(200)
	_ = c.ToggleFocus(models.FocusVideo)
	second, err := c.Generate(context.Background(), engine, nil)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if first.TotalCost != second.TotalCost || len(first.Tools) != len(second.Tools) {
		t.Fatalf("expected identical regeneration, got %+v and %+v", first, second)
	}
}

func TestCollector_SnapshotRestore(t *testing.T) {
	c := readyCollector(t)
	_ = c.ToggleFocus(models.FocusAnalytics)

	snap := c.Snapshot()
	if snap.CanGenerate {
		t.Fatal("snapshot should report generate disabled")
	}

	restored := Restore(snap)
	if restored.ID() != c.ID() || restored.Step() != models.StepBudgetAndFocus {
		t.Fatalf("unexpected restored state: %+v", restored.Snapshot())
	}
	if err := restored.SelectBudget(500); err != nil {
		t.Fatalf("select budget after restore: %v", err)
	}
	if !restored.CanGenerate() {
		t.Fatal("expected generate enabled after restore and budget")
	}

	snap.Profile.Focus[0] = models.FocusVideo
	if !restored.Snapshot().Profile.HasFocus(models.FocusAnalytics) {
		t.Fatal("restored collector must not share focus storage with snapshot")
	}
}
