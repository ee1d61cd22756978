package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HammerMeetNail/aistackhub/internal/logging"
	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/questionnaire"
	"github.com/HammerMeetNail/aistackhub/internal/recommend"
)

const (
	questionnaireKeyPrefix = "questionnaire:"
	defaultSessionTTL      = 24 * time.Hour
)

var ErrSessionNotFound = errors.New("questionnaire session not found")

// QuestionnaireService stores collector sessions in the KV store. Every call
// loads the session, applies one action and writes it back with a fresh TTL.
type QuestionnaireService struct {
	kv     KV
	engine questionnaire.Recommender
	pacer  recommend.Pacer
	ttl    time.Duration
}

func NewQuestionnaireService(kv KV, engine questionnaire.Recommender, pacer recommend.Pacer, ttl time.Duration) *QuestionnaireService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if pacer == nil {
		pacer = recommend.NoDelay
	}
	return &QuestionnaireService{
		kv:     kv,
		engine: engine,
		pacer:  pacer,
		ttl:    ttl,
	}
}

func questionnaireKey(id uuid.UUID) string {
	return questionnaireKeyPrefix + id.String()
}

func (s *QuestionnaireService) Create(ctx context.Context) (models.QuestionnaireState, error) {
	c := questionnaire.New()
	if err := s.save(ctx, c); err != nil {
		return models.QuestionnaireState{}, err
	}
	return c.Snapshot(), nil
}

func (s *QuestionnaireService) Get(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return models.QuestionnaireState{}, err
	}
	return c.Snapshot(), nil
}

func (s *QuestionnaireService) SelectRole(ctx context.Context, id uuid.UUID, role models.Role) (models.QuestionnaireState, error) {
	return s.apply(ctx, id, func(c *questionnaire.Collector) error {
		return c.SelectRole(role)
	})
}

func (s *QuestionnaireService) SelectExperience(ctx context.Context, id uuid.UUID, level models.Experience) (models.QuestionnaireState, error) {
	return s.apply(ctx, id, func(c *questionnaire.Collector) error {
		return c.SelectExperience(level)
	})
}

func (s *QuestionnaireService) ToggleFocus(ctx context.Context, id uuid.UUID, focus models.Focus) (models.QuestionnaireState, error) {
	return s.apply(ctx, id, func(c *questionnaire.Collector) error {
		return c.ToggleFocus(focus)
	})
}

func (s *QuestionnaireService) SelectBudget(ctx context.Context, id uuid.UUID, budget int) (models.QuestionnaireState, error) {
	return s.apply(ctx, id, func(c *questionnaire.Collector) error {
		return c.SelectBudget(budget)
	})
}

func (s *QuestionnaireService) SelectIndustry(ctx context.Context, id uuid.UUID, industry models.Industry) (models.QuestionnaireState, error) {
	return s.apply(ctx, id, func(c *questionnaire.Collector) error {
		return c.SelectIndustry(industry)
	})
}

// Generate runs the engine for a session at the budget and focus step. The
// generating step is never persisted: a failed pace leaves the stored
// session untouched.
func (s *QuestionnaireService) Generate(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
	state, err := s.apply(ctx, id, func(c *questionnaire.Collector) error {
		_, err := c.Generate(ctx, s.engine, s.pacer)
		return err
	})
	if err != nil {
		return state, err
	}

	if state.Result != nil {
		logging.Info("Stack generated", map[string]interface{}{
			"session_id":   id.String(),
			"role":         string(state.Result.Profile.Role()),
			"tools":        len(state.Result.Tools),
			"total_cost":   state.Result.TotalCost,
			"budget_match": state.Result.BudgetMatch,
		})
	}
	return state, nil
}

func (s *QuestionnaireService) Restart(ctx context.Context, id uuid.UUID) (models.QuestionnaireState, error) {
	return s.apply(ctx, id, func(c *questionnaire.Collector) error {
		return c.Restart()
	})
}

func (s *QuestionnaireService) apply(ctx context.Context, id uuid.UUID, action func(*questionnaire.Collector) error) (models.QuestionnaireState, error) {
	c, err := s.load(ctx, id)
	if err != nil {
		return models.QuestionnaireState{}, err
	}
	if err := action(c); err != nil {
		return c.Snapshot(), err
	}
	if err := s.save(ctx, c); err != nil {
		return models.QuestionnaireState{}, err
	}
	return c.Snapshot(), nil
}

func (s *QuestionnaireService) load(ctx context.Context, id uuid.UUID) (*questionnaire.Collector, error) {
	data, err := s.kv.Get(ctx, questionnaireKey(id))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading questionnaire session: %w", err)
	}

	var state models.QuestionnaireState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decoding questionnaire session: %w", err)
	}
	return questionnaire.Restore(state), nil
}

func (s *QuestionnaireService) save(ctx context.Context, c *questionnaire.Collector) error {
	data, err := json.Marshal(c.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding questionnaire session: %w", err)
	}
	if err := s.kv.Set(ctx, questionnaireKey(c.ID()), data, s.ttl); err != nil {
		return fmt.Errorf("saving questionnaire session: %w", err)
	}
	return nil
}
