package services

import (
	"context"

	"github.com/HammerMeetNail/aistackhub/internal/models"
	"github.com/HammerMeetNail/aistackhub/internal/questionnaire"
	"github.com/HammerMeetNail/aistackhub/internal/recommend"
)

// RecommendationService produces a stack from a full profile in one call,
// without a stored questionnaire session.
type RecommendationService struct {
	engine questionnaire.Recommender
	pacer  recommend.Pacer
}

func NewRecommendationService(engine questionnaire.Recommender, pacer recommend.Pacer) *RecommendationService {
	if pacer == nil {
		pacer = recommend.NoDelay
	}
	return &RecommendationService{engine: engine, pacer: pacer}
}

func (s *RecommendationService) Recommend(ctx context.Context, draft models.DraftProfile) (models.ToolStack, error) {
	profile, err := draft.Complete()
	if err != nil {
		return models.ToolStack{}, err
	}
	if err := s.pacer.Pace(ctx); err != nil {
		return models.ToolStack{}, err
	}
	return s.engine.Recommend(profile), nil
}
