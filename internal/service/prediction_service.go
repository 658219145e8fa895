package service

import (
	"context"
	"fmt"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/repository"
	"tradelens_backend/internal/util"
	"tradelens_backend/pkg/monitoring"
)

// Health score impact of settled predictions.
const (
	healthWin  = 2
	healthLoss = -1
)

type PredictionService struct {
	PredictionRepo *repository.PredictionRepository
	UserRepo       *repository.UserRepository
}

func NewPredictionService(predictionRepo *repository.PredictionRepository, userRepo *repository.UserRepository) *PredictionService {
	return &PredictionService{PredictionRepo: predictionRepo, UserRepo: userRepo}
}

type PredictionRequest struct {
	Asset      string `json:"asset" binding:"required"`
	Timeframe  string `json:"timeframe"`
	Direction  string `json:"direction" binding:"required"`
	Confidence int    `json:"confidence"`
	Rationale  string `json:"rationale" binding:"required"`
}

// Submit validates and stores a new prediction, then records its id on
// the user profile.
func (s *PredictionService) Submit(ctx context.Context, userID string, req PredictionRequest) (*model.Prediction, error) {
	p := &model.Prediction{
		UserID:     userID,
		Asset:      req.Asset,
		Timeframe:  req.Timeframe,
		Direction:  model.Direction(req.Direction),
		Confidence: req.Confidence,
		Rationale:  req.Rationale,
		Result:     model.OutcomePending,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.PredictionRepo.Store(ctx, p)
	if err != nil {
		return nil, err
	}

	// Profile keeps prediction ids for the dashboard counters; a missing
	// user just means nothing to record.
	if _, err := s.UserRepo.Update(ctx, func(u *model.User) {
		u.Predictions = append(u.Predictions, stored.ID)
	}); err != nil {
		return nil, err
	}

	monitoring.PredictionCounter.WithLabelValues(stored.Asset).Inc()
	return stored, nil
}

// ListByUser returns the user's predictions in submission order.
func (s *PredictionService) ListByUser(ctx context.Context, userID string) ([]model.Prediction, error) {
	return s.PredictionRepo.ListByUser(ctx, userID)
}

// SettleResult sets the outcome of a pending prediction. Only the result
// field is mutated; everything else on the record is immutable. A win
// nudges the trader health score up, a loss nudges it down.
func (s *PredictionService) SettleResult(ctx context.Context, id string, outcome model.Outcome) (*model.Prediction, error) {
	if outcome != model.OutcomeWin && outcome != model.OutcomeLoss {
		return nil, fmt.Errorf("%w: result must be win or loss", model.ErrValidation)
	}

	var alreadySettled bool
	updated, err := s.PredictionRepo.Update(ctx, id, func(p *model.Prediction) {
		if p.Result != model.OutcomePending {
			alreadySettled = true
			return
		}
		p.Result = outcome
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, util.ErrPredictionNotFound
	}
	if alreadySettled {
		return nil, util.ErrResultAlreadySet
	}

	delta := healthWin
	if outcome == model.OutcomeLoss {
		delta = healthLoss
	}
	if _, err := s.UserRepo.Update(ctx, func(u *model.User) {
		u.AdjustHealthScore(delta)
	}); err != nil {
		return nil, err
	}

	return updated, nil
}
