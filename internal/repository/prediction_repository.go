package repository

import (
	"context"
	"time"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/util"

	"github.com/google/uuid"
)

// PredictionRepository owns the prediction collection. Entries are
// append-only in insertion order; only Update mutates an existing row.
type PredictionRepository struct {
	gw *Gateway
}

func NewPredictionRepository(gw *Gateway) *PredictionRepository {
	return &PredictionRepository{gw: gw}
}

// Store assigns a fresh id and creation timestamp, appends the prediction
// and persists the whole collection.
func (r *PredictionRepository) Store(ctx context.Context, p *model.Prediction) (*model.Prediction, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var predictions []model.Prediction
	if _, err := r.gw.load(ctx, util.KeyPredictions, &predictions); err != nil {
		return nil, err
	}

	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()
	if p.Result == "" {
		p.Result = model.OutcomePending
	}

	predictions = append(predictions, *p)
	if err := r.gw.save(ctx, util.KeyPredictions, predictions); err != nil {
		return nil, err
	}
	return p, nil
}

// All returns the full collection in insertion order.
func (r *PredictionRepository) All(ctx context.Context) ([]model.Prediction, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var predictions []model.Prediction
	if _, err := r.gw.load(ctx, util.KeyPredictions, &predictions); err != nil {
		return nil, err
	}
	return predictions, nil
}

// ListByUser returns the user's predictions in insertion order.
func (r *PredictionRepository) ListByUser(ctx context.Context, userID string) ([]model.Prediction, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	var out []model.Prediction
	for _, p := range all {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Update applies a mutation to the prediction with the given id and
// persists the collection. Returns nil without error when the id is
// unknown.
func (r *PredictionRepository) Update(ctx context.Context, id string, apply func(*model.Prediction)) (*model.Prediction, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var predictions []model.Prediction
	if _, err := r.gw.load(ctx, util.KeyPredictions, &predictions); err != nil {
		return nil, err
	}

	for i := range predictions {
		if predictions[i].ID == id {
			apply(&predictions[i])
			if err := r.gw.save(ctx, util.KeyPredictions, predictions); err != nil {
				return nil, err
			}
			p := predictions[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Replace swaps the entire collection. Used by snapshot import.
func (r *PredictionRepository) Replace(ctx context.Context, predictions []model.Prediction) error {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()
	return r.gw.save(ctx, util.KeyPredictions, predictions)
}
