package repository

import (
	"context"
	"testing"

	"tradelens_backend/internal/model"
)

func TestPredictionStoreDefaults(t *testing.T) {
	repo := NewPredictionRepository(newTestGateway(t))

	p, err := repo.Store(context.Background(), &model.Prediction{
		UserID:    "user001",
		Asset:     "BTC",
		Direction: model.DirectionUp,
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Errorf("missing id or timestamp: %+v", p)
	}
	if p.Result != model.OutcomePending {
		t.Errorf("result = %q, want pending", p.Result)
	}
}

func TestPredictionUpdate(t *testing.T) {
	repo := NewPredictionRepository(newTestGateway(t))
	ctx := context.Background()

	stored, err := repo.Store(ctx, &model.Prediction{
		UserID:    "user001",
		Asset:     "BTC",
		Direction: model.DirectionUp,
	})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	updated, err := repo.Update(ctx, stored.ID, func(p *model.Prediction) {
		p.Result = model.OutcomeWin
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Result != model.OutcomeWin {
		t.Errorf("result = %q, want win", updated.Result)
	}
	if updated.Asset != "BTC" || updated.Direction != model.DirectionUp {
		t.Errorf("fields other than result changed: %+v", updated)
	}

	missing, err := repo.Update(ctx, "missing", func(p *model.Prediction) {})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown id, got %+v", missing)
	}
}

func TestPredictionListByUser(t *testing.T) {
	repo := NewPredictionRepository(newTestGateway(t))
	ctx := context.Background()

	for _, userID := range []string{"user001", "user002", "user001"} {
		if _, err := repo.Store(ctx, &model.Prediction{
			UserID:    userID,
			Asset:     "BTC",
			Direction: model.DirectionUp,
		}); err != nil {
			t.Fatalf("Store: %v", err)
		}
	}

	mine, err := repo.ListByUser(ctx, "user001")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 predictions for user001, got %d", len(mine))
	}
}
