package repository

import (
	"context"
	"testing"

	"tradelens_backend/internal/model"
)

func TestSettingsDefaultsWhenAbsent(t *testing.T) {
	repo := NewSettingsRepository(newTestGateway(t))

	settings, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings != model.DefaultSettings() {
		t.Errorf("got %+v, want defaults %+v", settings, model.DefaultSettings())
	}
}

func TestSettingsStoreOverwrites(t *testing.T) {
	repo := NewSettingsRepository(newTestGateway(t))
	ctx := context.Background()

	want := model.Settings{
		Theme:            "dark",
		RiskTolerance:    "high",
		DefaultTimeframe: "4h",
	}
	if err := repo.Store(ctx, want); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
