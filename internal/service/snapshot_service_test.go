package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"tradelens_backend/internal/config"
	"tradelens_backend/internal/model"
	"tradelens_backend/internal/util"
)

func newTestSnapshotService(t *testing.T) (*SnapshotService, *testRepos) {
	t.Helper()
	repos := newTestRepos(t)
	backup := &LocalBackupProvider{Config: &config.BackupConfig{LocalPath: t.TempDir()}}
	svc := NewSnapshotService(repos.user, repos.prediction, repos.lesson, repos.post, repos.settings, backup)
	return svc, repos
}

func populate(t *testing.T, repos *testRepos) {
	t.Helper()
	ctx := context.Background()

	if err := repos.user.Store(ctx, &model.User{
		ID:                "user001",
		DisplayName:       "Alex",
		Email:             "alex@example.com",
		TraderHealthScore: 52,
		Level:             1,
	}); err != nil {
		t.Fatalf("store user: %v", err)
	}
	if _, err := repos.prediction.Store(ctx, &model.Prediction{
		UserID:    "user001",
		Asset:     "BTC",
		Direction: model.DirectionUp,
	}); err != nil {
		t.Fatalf("store prediction: %v", err)
	}
	if _, err := repos.lesson.Upsert(ctx, model.LessonProgress{
		UserID:   "user001",
		LessonID: "rsi-basics",
	}); err != nil {
		t.Fatalf("store lesson: %v", err)
	}
	if err := repos.post.SeedSampleData(ctx); err != nil {
		t.Fatalf("seed posts: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, repos := newTestSnapshotService(t)
	ctx := context.Background()
	populate(t, repos)

	exported, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	// Wipe everything, then restore from the export.
	if err := repos.user.Clear(ctx); err != nil {
		t.Fatalf("clear user: %v", err)
	}
	if err := repos.prediction.Replace(ctx, nil); err != nil {
		t.Fatalf("clear predictions: %v", err)
	}
	if err := repos.post.Replace(ctx, nil); err != nil {
		t.Fatalf("clear posts: %v", err)
	}

	if err := svc.Import(ctx, exported); err != nil {
		t.Fatalf("Import: %v", err)
	}

	reexported, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export after import: %v", err)
	}

	var a, b Snapshot
	if err := json.Unmarshal(exported, &a); err != nil {
		t.Fatalf("unmarshal first export: %v", err)
	}
	if err := json.Unmarshal(reexported, &b); err != nil {
		t.Fatalf("unmarshal second export: %v", err)
	}
	if a.User == nil || b.User == nil || a.User.ID != b.User.ID {
		t.Errorf("user did not round trip: %+v vs %+v", a.User, b.User)
	}
	if len(a.Predictions) != len(b.Predictions) || len(a.Posts) != len(b.Posts) || len(a.Lessons) != len(b.Lessons) {
		t.Errorf("collection sizes changed: predictions %d/%d posts %d/%d lessons %d/%d",
			len(a.Predictions), len(b.Predictions), len(a.Posts), len(b.Posts), len(a.Lessons), len(b.Lessons))
	}
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	svc, repos := newTestSnapshotService(t)
	ctx := context.Background()
	populate(t, repos)

	before, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	err = svc.Import(ctx, []byte("{definitely not json"))
	if !errors.Is(err, util.ErrInvalidSnapshot) {
		t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
	}

	after, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if string(before) != string(after) {
		t.Error("state changed after a rejected import")
	}
}

func TestImportAppliesOnlyPresentKeys(t *testing.T) {
	svc, repos := newTestSnapshotService(t)
	ctx := context.Background()
	populate(t, repos)

	partial := `{"settings": {"theme": "dark", "notifications": false, "riskTolerance": "high", "defaultTimeframe": "4h", "autoSavePredictions": false}}`
	if err := svc.Import(ctx, []byte(partial)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	settings, err := repos.settings.Get(ctx)
	if err != nil {
		t.Fatalf("settings get: %v", err)
	}
	if settings.Theme != "dark" || settings.RiskTolerance != "high" {
		t.Errorf("settings not applied: %+v", settings)
	}

	user, err := repos.user.Get(ctx)
	if err != nil {
		t.Fatalf("user get: %v", err)
	}
	if user == nil || user.ID != "user001" {
		t.Errorf("user collection should be untouched, got %+v", user)
	}
	posts, _ := repos.post.All(ctx)
	if len(posts) != 8 {
		t.Errorf("post collection should be untouched, got %d posts", len(posts))
	}
}

func TestBackupNowWritesSnapshot(t *testing.T) {
	svc, repos := newTestSnapshotService(t)
	populate(t, repos)

	location, err := svc.BackupNow(context.Background())
	if err != nil {
		t.Fatalf("BackupNow: %v", err)
	}
	if location == "" {
		t.Error("expected a backup location")
	}

	data, err := os.ReadFile(location)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("backup is not a valid snapshot: %v", err)
	}
	if snapshot.User == nil || snapshot.User.ID != "user001" {
		t.Errorf("backup missing user: %+v", snapshot.User)
	}
}
