package service

import (
	"testing"

	"tradelens_backend/internal/repository"
	"tradelens_backend/pkg/kvstore"
)

type testRepos struct {
	user       *repository.UserRepository
	prediction *repository.PredictionRepository
	lesson     *repository.LessonRepository
	post       *repository.PostRepository
	settings   *repository.SettingsRepository
}

func newTestRepos(t *testing.T) *testRepos {
	t.Helper()
	store, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	gw := repository.NewGateway(store)
	return &testRepos{
		user:       repository.NewUserRepository(gw),
		prediction: repository.NewPredictionRepository(gw),
		lesson:     repository.NewLessonRepository(gw),
		post:       repository.NewPostRepository(gw),
		settings:   repository.NewSettingsRepository(gw),
	}
}
