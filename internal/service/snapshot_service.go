package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/repository"
	"tradelens_backend/internal/util"
)

// Snapshot is the portable export document: every collection under its
// own top-level key. Absent keys are omitted so a partial document can be
// re-imported without clobbering the collections it does not mention.
type Snapshot struct {
	User        *model.User            `json:"user,omitempty"`
	Predictions []model.Prediction     `json:"predictions,omitempty"`
	Lessons     []model.LessonProgress `json:"lessons,omitempty"`
	Posts       []model.CommunityPost  `json:"posts,omitempty"`
	Settings    *model.Settings        `json:"settings,omitempty"`
}

type SnapshotService struct {
	UserRepo       *repository.UserRepository
	PredictionRepo *repository.PredictionRepository
	LessonRepo     *repository.LessonRepository
	PostRepo       *repository.PostRepository
	SettingsRepo   *repository.SettingsRepository
	Backup         BackupProvider
}

func NewSnapshotService(
	userRepo *repository.UserRepository,
	predictionRepo *repository.PredictionRepository,
	lessonRepo *repository.LessonRepository,
	postRepo *repository.PostRepository,
	settingsRepo *repository.SettingsRepository,
	backup BackupProvider,
) *SnapshotService {
	return &SnapshotService{
		UserRepo:       userRepo,
		PredictionRepo: predictionRepo,
		LessonRepo:     lessonRepo,
		PostRepo:       postRepo,
		SettingsRepo:   settingsRepo,
		Backup:         backup,
	}
}

// Export collects all five collections into one indented JSON document.
func (s *SnapshotService) Export(ctx context.Context) ([]byte, error) {
	user, err := s.UserRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	predictions, err := s.PredictionRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	lessons, err := s.LessonRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.PostRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.SettingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := Snapshot{
		User:        user,
		Predictions: predictions,
		Lessons:     lessons,
		Posts:       posts,
		Settings:    &settings,
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

// Import parses the whole document up front; a document that does not
// parse leaves every collection untouched. Each key that is present is
// then applied independently, so a snapshot carrying only posts replaces
// posts and nothing else.
func (s *SnapshotService) Import(ctx context.Context, data []byte) error {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("%w: %v", util.ErrInvalidSnapshot, err)
	}

	if snapshot.User != nil {
		if err := s.UserRepo.Store(ctx, snapshot.User); err != nil {
			return err
		}
	}
	if snapshot.Predictions != nil {
		if err := s.PredictionRepo.Replace(ctx, snapshot.Predictions); err != nil {
			return err
		}
	}
	if snapshot.Lessons != nil {
		if err := s.LessonRepo.Replace(ctx, snapshot.Lessons); err != nil {
			return err
		}
	}
	if snapshot.Posts != nil {
		if err := s.PostRepo.Replace(ctx, snapshot.Posts); err != nil {
			return err
		}
	}
	if snapshot.Settings != nil {
		if err := s.SettingsRepo.Store(ctx, *snapshot.Settings); err != nil {
			return err
		}
	}
	return nil
}

// BackupNow exports the current state and pushes it to the configured
// backup provider. Returns the provider location of the snapshot.
func (s *SnapshotService) BackupNow(ctx context.Context) (string, error) {
	data, err := s.Export(ctx)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tradelens-snapshot-%s.json", time.Now().Format("20060102-150405"))
	return s.Backup.Upload(ctx, filename, data)
}
