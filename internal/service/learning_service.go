package service

import (
	"context"
	"time"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/repository"
)

// Health score bump for finishing a lesson.
const healthLessonComplete = 2

type LearningService struct {
	LessonRepo *repository.LessonRepository
	UserRepo   *repository.UserRepository
}

func NewLearningService(lessonRepo *repository.LessonRepository, userRepo *repository.UserRepository) *LearningService {
	return &LearningService{LessonRepo: lessonRepo, UserRepo: userRepo}
}

type LessonProgressRequest struct {
	LessonID   string `json:"lessonId" binding:"required"`
	LessonName string `json:"lessonName"`
	Completed  bool   `json:"completed"`
	Score      int    `json:"score"`
}

// RecordProgress upserts the (user, lesson) progress row. Completing a
// lesson for the first time also records it on the profile, bumps the
// health score and re-derives the level (one level per five completed
// lessons).
func (s *LearningService) RecordProgress(ctx context.Context, userID string, req LessonProgressRequest) (*model.LessonProgress, error) {
	progress := model.LessonProgress{
		UserID:     userID,
		LessonID:   req.LessonID,
		LessonName: req.LessonName,
		Completed:  req.Completed,
		Score:      req.Score,
	}
	if req.Completed {
		now := time.Now()
		progress.CompletedAt = &now
	}

	stored, err := s.LessonRepo.Upsert(ctx, progress)
	if err != nil {
		return nil, err
	}

	if req.Completed {
		if _, err := s.UserRepo.Update(ctx, func(u *model.User) {
			if u.HasCompletedLesson(req.LessonID) {
				return
			}
			u.CompletedLessons = append(u.CompletedLessons, req.LessonID)
			u.AdjustHealthScore(healthLessonComplete)
			u.Level = 1 + len(u.CompletedLessons)/lessonsPerLevel
		}); err != nil {
			return nil, err
		}
	}

	return stored, nil
}

// Progress returns all lesson progress rows for the user.
func (s *LearningService) Progress(ctx context.Context, userID string) ([]model.LessonProgress, error) {
	return s.LessonRepo.ListByUser(ctx, userID)
}
