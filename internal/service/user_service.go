package service

import (
	"context"
	"time"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/repository"
)

// Lessons completed per level step.
const lessonsPerLevel = 5

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type ProfileUpdateRequest struct {
	DisplayName  *string `json:"displayName"`
	LearningGoal *string `json:"learningGoal"`
}

func (s *UserService) Profile(ctx context.Context) (*model.User, error) {
	return s.UserRepo.Get(ctx)
}

// UpdateProfile merges the provided fields into the stored user; fields
// left out of the request keep their values. Returns nil when no user
// exists.
func (s *UserService) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*model.User, error) {
	return s.UserRepo.Update(ctx, func(u *model.User) {
		if req.DisplayName != nil {
			u.DisplayName = *req.DisplayName
		}
		if req.LearningGoal != nil {
			u.LearningGoal = *req.LearningGoal
		}
	})
}

// AdjustHealthScore shifts the trader health score by delta, clamped to
// [0,100]. Returns nil when no user exists.
func (s *UserService) AdjustHealthScore(ctx context.Context, delta int) (*model.User, error) {
	return s.UserRepo.Update(ctx, func(u *model.User) {
		u.AdjustHealthScore(delta)
	})
}

// AwardBadge adds a badge once; re-awarding the same name is a no-op.
func (s *UserService) AwardBadge(ctx context.Context, name, icon string) (*model.User, error) {
	return s.UserRepo.Update(ctx, func(u *model.User) {
		if u.HasBadge(name) {
			return
		}
		u.Badges = append(u.Badges, model.Badge{
			Name:     name,
			Icon:     icon,
			EarnedAt: time.Now(),
		})
	})
}
