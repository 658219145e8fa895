package service

import (
	"context"
	"time"

	"tradelens_backend/internal/config"
	"tradelens_backend/internal/model"
	"tradelens_backend/internal/repository"
	"tradelens_backend/internal/util"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, Cfg: cfg}
}

type RegisterRequest struct {
	DisplayName  string `json:"displayName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	LearningGoal string `json:"learningGoal"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates the current-user record with signup defaults: a fresh
// health score of 50, level 1 and empty badge, prediction and lesson
// lists. The store holds a single user, so signing up again replaces the
// previous profile.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:                uuid.New().String(),
		DisplayName:       req.DisplayName,
		Email:             req.Email,
		Password:          string(hashed),
		LearningGoal:      req.LearningGoal,
		JoinedAt:          time.Now(),
		TraderHealthScore: 50,
		Level:             1,
		Badges:            []model.Badge{},
		Predictions:       []string{},
		CompletedLessons:  []string{},
	}

	if err := s.UserRepo.Store(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials against the stored user and returns a JWT.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, *model.User, error) {
	user, err := s.UserRepo.Get(ctx)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, util.ErrUserNotFound
	}

	if user.Email != req.Email {
		return "", nil, util.ErrEmailMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, util.ErrEmailMismatch
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout clears the current-user record, mirroring the original app's
// sign-out behavior. Idempotent.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.UserRepo.Clear(ctx)
}
