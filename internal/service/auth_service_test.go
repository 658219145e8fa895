package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tradelens_backend/internal/config"
	"tradelens_backend/internal/util"
)

func newTestAuthService(t *testing.T) (*AuthService, *testRepos) {
	t.Helper()
	repos := newTestRepos(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-just-for-unit-tests-0123456789",
			ExpireTime: time.Hour,
		},
	}
	return NewAuthService(repos.user, cfg), repos
}

func TestRegisterSignupDefaults(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), RegisterRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.TraderHealthScore != 50 {
		t.Errorf("health = %d, want 50", user.TraderHealthScore)
	}
	if user.Level != 1 {
		t.Errorf("level = %d, want 1", user.Level)
	}
	if user.Badges == nil || user.Predictions == nil || user.CompletedLessons == nil {
		t.Error("expected empty slices, not nil")
	}
	if user.Password == "hunter22" {
		t.Error("password stored in plaintext")
	}
}

func TestLoginHappyPath(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "hunter22",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(ctx, LoginRequest{Email: "alex@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token user id %s, want %s", claims.UserID, user.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	if _, err := svc.Register(ctx, RegisterRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "hunter22",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name string
		req  LoginRequest
	}{
		{"wrong email", LoginRequest{Email: "other@example.com", Password: "hunter22"}},
		{"wrong password", LoginRequest{Email: "alex@example.com", Password: "nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := svc.Login(ctx, tt.req); !errors.Is(err, util.ErrEmailMismatch) {
				t.Errorf("expected ErrEmailMismatch, got %v", err)
			}
		})
	}
}

func TestLogoutClearsProfile(t *testing.T) {
	svc, repos := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		DisplayName: "Alex",
		Email:       "alex@example.com",
		Password:    "hunter22",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	user, _ := repos.user.Get(ctx)
	if user != nil {
		t.Errorf("user survived logout: %+v", user)
	}
}
