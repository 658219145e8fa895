package repository

import (
	"context"
	"testing"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/util"
	"tradelens_backend/pkg/kvstore"
)

func TestUserGetReturnsNilWhenAbsent(t *testing.T) {
	repo := NewUserRepository(newTestGateway(t))

	user, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestUserStoreGetRoundTrip(t *testing.T) {
	repo := NewUserRepository(newTestGateway(t))
	ctx := context.Background()

	if err := repo.Store(ctx, &model.User{
		ID:                "user001",
		DisplayName:       "Alex",
		Email:             "alex@example.com",
		TraderHealthScore: 50,
		Level:             1,
	}); err != nil {
		t.Fatalf("Store: %v", err)
	}

	user, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if user == nil || user.ID != "user001" || user.TraderHealthScore != 50 {
		t.Errorf("round trip mismatch: %+v", user)
	}
}

func TestUserUpdateMissingUser(t *testing.T) {
	repo := NewUserRepository(newTestGateway(t))

	user, err := repo.Update(context.Background(), func(u *model.User) {
		u.Level = 2
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil when no user stored, got %+v", user)
	}
}

func TestUserClearIsIdempotent(t *testing.T) {
	repo := NewUserRepository(newTestGateway(t))
	ctx := context.Background()

	if err := repo.Store(ctx, &model.User{ID: "user001"}); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Errorf("second Clear: %v", err)
	}

	user, _ := repo.Get(ctx)
	if user != nil {
		t.Errorf("user survived Clear: %+v", user)
	}
}

func TestUnparseableCollectionReadsAsEmpty(t *testing.T) {
	store, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()
	if err := store.Set(ctx, util.KeyUser, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	repo := NewUserRepository(NewGateway(store))
	user, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if user != nil {
		t.Errorf("expected corrupt blob to read as empty, got %+v", user)
	}
}
