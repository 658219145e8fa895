package repository

import (
	"context"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/util"
)

// UserRepository owns the single current-user record.
type UserRepository struct {
	gw *Gateway
}

func NewUserRepository(gw *Gateway) *UserRepository {
	return &UserRepository{gw: gw}
}

// Store overwrites the current-user record.
func (r *UserRepository) Store(ctx context.Context, user *model.User) error {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()
	return r.gw.save(ctx, util.KeyUser, user)
}

// Get returns the current user, or nil when nobody has signed up.
func (r *UserRepository) Get(ctx context.Context) (*model.User, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var user model.User
	found, err := r.gw.load(ctx, util.KeyUser, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// Update applies a mutation to the stored user and persists the result.
// Returns nil without error when no user exists.
func (r *UserRepository) Update(ctx context.Context, apply func(*model.User)) (*model.User, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var user model.User
	found, err := r.gw.load(ctx, util.KeyUser, &user)
	if err != nil || !found {
		return nil, err
	}

	apply(&user)
	if err := r.gw.save(ctx, util.KeyUser, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Clear removes the user record. Idempotent.
func (r *UserRepository) Clear(ctx context.Context) error {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()
	return r.gw.delete(ctx, util.KeyUser)
}
