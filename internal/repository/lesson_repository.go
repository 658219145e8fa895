package repository

import (
	"context"
	"time"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/util"

	"github.com/google/uuid"
)

// LessonRepository owns lesson progress rows with upsert semantics keyed
// on (userID, lessonID): at most one row per pair, ever.
type LessonRepository struct {
	gw *Gateway
}

func NewLessonRepository(gw *Gateway) *LessonRepository {
	return &LessonRepository{gw: gw}
}

// Upsert overwrites the row matching (UserID, LessonID) in place, keeping
// its id, or appends a new row with a fresh id. UpdatedAt is always
// restamped.
func (r *LessonRepository) Upsert(ctx context.Context, progress model.LessonProgress) (*model.LessonProgress, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var lessons []model.LessonProgress
	if _, err := r.gw.load(ctx, util.KeyLessons, &lessons); err != nil {
		return nil, err
	}

	progress.UpdatedAt = time.Now()

	idx := -1
	for i := range lessons {
		if lessons[i].UserID == progress.UserID && lessons[i].LessonID == progress.LessonID {
			idx = i
			break
		}
	}

	if idx >= 0 {
		progress.ID = lessons[idx].ID
		lessons[idx] = progress
	} else {
		progress.ID = uuid.New().String()
		lessons = append(lessons, progress)
	}

	if err := r.gw.save(ctx, util.KeyLessons, lessons); err != nil {
		return nil, err
	}
	return &progress, nil
}

// All returns every progress row.
func (r *LessonRepository) All(ctx context.Context) ([]model.LessonProgress, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var lessons []model.LessonProgress
	if _, err := r.gw.load(ctx, util.KeyLessons, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

// ListByUser returns all progress rows for one user.
func (r *LessonRepository) ListByUser(ctx context.Context, userID string) ([]model.LessonProgress, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	var out []model.LessonProgress
	for _, l := range all {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// Replace swaps the entire collection. Used by snapshot import.
func (r *LessonRepository) Replace(ctx context.Context, lessons []model.LessonProgress) error {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()
	return r.gw.save(ctx, util.KeyLessons, lessons)
}
