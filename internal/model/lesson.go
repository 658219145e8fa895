package model

import "time"

// LessonProgress records completion state for one (user, lesson) pair.
// The storage gateway upserts on that pair, so at most one record exists
// per user and lesson.
type LessonProgress struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	LessonID    string     `json:"lessonId"`
	LessonName  string     `json:"lessonName,omitempty"`
	Completed   bool       `json:"completed"`
	Score       int        `json:"score"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
