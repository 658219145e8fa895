package model

import (
	"time"
)

const (
	MinHealthScore = 0
	MaxHealthScore = 100
)

// Badge is a gamification award pinned to a user profile.
type Badge struct {
	Name     string    `json:"name"`
	Icon     string    `json:"icon,omitempty"`
	EarnedAt time.Time `json:"earnedAt"`
}

// User is the single current-user record held by the storage gateway.
// Password holds the bcrypt hash, never the plaintext.
type User struct {
	ID                string    `json:"id"`
	DisplayName       string    `json:"displayName"`
	Email             string    `json:"email"`
	Password          string    `json:"password,omitempty"`
	LearningGoal      string    `json:"learningGoal,omitempty"`
	JoinedAt          time.Time `json:"joinedAt"`
	TraderHealthScore int       `json:"traderHealthScore"`
	Level             int       `json:"level"`
	Badges            []Badge   `json:"badges"`
	Predictions       []string  `json:"predictions"`
	CompletedLessons  []string  `json:"completedLessons"`
}

// AdjustHealthScore shifts the trader health score by delta, clamped to [0,100].
func (u *User) AdjustHealthScore(delta int) {
	u.TraderHealthScore += delta
	if u.TraderHealthScore < MinHealthScore {
		u.TraderHealthScore = MinHealthScore
	}
	if u.TraderHealthScore > MaxHealthScore {
		u.TraderHealthScore = MaxHealthScore
	}
}

// HasBadge reports whether a badge with the given name is already earned.
func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// HasCompletedLesson reports whether the lesson id is recorded on the profile.
func (u *User) HasCompletedLesson(lessonID string) bool {
	for _, id := range u.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
