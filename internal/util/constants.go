package util

// Collection keys of the five logical documents the storage gateway owns.
const (
	KeyUser        = "tradelens_user"
	KeyPredictions = "tradelens_predictions"
	KeyLessons     = "tradelens_lessons"
	KeyPosts       = "tradelens_posts"
	KeySettings    = "tradelens_settings"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)
