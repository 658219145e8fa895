package util

import "errors"

var (
	ErrUserNotFound       = errors.New("no user is signed up")
	ErrEmailMismatch      = errors.New("invalid credentials")
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidSnapshot    = errors.New("snapshot is not valid JSON")
	ErrResultAlreadySet   = errors.New("prediction result already settled")
)
