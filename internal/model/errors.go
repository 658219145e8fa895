package model

import "errors"

// ErrValidation marks a caller-supplied value that failed a construction
// check. Controllers map it to a 400 response.
var ErrValidation = errors.New("validation failed")
