package task

import "errors"

var ErrInvalidTitle = errors.New("title must be a non-empty string")
