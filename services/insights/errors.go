package insights

import "errors"

// ErrEmptyQuestion is returned when a chat request carries no question
var ErrEmptyQuestion = errors.New("question is required")
