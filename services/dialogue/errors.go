package dialogue

import "errors"

var (
	// ErrRepeatPrompt signals that the answer for a closed-choice field was not
	// understood and the same prompt must be asked again without advancing.
	ErrRepeatPrompt = errors.New("dialogue: answer not understood, repeat prompt")

	// ErrSessionNotFound is returned by session stores for unknown or expired
	// session ids.
	ErrSessionNotFound = errors.New("dialogue: session not found")
)
