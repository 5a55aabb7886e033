package assistant

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists for a conversation id.
	ErrSessionNotFound = errors.New("assistant: session not found")
	// ErrEmptyMessage is returned when a chat turn carries no text.
	ErrEmptyMessage = errors.New("assistant: message is empty")
)
