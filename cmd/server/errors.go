package main

import "fmt"

const (
	CodeUnknownAvatar   = "unknown_avatar"
	CodeDuplicateAvatar = "duplicate_avatar"
	CodeNoDragHandler   = "no_drag_handler"
	CodeUnknownIntent   = "unknown_intent"
	CodeBadPayload      = "bad_payload"

	CodeRegenerateDisabled = "regenerate_disabled"
)

// EngineError represents a request the engine could not act on. A rejected
// drag is not an EngineError.
type EngineError struct {
	Code    string
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
