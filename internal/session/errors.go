package session

import "fmt"

// RejectedError means the backend answered but declared the command unsuccessful
type RejectedError struct {
	Op      string // "start", "stop" or "clear"
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s rejected by backend", e.Op)
	}
	return fmt.Sprintf("%s rejected by backend: %s", e.Op, e.Message)
}
