// internal/model/action.go
package model

// Status values the backend declares on command responses
const (
	StatusSuccess = "success"
	StatusInfo    = "info"
)

// ActionResult is the response of every command endpoint
type ActionResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the backend declared success
func (r *ActionResult) OK() bool {
	return r != nil && r.Status == StatusSuccess
}

// StartRequest is the body of the start capture command.
// An empty Interface means all interfaces.
type StartRequest struct {
	Interface string `json:"interface"`
}
