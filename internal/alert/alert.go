// Package alert requests out-of-band notifications about the latest threat.
package alert

import (
	"context"

	"github.com/rusenback/idswatch/internal/model"
)

// Kind is the presentation class of an alert outcome
type Kind int

const (
	Success Kind = iota
	Info
	Failure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Info:
		return "info"
	default:
		return "failure"
	}
}

// SuccessMessage is shown when the backend confirms delivery
const SuccessMessage = "Alert sent successfully!\n\nA message has been sent with details of the most recent detected threat."

// Notice is what the user sees after dispatching an alert
type Notice struct {
	Kind    Kind
	Message string
}

// Sender is the part of the backend the dispatcher needs
type Sender interface {
	SendTestAlert(ctx context.Context) (*model.ActionResult, error)
}

// Send asks the backend to dispatch an alert and classifies the outcome.
// It has no effect on the capture session.
func Send(ctx context.Context, sender Sender) Notice {
	res, err := sender.SendTestAlert(ctx)
	return Classify(res, err)
}

// Classify maps a backend answer to a notice. A transport error is presented the
// same way as a declared failure.
func Classify(res *model.ActionResult, err error) Notice {
	if err != nil {
		return failure(err.Error())
	}
	if res == nil {
		return failure("")
	}

	switch res.Status {
	case model.StatusSuccess:
		return Notice{Kind: Success, Message: SuccessMessage}
	case model.StatusInfo:
		return Notice{Kind: Info, Message: res.Message}
	default:
		return failure(res.Message)
	}
}

func failure(msg string) Notice {
	if msg == "" {
		msg = "Unknown error"
	}
	return Notice{Kind: Failure, Message: "Failed to send alert: " + msg}
}
