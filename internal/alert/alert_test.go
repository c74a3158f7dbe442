package alert

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rusenback/idswatch/internal/model"
)

type fakeSender struct {
	res   *model.ActionResult
	err   error
	calls int
}

func (f *fakeSender) SendTestAlert(ctx context.Context) (*model.ActionResult, error) {
	f.calls++
	return f.res, f.err
}

func TestSendSuccess(t *testing.T) {
	sender := &fakeSender{res: &model.ActionResult{Status: "success"}}

	notice := Send(context.Background(), sender)
	if notice.Kind != Success || notice.Message != SuccessMessage {
		t.Errorf("Unexpected notice %+v", notice)
	}
	if sender.calls != 1 {
		t.Errorf("Expected one backend call, got %d", sender.calls)
	}
}

func TestSendInfoIsNotAnError(t *testing.T) {
	sender := &fakeSender{res: &model.ActionResult{Status: "info", Message: "No attacks yet"}}

	notice := Send(context.Background(), sender)
	if notice.Kind != Info {
		t.Errorf("Expected info notice, got %s", notice.Kind)
	}
	if notice.Message != "No attacks yet" {
		t.Errorf("Expected backend message verbatim, got %q", notice.Message)
	}
}

func TestClassifyFailures(t *testing.T) {
	tests := []struct {
		name string
		res  *model.ActionResult
		err  error
		want string
	}{
		{"declared with message", &model.ActionResult{Status: "error", Message: "bot token missing"}, nil, "Failed to send alert: bot token missing"},
		{"declared without message", &model.ActionResult{Status: "cooldown"}, nil, "Failed to send alert: Unknown error"},
		{"transport", nil, errors.New("connection refused"), "Failed to send alert: connection refused"},
		{"nil result", nil, nil, "Failed to send alert: Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notice := Classify(tt.res, tt.err)
			if notice.Kind != Failure {
				t.Errorf("Expected failure, got %s", notice.Kind)
			}
			if notice.Message != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, notice.Message)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	for kind, want := range map[Kind]string{Success: "success", Info: "info", Failure: "failure"} {
		if !strings.EqualFold(kind.String(), want) {
			t.Errorf("Kind %d: expected %s, got %s", kind, want, kind)
		}
	}
}
