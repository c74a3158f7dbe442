package views

import (
	"strings"
	"testing"

	"github.com/rusenback/idswatch/internal/render"
)

func TestProgressBarFill(t *testing.T) {
	bar := ProgressBar(50, 12)
	if strings.Count(bar, "█") != 5 || strings.Count(bar, "░") != 5 {
		t.Errorf("Expected half filled bar, got %q", bar)
	}

	full := ProgressBar(250, 12)
	if strings.Count(full, "█") != 10 {
		t.Errorf("Expected clamped full bar, got %q", full)
	}
}

func TestRenderGaugeUnknown(t *testing.T) {
	out := RenderGauge("CPU", render.Gauge{}, 20)
	if !strings.Contains(out, "--") {
		t.Errorf("Expected unknown marker, got %q", out)
	}
	if strings.Contains(out, "█") {
		t.Errorf("Unknown gauge should be empty, got %q", out)
	}
}

func TestRenderGaugeDetail(t *testing.T) {
	g := render.Gauge{Known: true, Width: 40, Label: "40.0%", Detail: "3.2 / 8.0 GB"}
	out := RenderGauge("Memory", g, 20)
	if !strings.Contains(out, "40.0%") || !strings.Contains(out, "3.2 / 8.0 GB") {
		t.Errorf("Missing label or detail in %q", out)
	}
}
