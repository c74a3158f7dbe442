// internal/render/gauges.go
package render

import (
	"fmt"

	"github.com/rusenback/idswatch/internal/model"
)

// Gauge is one resource bar. Width is the raw percentage; the drawing code
// clamps it to 0-100.
type Gauge struct {
	Known  bool
	Width  float64
	Label  string
	Detail string
}

// Gauges holds the CPU and memory bars
type Gauges struct {
	CPU    Gauge
	Memory Gauge
}

// ApplySystem updates the gauges from a system snapshot. A field missing from the
// snapshot leaves its gauge exactly as it was.
func ApplySystem(prev Gauges, snap *model.SystemSnapshot) Gauges {
	next := prev
	if snap == nil {
		return next
	}

	if snap.CPU != nil {
		next.CPU = percentGauge(*snap.CPU)
	}

	if mem := snap.Memory; mem != nil && mem.Percent != nil {
		next.Memory = percentGauge(*mem.Percent)
		if mem.Used != nil && mem.Total != nil {
			next.Memory.Detail = fmt.Sprintf("%.1f / %.1f GB", *mem.Used, *mem.Total)
		}
	}

	return next
}

func percentGauge(v float64) Gauge {
	return Gauge{
		Known: true,
		Width: v,
		Label: fmt.Sprintf("%.1f%%", v),
	}
}

// BarWidth clamps the gauge width to 0-100
func (g Gauge) BarWidth() float64 {
	switch {
	case g.Width < 0:
		return 0
	case g.Width > 100:
		return 100
	default:
		return g.Width
	}
}
