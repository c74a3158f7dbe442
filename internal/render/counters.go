package render

import (
	"strconv"

	"github.com/rusenback/idswatch/internal/model"
)

// Counters are the three aggregate counters as displayed
type Counters struct {
	Total   string
	Normal  string
	Attacks string
}

// ZeroCounters is what a clear resets the counters to
func ZeroCounters() Counters {
	return Counters{Total: "0", Normal: "0", Attacks: "0"}
}

// CountersFrom writes the backend counts verbatim; missing stats are zeros
func CountersFrom(stats *model.AggregateStats) Counters {
	if stats == nil {
		return ZeroCounters()
	}
	return Counters{
		Total:   strconv.FormatInt(stats.TotalPackets, 10),
		Normal:  strconv.FormatInt(stats.NormalPackets, 10),
		Attacks: strconv.FormatInt(stats.AttacksDetected, 10),
	}
}
