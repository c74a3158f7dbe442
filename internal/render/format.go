package render

import (
	"fmt"
	"strings"
	"time"
)

// Unknown is shown for any missing address or protocol
const Unknown = "unknown"

// ClockLayout formats packet times
const ClockLayout = "15:04:05"

// ZeroUptime is the uptime display before any session and after a clear
const ZeroUptime = "00:00:00"

// Confidence formats a [0,1] confidence as a percentage with one decimal.
// Missing or zero confidence renders as "0%".
func Confidence(c *float64) string {
	if c == nil || *c == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", *c*100)
}

// Uptime formats a duration as zero-padded HH:MM:SS
func Uptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

func protocol(s string) string {
	return strings.ToUpper(orUnknown(s))
}
