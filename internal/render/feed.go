// internal/render/feed.go
package render

import (
	"time"

	"github.com/rusenback/idswatch/internal/model"
)

// FeedLimit is the maximum number of packets shown in the live feed
const FeedLimit = 10

// Placeholder identifies an empty-state message
type Placeholder int

const (
	NoPlaceholder Placeholder = iota
	WaitingForTraffic
	NoThreats
)

// Text returns the message shown for the placeholder
func (p Placeholder) Text() string {
	switch p {
	case WaitingForTraffic:
		return "Waiting for network traffic..."
	case NoThreats:
		return "No threats detected"
	default:
		return ""
	}
}

// PacketEntry is one rendered row of the packet feed
type PacketEntry struct {
	Clock       string
	Label       string
	Source      string
	Destination string
	Protocol    string
	Confidence  string
	Attack      bool
}

// Feed is the rendered packet feed: either a placeholder or entries, newest first
type Feed struct {
	Placeholder Placeholder
	Entries     []PacketEntry
}

// EmptyFeed is the feed shown before any data and after a clear
func EmptyFeed() Feed {
	return Feed{Placeholder: WaitingForTraffic}
}

// ShowsPlaceholder reports whether the feed currently shows an empty-state message
func (f Feed) ShowsPlaceholder() bool {
	return f.Placeholder != NoPlaceholder
}

// PacketFeed projects the backend's recent packet window onto the feed.
//
// The last FeedLimit packets are shown newest first. An empty window renders the
// waiting placeholder only when idle; while capturing prev is returned as is and
// changed is false, whether it shows the placeholder or entries.
func PacketFeed(packets []model.PacketRecord, prev Feed, capturing bool, loc *time.Location) (Feed, bool) {
	if len(packets) == 0 {
		if capturing {
			return prev, false
		}
		return EmptyFeed(), true
	}

	if loc == nil {
		loc = time.Local
	}

	start := 0
	if len(packets) > FeedLimit {
		start = len(packets) - FeedLimit
	}
	window := packets[start:]

	entries := make([]PacketEntry, 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		p := window[i]
		entries = append(entries, PacketEntry{
			Clock:       p.Time().In(loc).Format(ClockLayout),
			Label:       p.Prediction,
			Source:      orUnknown(p.Source()),
			Destination: orUnknown(p.Destination()),
			Protocol:    protocol(p.Protocol()),
			Confidence:  Confidence(p.Confidence),
			Attack:      p.IsAttack,
		})
	}

	return Feed{Entries: entries}, true
}
