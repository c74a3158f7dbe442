package render

import "github.com/rusenback/idswatch/internal/model"

// AttackEntry is one rendered row of the attack log
type AttackEntry struct {
	Time        string
	Source      string
	Destination string
	Protocol    string
	Confidence  string
}

// AttackLog is the rendered attack log, newest first
type AttackLog struct {
	Placeholder Placeholder
	Entries     []AttackEntry
}

// EmptyAttackLog is the log shown before any data and after a clear
func EmptyAttackLog() AttackLog {
	return AttackLog{Placeholder: NoThreats}
}

// Attacks renders every record in reverse arrival order. The timestamp is the
// backend's preformatted string and is never reparsed.
func Attacks(records []model.AttackRecord) AttackLog {
	if len(records) == 0 {
		return EmptyAttackLog()
	}

	entries := make([]AttackEntry, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		entries = append(entries, AttackEntry{
			Time:        r.Timestamp,
			Source:      orUnknown(r.Src),
			Destination: orUnknown(r.Dst),
			Protocol:    protocol(r.Proto),
			Confidence:  Confidence(r.Confidence),
		})
	}
	return AttackLog{Entries: entries}
}
