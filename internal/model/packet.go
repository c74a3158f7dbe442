// internal/model/packet.go
package model

import "time"

// PacketInfo holds the header fields the backend extracted from a captured packet.
// Any of them may be missing.
type PacketInfo struct {
	Src   string `json:"src,omitempty"`
	Dst   string `json:"dst,omitempty"`
	Proto string `json:"proto,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// PacketRecord is one classified packet from the backend's recent window
type PacketRecord struct {
	Timestamp  float64     `json:"timestamp"` // epoch seconds
	RawInfo    *PacketInfo `json:"raw_info,omitempty"`
	Prediction string      `json:"prediction"`
	Confidence *float64    `json:"confidence,omitempty"`
	IsAttack   bool        `json:"is_attack"`
}

// Time converts the epoch timestamp to a time.Time
func (p PacketRecord) Time() time.Time {
	sec := int64(p.Timestamp)
	nsec := int64((p.Timestamp - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}

// Source returns the source address, or "" when the backend did not send one
func (p PacketRecord) Source() string {
	if p.RawInfo == nil {
		return ""
	}
	return p.RawInfo.Src
}

// Destination returns the destination address, or ""
func (p PacketRecord) Destination() string {
	if p.RawInfo == nil {
		return ""
	}
	return p.RawInfo.Dst
}

// Protocol returns the protocol name as sent, or ""
func (p PacketRecord) Protocol() string {
	if p.RawInfo == nil {
		return ""
	}
	return p.RawInfo.Proto
}

// AttackRecord is a retained attack. Timestamp is already formatted by the backend.
type AttackRecord struct {
	Timestamp  string   `json:"timestamp"`
	Src        string   `json:"src,omitempty"`
	Dst        string   `json:"dst,omitempty"`
	Proto      string   `json:"proto,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// AttackLog is the payload of the full attack history endpoint
type AttackLog struct {
	Attacks []AttackRecord `json:"attacks"`
}
