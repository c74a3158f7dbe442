// internal/model/stats.go
package model

// AggregateStats holds the backend's monotonic counters
type AggregateStats struct {
	TotalPackets    int64   `json:"total_packets"`
	NormalPackets   int64   `json:"normal_packets"`
	AttacksDetected int64   `json:"attacks_detected"`
	StartTime       float64 `json:"start_time,omitempty"`
}

// PacketsSnapshot is one response of the packets endpoint
type PacketsSnapshot struct {
	Stats         *AggregateStats `json:"stats,omitempty"`
	Packets       []PacketRecord  `json:"packets"`
	RecentAttacks []AttackRecord  `json:"recent_attacks"`
	IsCapturing   *bool           `json:"is_capturing,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// MemorySnapshot is the nested memory object of the system stats endpoint.
// Used and Total are in GB.
type MemorySnapshot struct {
	Percent *float64 `json:"percent,omitempty"`
	Used    *float64 `json:"used,omitempty"`
	Total   *float64 `json:"total,omitempty"`
}

// SystemSnapshot contains the backend host's resource usage
type SystemSnapshot struct {
	CPU    *float64        `json:"cpu,omitempty"`
	Memory *MemorySnapshot `json:"memory,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// InterfaceList is the payload of the interfaces endpoint
type InterfaceList struct {
	Interfaces []string `json:"interfaces"`
}
