package domain

import "time"

const (
	PoolStatusOK       = "OK"
	PoolStatusDegraded = "DEGRADED"
	PoolStatusUnknown  = "UNKNOWN"
)

// PoolStatus é o resultado da última verificação do pool de conexões com o warehouse
type PoolStatus struct {
	Status          string    `json:"status"`
	CheckedAt       time.Time `json:"checked_at"`
	LatencyMs       int64     `json:"latency_ms"`
	Error           string    `json:"error,omitempty"`
	OpenConnections int       `json:"open_connections"`
	InUse           int       `json:"in_use"`
	Idle            int       `json:"idle"`
	WaitCount       int64     `json:"wait_count"`
	WaitDurationMs  int64     `json:"wait_duration_ms"`
}
