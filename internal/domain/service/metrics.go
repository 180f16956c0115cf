package service

import "time"

// MatchingMetrics receives the outcome of every matching pass.
type MatchingMetrics interface {
	// ObservePass records one finished pass. outcome is "ok", "timeout" or "error".
	ObservePass(outcome string, duration time.Duration, evaluated, intents, failures int)
}

// Pass outcomes reported to MatchingMetrics.
const (
	PassOutcomeOK      = "ok"
	PassOutcomeTimeout = "timeout"
	PassOutcomeError   = "error"
)
