package entity

// DeliveryLogEntry records that a nudge was matched for a user. Entries are never mutated.
type DeliveryLogEntry struct {
	UserID    string `json:"userId"`
	NudgeID   string `json:"nudgeId"`
	Timestamp int64  `json:"timestamp"` // Unix seconds.
}

// DeliveryIntent is a decision to send a nudge; it does not imply the push was delivered.
type DeliveryIntent struct {
	UserID  string `json:"userId"`
	NudgeID string `json:"nudgeId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// PairFailure reports a (user, nudge) pair that could not be evaluated.
type PairFailure struct {
	UserID  string `json:"userId"`
	NudgeID string `json:"nudgeId"`
	Reason  string `json:"reason"`
}

// MatchResult is the outcome of one matching pass.
type MatchResult struct {
	Timestamp int64            // Shared by every history entry recorded in the pass.
	Intents   []DeliveryIntent // In user-major, rule-minor order.
	Failures  []PairFailure
	Evaluated int // Number of (user, rule) pairs that reached the filter chain.
}
