package entity

// NudgeRule is a geofenced notification rule with an interest filter and a daily active window.
// Rules are immutable once created. NudgeID is not enforced unique.
type NudgeRule struct {
	NudgeID      string     `json:"nudgeId"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Location     Location   `json:"location"`
	RadiusM      float64    `json:"radius_m"`
	InterestTags []string   `json:"interestTags"`
	ActiveTime   ActiveTime `json:"activeTime"`
}
