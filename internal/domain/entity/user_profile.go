package entity

// UserProfile represents a mobile user tracked by the matching engine.
// Identity is UserID; LastLocation is replaced on every update.
type UserProfile struct {
	UserID            string    `json:"userId"`
	Interests         []string  `json:"interests"`
	LastLocation      *Location `json:"lastLocation"`
	NotificationToken *string   `json:"notificationToken"`
}

// HasLocation reports whether the user has reported a position yet.
func (p *UserProfile) HasLocation() bool {
	return p != nil && p.LastLocation != nil
}

// SharesInterest reports whether any of the user's interests appears in tags.
// Matching is exact; no case folding is applied.
func (p *UserProfile) SharesInterest(tags []string) bool {
	if len(p.Interests) == 0 || len(tags) == 0 {
		return false
	}

	tagSet := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tagSet[tag] = struct{}{}
	}

	for _, interest := range p.Interests {
		if _, ok := tagSet[interest]; ok {
			return true
		}
	}

	return false
}

// Token returns the notification token or an empty string.
func (p *UserProfile) Token() string {
	if p.NotificationToken == nil {
		return ""
	}

	return *p.NotificationToken
}
