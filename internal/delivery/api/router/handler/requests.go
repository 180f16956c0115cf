package handler

import (
	"nudge/internal/domain/entity"
)

// LocationRequest is a coordinate in degrees with an optional capture time in unix seconds.
type LocationRequest struct {
	Lat       *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng       *float64 `json:"lng" validate:"required,min=-180,max=180"`
	Timestamp *int64   `json:"timestamp"`
}

func (r *LocationRequest) toEntity() *entity.Location {
	if r == nil {
		return nil
	}

	return &entity.Location{
		Lat:       *r.Lat,
		Lng:       *r.Lng,
		Timestamp: r.Timestamp,
	}
}

// UpdateLocationRequest is the body of POST /update-location.
type UpdateLocationRequest struct {
	UserID            string           `json:"userId" validate:"required"`
	Interests         []string         `json:"interests" validate:"required"`
	LastLocation      *LocationRequest `json:"lastLocation" validate:"omitempty"`
	NotificationToken *string          `json:"notificationToken"`
}

func (r *UpdateLocationRequest) toEntity() *entity.UserProfile {
	return &entity.UserProfile{
		UserID:            r.UserID,
		Interests:         r.Interests,
		LastLocation:      r.LastLocation.toEntity(),
		NotificationToken: r.NotificationToken,
	}
}

// ActiveTimeRequest is a daily window of zero-padded "HH:MM" bounds.
type ActiveTimeRequest struct {
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

// CreateNudgeRequest is the body of POST /create-nudge.
type CreateNudgeRequest struct {
	NudgeID      string             `json:"nudgeId" validate:"required"`
	Title        string             `json:"title" validate:"required"`
	Message      string             `json:"message" validate:"required"`
	Location     *LocationRequest   `json:"location" validate:"required"`
	RadiusM      *float64           `json:"radius_m" validate:"required,min=0"`
	InterestTags []string           `json:"interestTags" validate:"required"`
	ActiveTime   *ActiveTimeRequest `json:"activeTime" validate:"required"`
}

func (r *CreateNudgeRequest) toEntity() *entity.NudgeRule {
	return &entity.NudgeRule{
		NudgeID:      r.NudgeID,
		Title:        r.Title,
		Message:      r.Message,
		Location:     *r.Location.toEntity(),
		RadiusM:      *r.RadiusM,
		InterestTags: r.InterestTags,
		ActiveTime: entity.ActiveTime{
			Start: r.ActiveTime.Start,
			End:   r.ActiveTime.End,
		},
	}
}
