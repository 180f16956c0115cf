package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_SharesInterest(t *testing.T) {
	user := &UserProfile{UserID: "u1", Interests: []string{"coffee", "books"}}

	assert.True(t, user.SharesInterest([]string{"music", "books"}))
	assert.False(t, user.SharesInterest([]string{"music"}))
	assert.False(t, user.SharesInterest(nil), "empty rule tags never intersect")
	assert.False(t, user.SharesInterest([]string{"Coffee"}), "matching is case sensitive")

	noInterests := &UserProfile{UserID: "u2"}
	assert.False(t, noInterests.SharesInterest([]string{"coffee"}))
}

func TestUserProfile_HasLocationAndToken(t *testing.T) {
	token := "fcm-token"
	user := &UserProfile{UserID: "u1", LastLocation: &Location{Lat: 1, Lng: 2}, NotificationToken: &token}

	assert.True(t, user.HasLocation())
	assert.Equal(t, "fcm-token", user.Token())

	empty := &UserProfile{UserID: "u2"}
	assert.False(t, empty.HasLocation())
	assert.Equal(t, "", empty.Token())
}

func TestLocation_IsValidAndPoint(t *testing.T) {
	loc := Location{Lat: 25.033, Lng: 121.5654}

	assert.True(t, loc.IsValid())
	assert.Equal(t, 121.5654, loc.Point().Lon())
	assert.Equal(t, 25.033, loc.Point().Lat())

	assert.False(t, Location{Lat: 91}.IsValid())
	assert.False(t, Location{Lng: -180.5}.IsValid())
	assert.False(t, Location{Lat: math.NaN()}.IsValid())
}
