package usecase

import (
	"context"

	"nudge/internal/domain/entity"
)

// ProfileUsecase defines the user profile operations consumed by the HTTP boundary
type ProfileUsecase interface {
	// UpsertUserProfile replaces the profile with the same user ID, or appends a new one
	UpsertUserProfile(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error)

	// ListUserProfiles returns all profiles in first-insertion order
	ListUserProfiles(ctx context.Context) ([]*entity.UserProfile, error)
}
