// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"nudge/internal/domain/entity"
)

// ErrUserProfileNotFound is returned when no profile exists for a user ID.
var ErrUserProfileNotFound = errors.New("user profile not found")

// UserProfileRepository stores user profiles keyed by user ID.
type UserProfileRepository interface {
	// UpsertProfile replaces the profile with the same user ID in place, or appends it.
	UpsertProfile(ctx context.Context, profile *entity.UserProfile) error

	// ListProfiles returns all profiles in first-insertion order.
	ListProfiles(ctx context.Context) ([]*entity.UserProfile, error)

	// FindProfileByID retrieves a single profile.
	FindProfileByID(ctx context.Context, userID string) (*entity.UserProfile, error)
}
