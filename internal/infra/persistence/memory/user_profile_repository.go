// Package memory contains process-local implementations of the persistence layer.
package memory

import (
	"context"
	"slices"
	"sync"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/repository"
)

// userProfileRepository keeps profiles in insertion order with an index by user ID.
type userProfileRepository struct {
	mu       sync.RWMutex
	profiles []*entity.UserProfile
	index    map[string]int
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository() repository.UserProfileRepository {
	return &userProfileRepository{
		index: make(map[string]int),
	}
}

// UpsertProfile replaces the profile in place or appends it.
func (repo *userProfileRepository) UpsertProfile(_ context.Context, profile *entity.UserProfile) error {
	stored := cloneProfile(profile)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if idx, ok := repo.index[profile.UserID]; ok {
		repo.profiles[idx] = stored

		return nil
	}

	repo.index[profile.UserID] = len(repo.profiles)
	repo.profiles = append(repo.profiles, stored)

	return nil
}

// ListProfiles returns copies of all profiles in first-insertion order.
func (repo *userProfileRepository) ListProfiles(_ context.Context) ([]*entity.UserProfile, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	profiles := make([]*entity.UserProfile, 0, len(repo.profiles))
	for _, profile := range repo.profiles {
		profiles = append(profiles, cloneProfile(profile))
	}

	return profiles, nil
}

// FindProfileByID retrieves a copy of a single profile.
func (repo *userProfileRepository) FindProfileByID(_ context.Context, userID string) (*entity.UserProfile, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	idx, ok := repo.index[userID]
	if !ok {
		return nil, repository.ErrUserProfileNotFound
	}

	return cloneProfile(repo.profiles[idx]), nil
}

func cloneProfile(profile *entity.UserProfile) *entity.UserProfile {
	cloned := *profile
	cloned.Interests = slices.Clone(profile.Interests)
	if profile.LastLocation != nil {
		loc := *profile.LastLocation
		cloned.LastLocation = &loc
	}
	if profile.NotificationToken != nil {
		token := *profile.NotificationToken
		cloned.NotificationToken = &token
	}

	return &cloned
}
