package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/errors"
	mockRepo "nudge/internal/mocks/repository"
	"nudge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockUserProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockUserProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return profileServiceFixtures{
		service:     NewProfileService(profileRepo, logger),
		profileRepo: profileRepo,
	}
}

func TestProfileService_UpsertUserProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	ts := int64(1710000000)
	profile := &entity.UserProfile{
		UserID:       "user-1",
		Interests:    []string{"coffee"},
		LastLocation: &entity.Location{Lat: 40.7128, Lng: -74.0060, Timestamp: &ts},
	}

	fx.profileRepo.EXPECT().UpsertProfile(ctx, profile).Return(nil)

	saved, err := fx.service.UpsertUserProfile(ctx, profile)

	require.NoError(t, err)
	assert.Equal(t, profile, saved)
}

func TestProfileService_UpsertUserProfile_DefaultsInterests(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	profile := &entity.UserProfile{UserID: "user-1"}

	fx.profileRepo.EXPECT().UpsertProfile(ctx, profile).Return(nil)

	saved, err := fx.service.UpsertUserProfile(ctx, profile)

	require.NoError(t, err)
	assert.NotNil(t, saved.Interests)
	assert.Empty(t, saved.Interests)
}

func TestProfileService_UpsertUserProfile_MissingUserID(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpsertUserProfile(context.Background(), &entity.UserProfile{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_UpsertUserProfile_LocationOutOfRange(t *testing.T) {
	tests := []struct {
		name     string
		location entity.Location
	}{
		{name: "latitude above 90", location: entity.Location{Lat: 90.0001, Lng: 0}},
		{name: "latitude below -90", location: entity.Location{Lat: -91, Lng: 0}},
		{name: "longitude above 180", location: entity.Location{Lat: 0, Lng: 180.5}},
		{name: "longitude below -180", location: entity.Location{Lat: 0, Lng: -200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			profile := &entity.UserProfile{UserID: "user-1", LastLocation: &tt.location}

			_, err := fx.service.UpsertUserProfile(context.Background(), profile)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			fx.profileRepo.AssertNotCalled(t, "UpsertProfile")
		})
	}
}

func TestProfileService_UpsertUserProfile_RepositoryError(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	profile := &entity.UserProfile{UserID: "user-1"}

	fx.profileRepo.EXPECT().UpsertProfile(ctx, profile).Return(errors.New("connection refused"))

	_, err := fx.service.UpsertUserProfile(ctx, profile)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestProfileService_ListUserProfiles(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	expected := []*entity.UserProfile{{UserID: "a"}, {UserID: "b"}}

	fx.profileRepo.EXPECT().ListProfiles(ctx).Return(expected, nil)

	profiles, err := fx.service.ListUserProfiles(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, profiles)
}
