// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"
	"nudge/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.UserProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.UserProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertUserProfile stores the latest known state of a user.
func (srv *profileService) UpsertUserProfile(ctx context.Context, profile *entity.UserProfile) (*entity.UserProfile, error) {
	if profile == nil || profile.UserID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "userId is required")
	}
	if profile.HasLocation() && !profile.LastLocation.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "lastLocation out of range")
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}

	srv.log(ctx).Debug("Upserting user profile",
		slog.String("user_id", profile.UserID),
		slog.Bool("has_location", profile.HasLocation()),
		slog.Int("interests", len(profile.Interests)),
	)

	if err := srv.profileRepo.UpsertProfile(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to upsert user profile", slog.String("user_id", profile.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(err, "upsert user profile"), "failed to upsert user profile")
	}

	return profile, nil
}

// ListUserProfiles returns all stored profiles.
func (srv *profileService) ListUserProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	profiles, err := srv.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(err, "list user profiles"), "failed to list user profiles")
	}

	return profiles, nil
}
