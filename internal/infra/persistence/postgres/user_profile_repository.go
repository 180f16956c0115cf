// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nudge/internal/domain/entity"
	domainerrors "nudge/internal/domain/errors"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"
	"nudge/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userProfileRepository implements the repository.UserProfileRepository interface.
type userProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository is the constructor for userProfileRepository.
func NewUserProfileRepository(db *gorm.DB) repository.UserProfileRepository {
	return &userProfileRepository{
		db: db,
	}
}

// UpsertProfile inserts the profile or overwrites every mutable column of the existing row.
// The row keeps its original sequence number.
func (repo *userProfileRepository) UpsertProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromUserProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"interests", "lat", "lng", "location_timestamp", "notification_token", "updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert user profile")
	}

	return nil
}

// ListProfiles returns all profiles in first-insertion order.
func (repo *userProfileRepository) ListProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	var profileModels []*model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Order("seq ASC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toUserProfileDomain(profileM))
	}

	return profiles, nil
}

// FindProfileByID retrieves a profile by user ID.
func (repo *userProfileRepository) FindProfileByID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find user profile by ID")
	}

	return toUserProfileDomain(&profileM), nil
}

func fromUserProfileDomain(profile *entity.UserProfile) *model.UserProfileModel {
	profileM := &model.UserProfileModel{
		UserID:            profile.UserID,
		Interests:         profile.Interests,
		NotificationToken: profile.NotificationToken,
	}
	if profileM.Interests == nil {
		profileM.Interests = []string{}
	}
	if profile.LastLocation != nil {
		lat, lng := profile.LastLocation.Lat, profile.LastLocation.Lng
		profileM.Lat = &lat
		profileM.Lng = &lng
		profileM.LocationTimestamp = profile.LastLocation.Timestamp
	}

	return profileM
}

func toUserProfileDomain(profileM *model.UserProfileModel) *entity.UserProfile {
	profile := &entity.UserProfile{
		UserID:            profileM.UserID,
		Interests:         profileM.Interests,
		NotificationToken: profileM.NotificationToken,
	}
	if profile.Interests == nil {
		profile.Interests = []string{}
	}
	if profileM.Lat != nil && profileM.Lng != nil {
		profile.LastLocation = &entity.Location{
			Lat:       *profileM.Lat,
			Lng:       *profileM.Lng,
			Timestamp: profileM.LocationTimestamp,
		}
	}

	return profile
}
