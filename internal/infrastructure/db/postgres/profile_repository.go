package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// ProfileRepository persists the public profile attached to each user.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

// Update applies only the fields present in the update; identity and
// creation timestamps are never touched.
func (r *ProfileRepository) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	values := map[string]interface{}{"updated_at": time.Now().UTC()}
	if update.Username != nil {
		values["username"] = *update.Username
	}
	if update.DisplayName != nil {
		values["display_name"] = *update.DisplayName
	}
	if update.AvatarURL != nil {
		values["avatar_url"] = *update.AvatarURL
	}
	if update.Website != nil {
		values["website"] = *update.Website
	}
	if update.GithubURL != nil {
		values["github_url"] = *update.GithubURL
	}
	if update.Bio != nil {
		values["bio"] = *update.Bio
	}

	result := r.db.WithContext(ctx).Model(&domain.Profile{}).Where("user_id = ?", userID).Updates(values)
	if result.Error != nil {
		return nil, fmt.Errorf("update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrProfileNotFound
	}

	return r.FindByUserID(ctx, userID)
}
