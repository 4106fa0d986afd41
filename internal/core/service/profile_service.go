package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devpath/tutorial-platform/internal/core/domain"
	"github.com/devpath/tutorial-platform/internal/core/ports"
)

// ProfileService reads and partially updates user profiles.
type ProfileService struct {
	repo   ports.ProfileRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Update applies a partial update. An update with no fields set is rejected
// rather than silently becoming a no-op write.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	if update.Username != nil && *update.Username == "" {
		return nil, domain.ErrValidation
	}
	if update == (domain.ProfileUpdate{}) {
		return nil, domain.ErrValidation
	}

	profile, err := s.repo.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID.String()).Msg("profile updated")
	return profile, nil
}
