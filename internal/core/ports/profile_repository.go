package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// ProfileRepository defines the interface for profile persistence.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error)
}
