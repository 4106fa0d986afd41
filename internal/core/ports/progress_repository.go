package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// ProgressRepository defines the interface for progress persistence.
//
// Upsert must be a single atomic insert-or-update keyed on the
// (user, tutorial) pair — never a check-then-act sequence. The record
// carries the full row to insert; updateFields lists the columns to merge
// when a row already exists, so absent fields keep their stored values.
type ProgressRepository interface {
	Get(ctx context.Context, userID uuid.UUID, tutorialID string) (*domain.ProgressRecord, error)
	Upsert(ctx context.Context, record *domain.ProgressRecord, updateFields []string) (*domain.ProgressRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
}
