package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// SummaryCache caches derived progress summaries per user. Get returns
// (nil, false, nil) on a miss; cache failures are reported but callers are
// expected to degrade to recomputing rather than fail the request.
type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.ProgressSummary, bool, error)
	Set(ctx context.Context, userID uuid.UUID, summary *domain.ProgressSummary) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
