package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

type ProgressService interface {
	Get(ctx context.Context, userID uuid.UUID, tutorialID string) (*domain.ProgressRecord, error)
	Upsert(ctx context.Context, userID uuid.UUID, tutorialID string, update domain.ProgressUpdate) (*domain.ProgressRecord, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
	Summary(ctx context.Context, userID uuid.UUID) (*domain.ProgressSummary, error)
	SubmitQuiz(ctx context.Context, userID uuid.UUID, tutorialID string, answers []int) (*domain.QuizResult, *domain.ProgressRecord, error)
}
