package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devpath/tutorial-platform/internal/core/domain"
	"github.com/devpath/tutorial-platform/internal/core/ports"
)

// ProgressService tracks per-user, per-tutorial completion state and
// derives the dashboard summary. All writes go through a single atomic
// upsert in the repository.
type ProgressService struct {
	repo    ports.ProgressRepository
	catalog ports.TutorialCatalog
	cache   ports.SummaryCache
	logger  zerolog.Logger
}

// NewProgressService creates a ProgressService. cache may be nil, in which
// case summaries are recomputed on every call.
func NewProgressService(repo ports.ProgressRepository, catalog ports.TutorialCatalog, cache ports.SummaryCache, logger zerolog.Logger) *ProgressService {
	return &ProgressService{repo: repo, catalog: catalog, cache: cache, logger: logger}
}

// Get returns the progress record for one tutorial. A first visit yields
// domain.ErrProgressNotFound — a valid outcome, not a failure.
func (s *ProgressService) Get(ctx context.Context, userID uuid.UUID, tutorialID string) (*domain.ProgressRecord, error) {
	return s.repo.Get(ctx, userID, tutorialID)
}

// Upsert creates the record on first interaction, otherwise merges the
// provided fields into the existing row. last_accessed is refreshed on
// every call.
func (s *ProgressService) Upsert(ctx context.Context, userID uuid.UUID, tutorialID string, update domain.ProgressUpdate) (*domain.ProgressRecord, error) {
	if tutorialID == "" || update.IsEmpty() {
		return nil, domain.ErrValidation
	}
	update.Normalize()

	now := time.Now().UTC()
	record := &domain.ProgressRecord{
		ID:           uuid.New(),
		UserID:       userID,
		TutorialID:   tutorialID,
		LastAccessed: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	fields := []string{"last_accessed", "updated_at"}
	if update.Completed != nil {
		record.Completed = *update.Completed
		fields = append(fields, "completed")
	}
	if update.Progress != nil {
		record.Progress = *update.Progress
		fields = append(fields, "progress")
	}

	stored, err := s.repo.Upsert(ctx, record, fields)
	if err != nil {
		s.logger.Error().Err(err).Str("tutorial_id", tutorialID).Msg("progress upsert failed")
		return nil, err
	}

	s.invalidateSummary(ctx, userID)
	return stored, nil
}

// ListAll returns every progress record for the user, most recently
// accessed first.
func (s *ProgressService) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Summary returns the derived aggregate across all tutorials, served from
// cache when possible. Cache failures degrade to recomputation.
func (s *ProgressService) Summary(ctx context.Context, userID uuid.UUID) (*domain.ProgressSummary, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Msg("summary cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeProgress(records)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, &summary); err != nil {
			s.logger.Warn().Err(err).Msg("summary cache write failed")
		}
	}
	return &summary, nil
}

// SubmitQuiz scores the user's answers against the tutorial's quiz and
// records the result as a completion update: the tutorial is marked
// completed with progress equal to the score percentage.
func (s *ProgressService) SubmitQuiz(ctx context.Context, userID uuid.UUID, tutorialID string, answers []int) (*domain.QuizResult, *domain.ProgressRecord, error) {
	tutorial, err := s.catalog.Get(tutorialID)
	if err != nil {
		return nil, nil, err
	}

	result, err := domain.ScoreQuiz(tutorial.Quiz, answers)
	if err != nil {
		return nil, nil, err
	}

	completed := true
	record, err := s.Upsert(ctx, userID, tutorialID, domain.ProgressUpdate{
		Completed: &completed,
		Progress:  &result.Percentage,
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("tutorial_id", tutorialID).
		Int("score", result.Score).
		Int("total", result.Total).
		Msg("quiz submitted")

	return &result, record, nil
}

func (s *ProgressService) invalidateSummary(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Msg("summary cache invalidation failed")
	}
}
