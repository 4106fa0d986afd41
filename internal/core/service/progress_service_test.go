package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

type progressKey struct {
	userID     uuid.UUID
	tutorialID string
}

// stubProgressRepo implements the same merge-on-conflict contract as the
// Postgres repository: only updateFields overwrite stored values.
type stubProgressRepo struct {
	records map[progressKey]*domain.ProgressRecord
}

func newStubProgressRepo() *stubProgressRepo {
	return &stubProgressRepo{records: make(map[progressKey]*domain.ProgressRecord)}
}

func (r *stubProgressRepo) Get(_ context.Context, userID uuid.UUID, tutorialID string) (*domain.ProgressRecord, error) {
	rec, ok := r.records[progressKey{userID, tutorialID}]
	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *stubProgressRepo) Upsert(_ context.Context, record *domain.ProgressRecord, updateFields []string) (*domain.ProgressRecord, error) {
	key := progressKey{record.UserID, record.TutorialID}
	existing, ok := r.records[key]
	if !ok {
		clone := *record
		r.records[key] = &clone
		out := clone
		return &out, nil
	}

	for _, field := range updateFields {
		switch field {
		case "completed":
			existing.Completed = record.Completed
		case "progress":
			existing.Progress = record.Progress
		case "last_accessed":
			existing.LastAccessed = record.LastAccessed
		case "updated_at":
			existing.UpdatedAt = record.UpdatedAt
		}
	}
	out := *existing
	return &out, nil
}

func (r *stubProgressRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	var out []domain.ProgressRecord
	for key, rec := range r.records {
		if key.userID == userID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastAccessed.After(out[j].LastAccessed)
	})
	return out, nil
}

type stubCatalog struct {
	tutorials map[string]domain.Tutorial
}

func (c *stubCatalog) List() []domain.Tutorial {
	var out []domain.Tutorial
	for _, t := range c.tutorials {
		out = append(out, t)
	}
	return out
}

func (c *stubCatalog) Get(id string) (*domain.Tutorial, error) {
	t, ok := c.tutorials[id]
	if !ok {
		return nil, domain.ErrTutorialNotFound
	}
	return &t, nil
}

type stubSummaryCache struct {
	entries     map[uuid.UUID]*domain.ProgressSummary
	invalidated int
}

func newStubSummaryCache() *stubSummaryCache {
	return &stubSummaryCache{entries: make(map[uuid.UUID]*domain.ProgressSummary)}
}

func (c *stubSummaryCache) Get(_ context.Context, userID uuid.UUID) (*domain.ProgressSummary, bool, error) {
	s, ok := c.entries[userID]
	return s, ok, nil
}

func (c *stubSummaryCache) Set(_ context.Context, userID uuid.UUID, summary *domain.ProgressSummary) error {
	c.entries[userID] = summary
	return nil
}

func (c *stubSummaryCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	delete(c.entries, userID)
	c.invalidated++
	return nil
}

func newProgressService(repo *stubProgressRepo, cache *stubSummaryCache) *ProgressService {
	catalog := &stubCatalog{tutorials: map[string]domain.Tutorial{
		"js-basics": {
			ID:   "js-basics",
			Quiz: []domain.Question{{Answer: 2}, {Answer: 1}},
		},
	}}
	return NewProgressService(repo, catalog, cache, zerolog.Nop())
}

func TestProgressService_Get_FirstVisit(t *testing.T) {
	svc := newProgressService(newStubProgressRepo(), newStubSummaryCache())

	if _, err := svc.Get(context.Background(), uuid.New(), "js-basics"); err != domain.ErrProgressNotFound {
		t.Fatalf("expected ErrProgressNotFound, got %v", err)
	}
}

func TestProgressService_Upsert_SecondCallMerges(t *testing.T) {
	repo := newStubProgressRepo()
	svc := newProgressService(repo, newStubSummaryCache())
	userID := uuid.New()

	half := 50.0
	first, err := svc.Upsert(context.Background(), userID, "js-basics", domain.ProgressUpdate{Progress: &half})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if first.Progress != 50 || first.Completed {
		t.Fatalf("unexpected first record: %+v", first)
	}

	done := true
	second, err := svc.Upsert(context.Background(), userID, "js-basics", domain.ProgressUpdate{Completed: &done})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.records))
	}
	if !second.Completed {
		t.Fatalf("second call's fields must override")
	}
	// completed without explicit progress implies 100
	if second.Progress != 100 {
		t.Fatalf("expected progress 100, got %v", second.Progress)
	}
}

func TestProgressService_Upsert_ClampsProgress(t *testing.T) {
	svc := newProgressService(newStubProgressRepo(), newStubSummaryCache())

	over := 150.0
	record, err := svc.Upsert(context.Background(), uuid.New(), "js-basics", domain.ProgressUpdate{Progress: &over})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if record.Progress != 100 {
		t.Fatalf("expected clamped progress 100, got %v", record.Progress)
	}
}

func TestProgressService_Upsert_EmptyUpdate(t *testing.T) {
	svc := newProgressService(newStubProgressRepo(), newStubSummaryCache())

	if _, err := svc.Upsert(context.Background(), uuid.New(), "js-basics", domain.ProgressUpdate{}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty update, got %v", err)
	}
}

func TestProgressService_Upsert_RefreshesLastAccessed(t *testing.T) {
	repo := newStubProgressRepo()
	svc := newProgressService(repo, newStubSummaryCache())
	userID := uuid.New()

	half := 50.0
	first, err := svc.Upsert(context.Background(), userID, "js-basics", domain.ProgressUpdate{Progress: &half})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	// Backdate the stored record, then upsert again.
	repo.records[progressKey{userID, "js-basics"}].LastAccessed = first.LastAccessed.Add(-time.Hour)

	second, err := svc.Upsert(context.Background(), userID, "js-basics", domain.ProgressUpdate{Progress: &half})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if !second.LastAccessed.After(first.LastAccessed.Add(-time.Hour)) {
		t.Fatalf("last_accessed was not refreshed")
	}
}

func TestProgressService_ListAll_MostRecentFirst(t *testing.T) {
	repo := newStubProgressRepo()
	svc := newProgressService(repo, newStubSummaryCache())
	userID := uuid.New()

	half := 50.0
	if _, err := svc.Upsert(context.Background(), userID, "js-basics", domain.ProgressUpdate{Progress: &half}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	// Backdate the first record so the second write is strictly newer.
	repo.records[progressKey{userID, "js-basics"}].LastAccessed = time.Now().Add(-time.Hour)

	if _, err := svc.Upsert(context.Background(), userID, "js-functions", domain.ProgressUpdate{Progress: &half}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	records, err := svc.ListAll(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].TutorialID != "js-functions" || records[1].TutorialID != "js-basics" {
		t.Fatalf("expected most-recently-accessed first, got %s then %s", records[0].TutorialID, records[1].TutorialID)
	}
	if records[1].LastAccessed.After(records[0].LastAccessed) {
		t.Fatalf("records not ordered by last_accessed descending")
	}
}

func TestProgressService_Summary_CachesAndInvalidates(t *testing.T) {
	repo := newStubProgressRepo()
	cache := newStubSummaryCache()
	svc := newProgressService(repo, cache)
	userID := uuid.New()

	done := true
	if _, err := svc.Upsert(context.Background(), userID, "js-basics", domain.ProgressUpdate{Completed: &done}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	summary, err := svc.Summary(context.Background(), userID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TutorialsCompleted != 1 {
		t.Fatalf("expected 1 completed, got %d", summary.TutorialsCompleted)
	}
	if _, ok := cache.entries[userID]; !ok {
		t.Fatalf("summary was not cached")
	}

	// A new write must drop the cached aggregate.
	half := 50.0
	if _, err := svc.Upsert(context.Background(), userID, "js-basics", domain.ProgressUpdate{Progress: &half}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, ok := cache.entries[userID]; ok {
		t.Fatalf("cache was not invalidated after upsert")
	}
}

func TestProgressService_SubmitQuiz(t *testing.T) {
	repo := newStubProgressRepo()
	svc := newProgressService(repo, newStubSummaryCache())
	userID := uuid.New()

	result, record, err := svc.SubmitQuiz(context.Background(), userID, "js-basics", []int{2, 0})
	if err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	if result.Score != 1 || result.Percentage != 50 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if !record.Completed {
		t.Fatalf("quiz submission must mark the tutorial completed")
	}
	if record.Progress != 50 {
		t.Fatalf("expected progress 50, got %v", record.Progress)
	}
}

func TestProgressService_SubmitQuiz_Incomplete(t *testing.T) {
	svc := newProgressService(newStubProgressRepo(), newStubSummaryCache())

	if _, _, err := svc.SubmitQuiz(context.Background(), uuid.New(), "js-basics", []int{2, domain.NoAnswer}); err != domain.ErrQuizIncomplete {
		t.Fatalf("expected ErrQuizIncomplete, got %v", err)
	}
}

func TestProgressService_SubmitQuiz_UnknownTutorial(t *testing.T) {
	svc := newProgressService(newStubProgressRepo(), newStubSummaryCache())

	if _, _, err := svc.SubmitQuiz(context.Background(), uuid.New(), "missing", []int{0}); err != domain.ErrTutorialNotFound {
		t.Fatalf("expected ErrTutorialNotFound, got %v", err)
	}
}
