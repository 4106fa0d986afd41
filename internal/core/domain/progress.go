package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrProgressNotFound = errors.New("progress record not found")

// ProgressRecord tracks a single user's progress through a single tutorial.
// At most one record exists per (user, tutorial) pair, enforced by a
// composite unique index and upsert-only writes.
type ProgressRecord struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_user_tutorial,unique"`
	TutorialID   string    `json:"tutorial_id" gorm:"not null;index:idx_user_tutorial,unique"`
	Completed    bool      `json:"completed"`
	Progress     float64   `json:"progress"`
	LastAccessed time.Time `json:"last_accessed" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ProgressRecord) TableName() string { return "user_progress" }

// ProgressUpdate is a partial update to a progress record. Nil fields keep
// their stored value.
type ProgressUpdate struct {
	Completed *bool
	Progress  *float64
}

// Normalize applies the consistency policy before persistence: percentages
// are clamped to [0,100], and marking a tutorial completed without an
// explicit percentage implies 100.
func (u *ProgressUpdate) Normalize() {
	if u.Progress != nil {
		if *u.Progress < 0 {
			*u.Progress = 0
		}
		if *u.Progress > 100 {
			*u.Progress = 100
		}
	}
	if u.Completed != nil && *u.Completed && u.Progress == nil {
		full := 100.0
		u.Progress = &full
	}
}

// IsEmpty reports whether the update carries no fields at all.
func (u *ProgressUpdate) IsEmpty() bool {
	return u.Completed == nil && u.Progress == nil
}

// ProgressSummary is the derived per-user aggregate shown on the dashboard.
type ProgressSummary struct {
	TutorialsStarted   int       `json:"tutorials_started"`
	TutorialsCompleted int       `json:"tutorials_completed"`
	AverageProgress    float64   `json:"average_progress"`
	LastAccessed       time.Time `json:"last_accessed,omitempty"`
}

// SummarizeProgress folds a user's progress records into a ProgressSummary.
// Records are expected in most-recently-accessed-first order.
func SummarizeProgress(records []ProgressRecord) ProgressSummary {
	var s ProgressSummary
	if len(records) == 0 {
		return s
	}
	s.TutorialsStarted = len(records)
	s.LastAccessed = records[0].LastAccessed
	var total float64
	for _, r := range records {
		if r.Completed {
			s.TutorialsCompleted++
		}
		total += r.Progress
		if r.LastAccessed.After(s.LastAccessed) {
			s.LastAccessed = r.LastAccessed
		}
	}
	s.AverageProgress = total / float64(len(records))
	return s
}
