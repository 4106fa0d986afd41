package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// ProgressRepository persists per-(user, tutorial) progress records.
type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Get(ctx context.Context, userID uuid.UUID, tutorialID string) (*domain.ProgressRecord, error) {
	var record domain.ProgressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tutorial_id = ?", userID, tutorialID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, fmt.Errorf("find progress: %w", err)
	}
	return &record, nil
}

// Upsert is a single INSERT ... ON CONFLICT (user_id, tutorial_id) DO
// UPDATE. Two concurrent upserts for the same pair can never create a
// duplicate row; only the columns in updateFields are merged, so fields
// the caller did not provide keep their stored values.
func (r *ProgressRepository) Upsert(ctx context.Context, record *domain.ProgressRecord, updateFields []string) (*domain.ProgressRecord, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "tutorial_id"}},
		DoUpdates: clause.AssignmentColumns(updateFields),
	}).Create(record).Error
	if err != nil {
		return nil, fmt.Errorf("upsert progress: %w", err)
	}

	// Fetch back: on the conflict path the in-memory record does not
	// reflect the merged row.
	return r.Get(ctx, record.UserID, record.TutorialID)
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	var records []domain.ProgressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return records, nil
}
