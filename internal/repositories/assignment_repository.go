package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
)

type AssignmentRepository interface {
	MemberIDsForShepherd(ctx context.Context, shepherdID uuid.UUID) ([]uuid.UUID, error)
	Exists(ctx context.Context, memberID, shepherdID uuid.UUID) (bool, error)
	Assign(ctx context.Context, memberID, shepherdID uuid.UUID) error
	Unassign(ctx context.Context, memberID uuid.UUID) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) MemberIDsForShepherd(ctx context.Context, shepherdID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.MemberAssignment{}).
		Where("shepherd_id = ?", shepherdID).
		Pluck("member_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *assignmentRepository) Exists(ctx context.Context, memberID, shepherdID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.MemberAssignment{}).
		Where("member_id = ? AND shepherd_id = ?", memberID, shepherdID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Assign keeps at most one active shepherd per member by clearing previous
// rows first.
func (r *assignmentRepository) Assign(ctx context.Context, memberID, shepherdID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.MemberAssignment{}, "member_id = ?", memberID).Error; err != nil {
			return err
		}
		return tx.Create(&db_models.MemberAssignment{
			MemberID:   memberID,
			ShepherdID: shepherdID,
			AssignedAt: time.Now(),
		}).Error
	})
}

func (r *assignmentRepository) Unassign(ctx context.Context, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.MemberAssignment{}, "member_id = ?", memberID).Error
}
