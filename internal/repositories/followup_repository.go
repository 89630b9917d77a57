package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
)

type FollowUpRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.FollowUp, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.FollowUp, error)
	Insert(ctx context.Context, followUp *db_models.FollowUp) error
	Update(ctx context.Context, followUp *db_models.FollowUp) error
	// Delete reports how many rows were removed so a repeat dismiss can be
	// answered with not-found instead of a silent success.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type followUpRepository struct {
	db *gorm.DB
}

func NewFollowUpRepository(db *gorm.DB) FollowUpRepository {
	return &followUpRepository{db: db}
}

func (r *followUpRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.FollowUp, error) {
	var followUp db_models.FollowUp
	err := r.db.WithContext(ctx).First(&followUp, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &followUp, nil
}

func (r *followUpRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.FollowUp, error) {
	var followUps []db_models.FollowUp
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at desc").
		Find(&followUps).Error
	if err != nil {
		return nil, err
	}
	return followUps, nil
}

func (r *followUpRepository) Insert(ctx context.Context, followUp *db_models.FollowUp) error {
	return r.db.WithContext(ctx).Create(followUp).Error
}

func (r *followUpRepository) Update(ctx context.Context, followUp *db_models.FollowUp) error {
	return r.db.WithContext(ctx).Save(followUp).Error
}

func (r *followUpRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&db_models.FollowUp{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
