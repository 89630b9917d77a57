package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
)

type CampRepository interface {
	List(ctx context.Context) ([]db_models.Camp, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Camp, error)
	FindByName(ctx context.Context, name string) (*db_models.Camp, error)
	Insert(ctx context.Context, camp *db_models.Camp) error
	SetLeader(ctx context.Context, campID, memberID uuid.UUID) error
}

type campRepository struct {
	db *gorm.DB
}

func NewCampRepository(db *gorm.DB) CampRepository {
	return &campRepository{db: db}
}

func (r *campRepository) List(ctx context.Context) ([]db_models.Camp, error) {
	var camps []db_models.Camp
	if err := r.db.WithContext(ctx).Order("name").Find(&camps).Error; err != nil {
		return nil, err
	}
	return camps, nil
}

func (r *campRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Camp, error) {
	var camp db_models.Camp
	err := r.db.WithContext(ctx).First(&camp, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &camp, nil
}

func (r *campRepository) FindByName(ctx context.Context, name string) (*db_models.Camp, error) {
	var camp db_models.Camp
	err := r.db.WithContext(ctx).First(&camp, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &camp, nil
}

func (r *campRepository) Insert(ctx context.Context, camp *db_models.Camp) error {
	return r.db.WithContext(ctx).Create(camp).Error
}

func (r *campRepository) SetLeader(ctx context.Context, campID, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Camp{}).
		Where("id = ?", campID).
		Update("leader_id", memberID).Error
}
