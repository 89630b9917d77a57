package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
)

type EventRepository interface {
	List(ctx context.Context, from, to *time.Time) ([]db_models.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error)
	Insert(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, event *db_models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context, from, to *time.Time) ([]db_models.Event, error) {
	tx := r.db.WithContext(ctx).Model(&db_models.Event{})
	if from != nil {
		tx = tx.Where("event_date >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("event_date <= ?", *to)
	}
	var events []db_models.Event
	if err := tx.Order("event_date desc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Insert(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Event{}, "id = ?", id).Error
}
