package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"flock/internal/models/db_models"
)

type AttendanceRepository interface {
	// Upsert keeps one record per (member, event), updating status and
	// notes when the pair already exists.
	Upsert(ctx context.Context, record *db_models.AttendanceRecord) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.AttendanceRecord, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(ctx context.Context, record *db_models.AttendanceRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "event_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "updated_at"}),
	}).Create(record).Error
}

func (r *attendanceRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]db_models.AttendanceRecord, error) {
	var records []db_models.AttendanceRecord
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.AttendanceRecord, error) {
	var records []db_models.AttendanceRecord
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
