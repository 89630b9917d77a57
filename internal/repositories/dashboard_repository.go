package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"flock/internal/authz"
	"flock/internal/models/db_models"
)

type DashboardRepository interface {
	CountMembers(ctx context.Context, filter authz.ScopeFilter) (int64, error)
	CountMembersByStatus(ctx context.Context, filter authz.ScopeFilter, status db_models.MemberStatus) (int64, error)
	CountNewMembers(ctx context.Context, filter authz.ScopeFilter, since time.Time) (int64, error)
	CountCamps(ctx context.Context) (int64, error)
	CountUpcomingEvents(ctx context.Context, from time.Time) (int64, error)
	CountOpenFollowUps(ctx context.Context, filter authz.ScopeFilter) (int64, error)
	CountOverdueFollowUps(ctx context.Context, filter authz.ScopeFilter, now time.Time) (int64, error)
	AttendanceCounts(ctx context.Context, filter authz.ScopeFilter, since time.Time) (present int64, total int64, err error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) memberQuery(ctx context.Context, filter authz.ScopeFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&db_models.Member{})
	return filter.Apply(tx, "members")
}

func (r *dashboardRepository) CountMembers(ctx context.Context, filter authz.ScopeFilter) (int64, error) {
	var count int64
	err := r.memberQuery(ctx, filter).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountMembersByStatus(ctx context.Context, filter authz.ScopeFilter, status db_models.MemberStatus) (int64, error) {
	var count int64
	err := r.memberQuery(ctx, filter).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountNewMembers(ctx context.Context, filter authz.ScopeFilter, since time.Time) (int64, error) {
	var count int64
	err := r.memberQuery(ctx, filter).Where("created_at >= ?", since.Unix()).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountCamps(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Camp{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountUpcomingEvents(ctx context.Context, from time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Event{}).
		Where("event_date >= ?", from).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) followUpQuery(ctx context.Context, filter authz.ScopeFilter) *gorm.DB {
	tx := r.db.WithContext(ctx).
		Table("follow_ups").
		Joins("JOIN members ON members.id = follow_ups.member_id AND members.deleted_at IS NULL").
		Where("follow_ups.deleted_at IS NULL")
	return filter.Apply(tx, "members")
}

func (r *dashboardRepository) CountOpenFollowUps(ctx context.Context, filter authz.ScopeFilter) (int64, error) {
	var count int64
	err := r.followUpQuery(ctx, filter).
		Where("follow_ups.scheduled_at IS NOT NULL AND follow_ups.completed_at IS NULL").
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountOverdueFollowUps(ctx context.Context, filter authz.ScopeFilter, now time.Time) (int64, error) {
	var count int64
	err := r.followUpQuery(ctx, filter).
		Where("follow_ups.scheduled_at IS NOT NULL AND follow_ups.scheduled_at < ? AND follow_ups.completed_at IS NULL", now).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) AttendanceCounts(ctx context.Context, filter authz.ScopeFilter, since time.Time) (int64, int64, error) {
	base := func() *gorm.DB {
		tx := r.db.WithContext(ctx).
			Table("attendance_records").
			Joins("JOIN events ON events.id = attendance_records.event_id AND events.deleted_at IS NULL").
			Joins("JOIN members ON members.id = attendance_records.member_id AND members.deleted_at IS NULL").
			Where("attendance_records.deleted_at IS NULL").
			Where("events.event_date >= ?", since)
		return filter.Apply(tx, "members")
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var present int64
	if err := base().Where("attendance_records.status = ?", db_models.AttendancePresent).Count(&present).Error; err != nil {
		return 0, 0, err
	}
	return present, total, nil
}
