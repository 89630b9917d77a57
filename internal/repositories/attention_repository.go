package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flock/internal/authz"
	"flock/internal/models/db_models"
)

// InactiveMemberRow is an active member with no recent Present attendance
// and no recent completed follow-up. LastSeen is nil for members who never
// attended anything.
type InactiveMemberRow struct {
	MemberID  uuid.UUID  `gorm:"column:member_id"`
	FirstName string     `gorm:"column:first_name"`
	LastName  string     `gorm:"column:last_name"`
	LastSeen  *time.Time `gorm:"column:last_seen"`
}

type OverdueFollowUpRow struct {
	FollowUpID  uuid.UUID `gorm:"column:follow_up_id"`
	MemberID    uuid.UUID `gorm:"column:member_id"`
	FirstName   string    `gorm:"column:first_name"`
	LastName    string    `gorm:"column:last_name"`
	ScheduledAt time.Time `gorm:"column:scheduled_at"`
}

type AttentionRepository interface {
	InactiveMembers(ctx context.Context, filter authz.ScopeFilter, attendanceCutoff, contactCutoff time.Time, limit int) ([]InactiveMemberRow, error)
	OverdueFollowUps(ctx context.Context, filter authz.ScopeFilter, now time.Time, limit int) ([]OverdueFollowUpRow, error)
}

type attentionRepository struct {
	db *gorm.DB
}

func NewAttentionRepository(db *gorm.DB) AttentionRepository {
	return &attentionRepository{db: db}
}

func (r *attentionRepository) InactiveMembers(ctx context.Context, filter authz.ScopeFilter, attendanceCutoff, contactCutoff time.Time, limit int) ([]InactiveMemberRow, error) {
	tx := r.db.WithContext(ctx).
		Table("members").
		Select(`members.id AS member_id, members.first_name, members.last_name,
			(SELECT MAX(events.event_date)
			 FROM attendance_records
			 JOIN events ON events.id = attendance_records.event_id AND events.deleted_at IS NULL
			 WHERE attendance_records.member_id = members.id
			   AND attendance_records.status = ?
			   AND attendance_records.deleted_at IS NULL) AS last_seen`,
			db_models.AttendancePresent).
		Where("members.deleted_at IS NULL").
		Where("members.status = ?", db_models.MemberStatusActive).
		Where(`NOT EXISTS (
			SELECT 1 FROM attendance_records ar
			JOIN events e ON e.id = ar.event_id AND e.deleted_at IS NULL
			WHERE ar.member_id = members.id
			  AND ar.status = ?
			  AND ar.deleted_at IS NULL
			  AND e.event_date >= ?)`,
			db_models.AttendancePresent, attendanceCutoff).
		Where(`NOT EXISTS (
			SELECT 1 FROM follow_ups f
			WHERE f.member_id = members.id
			  AND f.completed_at IS NOT NULL
			  AND f.completed_at >= ?
			  AND f.deleted_at IS NULL)`,
			contactCutoff)

	tx = filter.Apply(tx, "members")

	// last_seen is a computed aggregate, so sqlite reports no declared type
	// and its driver hands the value back as text; scan it as a nullable
	// string and parse, which both drivers agree on.
	var scanned []struct {
		MemberID  uuid.UUID `gorm:"column:member_id"`
		FirstName string    `gorm:"column:first_name"`
		LastName  string    `gorm:"column:last_name"`
		LastSeen  *string   `gorm:"column:last_seen"`
	}
	// Never-attended members have a NULL last_seen and must lead the page;
	// sqlite and postgres disagree on default NULL placement.
	if err := tx.Order("last_seen ASC NULLS FIRST").Limit(limit).Scan(&scanned).Error; err != nil {
		return nil, err
	}

	rows := make([]InactiveMemberRow, 0, len(scanned))
	for _, s := range scanned {
		row := InactiveMemberRow{
			MemberID:  s.MemberID,
			FirstName: s.FirstName,
			LastName:  s.LastName,
		}
		if s.LastSeen != nil {
			lastSeen, err := parseLastSeen(*s.LastSeen)
			if err != nil {
				return nil, err
			}
			row.LastSeen = &lastSeen
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// lastSeenLayouts covers the text forms the two drivers emit for a
// timestamp column read back without type information.
var lastSeenLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func parseLastSeen(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range lastSeenLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func (r *attentionRepository) OverdueFollowUps(ctx context.Context, filter authz.ScopeFilter, now time.Time, limit int) ([]OverdueFollowUpRow, error) {
	tx := r.db.WithContext(ctx).
		Table("follow_ups").
		Select(`follow_ups.id AS follow_up_id, follow_ups.member_id,
			members.first_name, members.last_name, follow_ups.scheduled_at`).
		Joins("JOIN members ON members.id = follow_ups.member_id AND members.deleted_at IS NULL").
		Where("follow_ups.deleted_at IS NULL").
		Where("follow_ups.scheduled_at IS NOT NULL AND follow_ups.scheduled_at < ?", now).
		Where("follow_ups.completed_at IS NULL")

	tx = filter.Apply(tx, "members")

	var rows []OverdueFollowUpRow
	if err := tx.Order("follow_ups.scheduled_at").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
