package db_models

import "github.com/google/uuid"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceExcused AttendanceStatus = "Excused"
)

// AttendanceRecord is unique per (member, event) and upserted by marking actions.
type AttendanceRecord struct {
	BaseModel
	MemberID uuid.UUID        `gorm:"uniqueIndex:idx_attendance_member_event;not null" json:"member_id"`
	EventID  uuid.UUID        `gorm:"uniqueIndex:idx_attendance_member_event;not null" json:"event_id"`
	Status   AttendanceStatus `gorm:"not null" json:"status"`
	Notes    string           `json:"notes"`
}
