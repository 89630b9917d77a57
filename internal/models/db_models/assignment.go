package db_models

import (
	"time"

	"github.com/google/uuid"
)

// MemberAssignment maps a member to the shepherd (User) responsible for them.
// The schema permits multiple rows per member; usage keeps one active.
type MemberAssignment struct {
	BaseModel
	MemberID   uuid.UUID `gorm:"index;not null" json:"member_id"`
	ShepherdID uuid.UUID `gorm:"index;not null" json:"shepherd_id"`
	AssignedAt time.Time `gorm:"not null" json:"assigned_at"`
}
