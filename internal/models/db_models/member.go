package db_models

import (
	"time"

	"github.com/google/uuid"
)

type MemberRole string

const (
	MemberRoleLeader     MemberRole = "Leader"
	MemberRoleShepherd   MemberRole = "Shepherd"
	MemberRoleMember     MemberRole = "Member"
	MemberRoleNewConvert MemberRole = "NewConvert"
	MemberRoleGuest      MemberRole = "Guest"
)

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
	MemberStatusArchived MemberStatus = "Archived"
)

type Member struct {
	BaseModel
	FirstName string       `gorm:"not null" json:"first_name"`
	LastName  string       `gorm:"not null" json:"last_name"`
	Email     *string      `gorm:"uniqueIndex" json:"email"`
	Phone     *string      `gorm:"uniqueIndex" json:"phone"`
	Role      MemberRole   `gorm:"index;default:Member" json:"role"`
	Status    MemberStatus `gorm:"index;default:Active" json:"status"`
	Category  string       `json:"category"`
	Campus    string       `json:"campus"`
	CampID    *uuid.UUID   `gorm:"index" json:"camp_id"`

	Birthday  *time.Time `json:"birthday"`
	JoinDate  *time.Time `json:"join_date"`
	Region    string     `json:"region"`
	Residence string     `json:"residence"`

	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`

	ProfilePicture string `json:"profile_picture"`

	// Single-use token for the member's own profile-update form.
	UpdateToken       *string    `gorm:"index" json:"-"`
	UpdateTokenExpiry *time.Time `json:"-"`
}

// FullName is used in alerts and outbound messages.
func (m *Member) FullName() string {
	if m.FirstName == "" {
		return m.LastName
	}
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
