package db_models

import "github.com/google/uuid"

// User is the authenticated staff identity, distinct from Member. Its id
// doubles as the external identity provider's subject id. Roles are a
// stricter enum than Member.Role; the closed set lives in internal/authz.
type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"index;not null" json:"role"`
	MemberID     *uuid.UUID `gorm:"index" json:"member_id"`
	CampID       *uuid.UUID `gorm:"index" json:"camp_id"`
	DisplayName  string     `json:"display_name"`
}

// LeaderCampus maps a Leader user to a campus string (many-to-many).
type LeaderCampus struct {
	BaseModel
	UserID uuid.UUID `gorm:"index:idx_leader_campus,unique;not null" json:"user_id"`
	Campus string    `gorm:"index:idx_leader_campus,unique;not null" json:"campus"`
}
