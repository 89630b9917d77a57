package db_models

import (
	"time"

	"github.com/google/uuid"
)

type FollowUpType string

const (
	FollowUpCall     FollowUpType = "Call"
	FollowUpWhatsApp FollowUpType = "WhatsApp"
	FollowUpPrayer   FollowUpType = "Prayer"
	FollowUpVisit    FollowUpType = "Visit"
	FollowUpOther    FollowUpType = "Other"
)

type FollowUpOutcome string

const (
	OutcomeReached           FollowUpOutcome = "Reached"
	OutcomeNoAnswer          FollowUpOutcome = "NoAnswer"
	OutcomeScheduledCallback FollowUpOutcome = "ScheduledCallback"
)

// FollowUp is a pastoral contact record. ScheduledAt set + CompletedAt nil
// means pending; pending with ScheduledAt in the past is overdue.
type FollowUp struct {
	BaseModel
	MemberID    uuid.UUID        `gorm:"index;not null" json:"member_id"`
	UserID      uuid.UUID        `gorm:"index;not null" json:"user_id"`
	Type        FollowUpType     `gorm:"not null" json:"type"`
	Notes       string           `json:"notes"`
	Outcome     *FollowUpOutcome `json:"outcome"`
	ScheduledAt *time.Time       `gorm:"index" json:"scheduled_at"`
	CompletedAt *time.Time       `gorm:"index" json:"completed_at"`
}
