package db_models

import "time"

type EventType string

const (
	EventTypeService  EventType = "Service"
	EventTypeRetreat  EventType = "Retreat"
	EventTypeMeeting  EventType = "Meeting"
	EventTypeOutreach EventType = "Outreach"
)

type Event struct {
	BaseModel
	Title      string    `gorm:"not null" json:"title"`
	Type       EventType `gorm:"index;default:Service" json:"type"`
	EventDate  time.Time `gorm:"index;not null" json:"event_date"`
	MeetingURL string    `json:"meeting_url"`
	Recurrence string    `json:"recurrence"` // e.g. "weekly", empty for one-off
}
