package request_models

type CreateEventRequest struct {
	Title      string `json:"title" binding:"required"`
	Type       string `json:"type"`
	EventDate  string `json:"event_date" binding:"required"` // RFC3339 or YYYY-MM-DD
	MeetingURL string `json:"meeting_url"`
	Recurrence string `json:"recurrence"`
}

type MarkAttendanceRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=Present Absent Excused"`
	Notes    string `json:"notes"`
}
