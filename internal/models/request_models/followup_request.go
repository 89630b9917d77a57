package request_models

type CreateFollowUpRequest struct {
	MemberID    string `json:"member_id" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=Call WhatsApp Prayer Visit Other"`
	Notes       string `json:"notes"`
	ScheduledAt string `json:"scheduled_at"` // RFC3339; empty for an immediate contact record
}

type CompleteFollowUpRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=Reached NoAnswer ScheduledCallback"`
	Notes   string `json:"notes"`
}

// DismissRequest targets one attention item. ReferenceID is the follow-up
// id for type "overdue" and the member id for type "inactive".
type DismissRequest struct {
	Type        string `json:"type" binding:"required"`
	ReferenceID string `json:"reference_id" binding:"required"`
}
