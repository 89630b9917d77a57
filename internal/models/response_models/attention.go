package response_models

import "github.com/google/uuid"

const (
	AttentionTypeInactive = "inactive"
	AttentionTypeOverdue  = "overdue"
)

// AttentionItem is one row of the "needs attention" panel. ReferenceID is
// the follow-up id for overdue items and the member id for inactive items;
// the dismiss endpoint interprets it by Type.
type AttentionItem struct {
	MemberID    uuid.UUID `json:"member_id"`
	Type        string    `json:"type"`
	ReferenceID uuid.UUID `json:"reference_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Reason      string    `json:"reason"`
	DaysOverdue *int      `json:"days_overdue"`
}
