package response_models

import (
	"github.com/google/uuid"

	"flock/internal/models/db_models"
)

// MemberResponse is a member record plus the per-actor edit capability.
type MemberResponse struct {
	db_models.Member
	CanEdit bool `json:"can_edit"`
}

type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
	Total   int64            `json:"total"`
}

type SelfServiceLinkResponse struct {
	MemberID  uuid.UUID `json:"member_id"`
	UpdateURL string    `json:"update_url"`
	ExpiresAt int64     `json:"expires_at"`
}
