package request_models

type CreateCampRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetCampLeaderRequest struct {
	MemberID string `json:"member_id" binding:"required"`
}
