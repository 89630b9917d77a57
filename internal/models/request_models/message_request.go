package request_models

type SendMessageRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Subject  string `json:"subject"` // email only
}

type DraftMessageRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Purpose  string `json:"purpose" binding:"required"`
	Tone     string `json:"tone"`
	Channel  string `json:"channel"`
}
