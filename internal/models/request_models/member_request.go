package request_models

type CreateMemberRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Role          string `json:"role" binding:"omitempty,oneof=Leader Shepherd Member NewConvert Guest"`
	Status        string `json:"status" binding:"omitempty,oneof=Active Inactive Archived"`
	Category      string `json:"category"`
	Campus        string `json:"campus"`
	CampID        string `json:"camp_id"`
	Birthday      string `json:"birthday"`
	JoinDate      string `json:"join_date"`
	Region        string `json:"region"`
	Residence     string `json:"residence"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
}

// UpdateMemberRequest carries pointers so absent fields are left untouched.
type UpdateMemberRequest struct {
	FirstName     *string `json:"first_name"`
	LastName      *string `json:"last_name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Role          *string `json:"role" binding:"omitempty,oneof=Leader Shepherd Member NewConvert Guest"`
	Status        *string `json:"status" binding:"omitempty,oneof=Active Inactive Archived"`
	Category      *string `json:"category"`
	Campus        *string `json:"campus"`
	CampID        *string `json:"camp_id"`
	Birthday      *string `json:"birthday"`
	Region        *string `json:"region"`
	Residence     *string `json:"residence"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
}

type BulkDeleteRequest struct {
	MemberIDs []string `json:"member_ids" binding:"required,min=1"`
}

type AssignShepherdRequest struct {
	ShepherdID string `json:"shepherd_id" binding:"required"`
}

// SelfServiceUpdateRequest is the limited field set the member may edit on
// the token-gated form.
type SelfServiceUpdateRequest struct {
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Residence     string `json:"residence"`
	Region        string `json:"region"`
	Birthday      string `json:"birthday"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
}
