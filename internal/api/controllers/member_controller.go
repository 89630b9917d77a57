package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flock/internal/models/db_models"
	"flock/internal/models/request_models"
	"flock/internal/repositories"
	"flock/internal/services"
	"flock/pkg/middleware"
	"flock/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{memberService: memberService}
}

// List godoc
// @Summary List members visible to the caller
// @Description Paginated member list, narrowed to the caller's access scope
// @Tags Members
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param status query string false "Filter by status"
// @Param role query string false "Filter by role"
// @Param camp_id query string false "Filter by camp"
// @Param search query string false "Name/email/phone search"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members [get]
func (m *MemberController) List(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	opts := repositories.MemberListOptions{
		Status:   db_models.MemberStatus(c.Query("status")),
		Role:     db_models.MemberRole(c.Query("role")),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("camp_id"); raw != "" {
		campID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid camp id")
			return
		}
		opts.CampID = &campID
	}

	result, err := m.memberService.List(c.Request.Context(), actor, opts)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Members retrieved")
}

// Get godoc
// @Summary Get one member
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id} [get]
func (m *MemberController) Get(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	member, err := m.memberService.Get(c.Request.Context(), actor, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member retrieved")
}

// Create godoc
// @Summary Create a member
// @Tags Members
// @Accept json
// @Produce json
// @Param request body request_models.CreateMemberRequest true "Member payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members [post]
func (m *MemberController) Create(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := m.memberService.Create(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member created")
}

// Update godoc
// @Summary Update a member
// @Description Partial update; role changes sync the linked staff login
// @Tags Members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body request_models.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id} [put]
func (m *MemberController) Update(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req request_models.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	member, err := m.memberService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, member, "Member updated")
}

// Delete godoc
// @Summary Delete a member
// @Tags Members
// @Param id path string true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id} [delete]
func (m *MemberController) Delete(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	if err := m.memberService.Delete(c.Request.Context(), actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Member deleted")
}

// BulkDelete godoc
// @Summary Delete several members at once
// @Tags Members
// @Accept json
// @Param request body request_models.BulkDeleteRequest true "Member ids"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/bulk-delete [post]
func (m *MemberController) BulkDelete(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.MemberIDs))
	for _, raw := range req.MemberIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid member id: "+raw)
			return
		}
		ids = append(ids, id)
	}

	deleted, err := m.memberService.BulkDelete(c.Request.Context(), actor, ids)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": deleted}, "Members deleted")
}

// AssignShepherd godoc
// @Summary Assign a shepherd to a member
// @Tags Members
// @Accept json
// @Param id path string true "Member ID"
// @Param request body request_models.AssignShepherdRequest true "Shepherd id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id}/shepherd [post]
func (m *MemberController) AssignShepherd(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	var req request_models.AssignShepherdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	shepherdID, err := uuid.Parse(req.ShepherdID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid shepherd id")
		return
	}

	if err := m.memberService.AssignShepherd(c.Request.Context(), actor, memberID, shepherdID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Shepherd assigned")
}

// UnassignShepherd godoc
// @Summary Remove the shepherd assignment from a member
// @Tags Members
// @Param id path string true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id}/shepherd [delete]
func (m *MemberController) UnassignShepherd(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	if err := m.memberService.UnassignShepherd(c.Request.Context(), actor, memberID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Shepherd unassigned")
}

// IssueSelfServiceLink godoc
// @Summary Issue a one-time self-service update link for a member
// @Tags Members
// @Param id path string true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id}/self-service-link [post]
func (m *MemberController) IssueSelfServiceLink(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	link, err := m.memberService.IssueSelfServiceLink(c.Request.Context(), actor, memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, link, "Self-service link issued")
}

// SelfServiceUpdate godoc
// @Summary Member self-service contact update
// @Description Token-gated endpoint; the token is single use and expires after 24h
// @Tags Members
// @Accept json
// @Param token path string true "Self-service token"
// @Param request body request_models.SelfServiceUpdateRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /self-service/{token} [put]
func (m *MemberController) SelfServiceUpdate(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing token")
		return
	}

	var req request_models.SelfServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.memberService.SelfServiceUpdate(c.Request.Context(), token, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Details updated")
}
