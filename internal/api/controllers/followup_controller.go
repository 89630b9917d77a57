package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flock/internal/models/request_models"
	"flock/internal/services"
	"flock/pkg/middleware"
	"flock/pkg/utils"
)

type FollowUpController struct {
	followUpService services.FollowUpServiceInterface
}

func NewFollowUpController(followUpService services.FollowUpServiceInterface) *FollowUpController {
	return &FollowUpController{followUpService: followUpService}
}

// Create godoc
// @Summary Log or schedule a follow-up for a member
// @Tags FollowUps
// @Accept json
// @Param request body request_models.CreateFollowUpRequest true "Follow-up payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /followups [post]
func (f *FollowUpController) Create(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.CreateFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	followUp, err := f.followUpService.Create(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, followUp, "Follow-up created")
}

// Complete godoc
// @Summary Complete a scheduled follow-up
// @Tags FollowUps
// @Accept json
// @Param id path string true "Follow-up ID"
// @Param request body request_models.CompleteFollowUpRequest true "Outcome payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /followups/{id}/complete [put]
func (f *FollowUpController) Complete(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid follow-up id")
		return
	}

	var req request_models.CompleteFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	followUp, err := f.followUpService.Complete(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, followUp, "Follow-up completed")
}

// ListByMember godoc
// @Summary List follow-ups for a member
// @Tags FollowUps
// @Param id path string true "Member ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /members/{id}/followups [get]
func (f *FollowUpController) ListByMember(c *gin.Context) {
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

	followUps, err := f.followUpService.ListByMember(c.Request.Context(), actor, memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, followUps, "Follow-ups retrieved")
}
