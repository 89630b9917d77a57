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

type CampController struct {
	campService services.CampServiceInterface
}

func NewCampController(campService services.CampServiceInterface) *CampController {
	return &CampController{campService: campService}
}

// List godoc
// @Summary List all camps
// @Tags Camps
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /camps [get]
func (cc *CampController) List(c *gin.Context) {
	camps, err := cc.campService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, camps, "Camps retrieved")
}

// Create godoc
// @Summary Create a camp
// @Tags Camps
// @Accept json
// @Param request body request_models.CreateCampRequest true "Camp payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /camps [post]
func (cc *CampController) Create(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.CreateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	camp, err := cc.campService.Create(c.Request.Context(), actor, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, camp, "Camp created")
}

// SetLeader godoc
// @Summary Set the leader of a camp
// @Tags Camps
// @Accept json
// @Param id path string true "Camp ID"
// @Param request body request_models.SetCampLeaderRequest true "Leader member id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /camps/{id}/leader [put]
func (cc *CampController) SetLeader(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	campID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid camp id")
		return
	}

	var req request_models.SetCampLeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	if err := cc.campService.SetLeader(c.Request.Context(), actor, campID, memberID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Camp leader updated")
}
