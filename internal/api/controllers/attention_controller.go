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

type AttentionController struct {
	attentionService services.AttentionServiceInterface
}

func NewAttentionController(attentionService services.AttentionServiceInterface) *AttentionController {
	return &AttentionController{attentionService: attentionService}
}

// List godoc
// @Summary Members needing attention
// @Description Inactive members first, then overdue follow-ups, capped per list
// @Tags Attention
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /attention [get]
func (a *AttentionController) List(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	items, err := a.attentionService.GetMembersNeedingAttention(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Attention items retrieved")
}

// Dismiss godoc
// @Summary Dismiss one attention item
// @Description For "overdue" the reference is the follow-up id; for "inactive" the member id
// @Tags Attention
// @Accept json
// @Param request body request_models.DismissRequest true "Dismiss payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /attention/dismiss [post]
func (a *AttentionController) Dismiss(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.DismissRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	referenceID, err := uuid.Parse(req.ReferenceID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid reference id")
		return
	}

	if err := a.attentionService.DismissActionItem(c.Request.Context(), actor, req.Type, referenceID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attention item dismissed")
}
