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

type MessagingController struct {
	messagingService services.MessagingServiceInterface
}

func NewMessagingController(messagingService services.MessagingServiceInterface) *MessagingController {
	return &MessagingController{messagingService: messagingService}
}

// SendSMS godoc
// @Summary Send an SMS to a member
// @Tags Messaging
// @Accept json
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages/sms [post]
func (m *MessagingController) SendSMS(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.messagingService.SendSMS(c.Request.Context(), actor, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "SMS sent")
}

// SendEmail godoc
// @Summary Send an email to a member
// @Tags Messaging
// @Accept json
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages/email [post]
func (m *MessagingController) SendEmail(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.messagingService.SendEmail(c.Request.Context(), actor, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Email sent")
}

// WhatsAppLink godoc
// @Summary Build a wa.me deep link for a member
// @Tags Messaging
// @Accept json
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages/whatsapp-link [post]
func (m *MessagingController) WhatsAppLink(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
		return
	}

	link, err := m.messagingService.WhatsAppLink(c.Request.Context(), actor, memberID, req.Body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"link": link}, "WhatsApp link built")
}

// Draft godoc
// @Summary Draft a message with AI assistance
// @Tags Messaging
// @Accept json
// @Param request body request_models.DraftMessageRequest true "Draft parameters"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages/draft [post]
func (m *MessagingController) Draft(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.DraftMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	draft, err := m.messagingService.Draft(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"draft": draft}, "Draft generated")
}
