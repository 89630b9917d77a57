package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flock/internal/models/request_models"
	"flock/internal/services"
	"flock/pkg/middleware"
	"flock/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{eventService: eventService}
}

// List godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param from query string false "Earliest event date (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Latest event date"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events [get]
func (e *EventController) List(c *gin.Context) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		if t := utils.ParseFlexibleDate(raw); t != nil {
			from = t
		}
	}
	if raw := c.Query("to"); raw != "" {
		if t := utils.ParseFlexibleDate(raw); t != nil {
			to = t
		}
	}

	events, err := e.eventService.List(c.Request.Context(), from, to)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events retrieved")
}

// Get godoc
// @Summary Get one event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (e *EventController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	event, err := e.eventService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event retrieved")
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events [post]
func (e *EventController) Create(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.Create(c.Request.Context(), actor, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event created")
}

// Update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Param id path string true "Event ID"
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id} [put]
func (e *EventController) Update(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event updated")
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (e *EventController) Delete(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	if err := e.eventService.Delete(c.Request.Context(), actor, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted")
}

// MarkAttendance godoc
// @Summary Record attendance for a member at an event
// @Description Idempotent per member/event pair; a second call updates the status
// @Tags Events
// @Accept json
// @Param id path string true "Event ID"
// @Param request body request_models.MarkAttendanceRequest true "Attendance payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id}/attendance [post]
func (e *EventController) MarkAttendance(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req request_models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.eventService.MarkAttendance(c.Request.Context(), actor, eventID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Attendance recorded")
}

// ListAttendance godoc
// @Summary List attendance records for an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /events/{id}/attendance [get]
func (e *EventController) ListAttendance(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	records, err := e.eventService.ListAttendance(c.Request.Context(), actor, eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Attendance retrieved")
}
