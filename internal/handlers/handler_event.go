package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/orghub/org_management_app/internal/core/ports/services"
	"github.com/orghub/org_management_app/internal/dto"
	"github.com/orghub/org_management_app/internal/middleware"
)

// eventHandler handles HTTP requests for organization events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEventByID)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
		events.POST("/bulk-delete", middleware.RequireAdmin(), h.bulkDeleteEvents)
		events.POST("/:id/submit", h.submitEvent)
	}
}

// createEvent godoc
// @Summary Create an event
// @Description Creates a new event in DRAFT status. The end date must not precede the start date.
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// getEventByID godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *eventHandler) getEventByID(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Param status query string false "Approval-state status filter"
// @Param search query string false "Matches title and location"
// @Param startDate query string false "Earliest start date (YYYY-MM-DD)"
// @Param endDate query string false "Latest start date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ListEventsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindQueryError(c, err)
		return
	}

	resp, err := h.eventService.ListEvents(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// updateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Event is pending approval"
// @Security BearerAuth
// @Router /events/{id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondServiceError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// bulkDeleteEvents godoc
// @Summary Bulk delete events
// @Tags events
// @Accept json
// @Param ids body dto.BulkDeleteRequest true "Event ids"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/bulk-delete [post]
func (h *eventHandler) bulkDeleteEvents(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindJSONError(c, err)
		return
	}
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	if err := h.eventService.BulkDeleteEvents(c.Request.Context(), req.IDs, actor); err != nil {
		respondServiceError(c, err, "Failed to bulk delete events")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitEvent godoc
// @Summary Submit an event for approval
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 201 {object} dto.ApprovalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Event already pending or approved"
// @Security BearerAuth
// @Router /events/{id}/submit [post]
func (h *eventHandler) submitEvent(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}
	approval, err := h.eventService.SubmitEventForApproval(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to submit event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToApprovalResponse(approval))
}
