package v1

import (
	"net/http"

	"github.com/archidesk/config"
	"github.com/archidesk/dto"
	"github.com/archidesk/middleware"
	"github.com/archidesk/services"
	"github.com/gin-gonic/gin"
)

// MeetingController handles meeting endpoints
type MeetingController struct {
	meetingService *services.MeetingService
}

// NewMeetingController creates a new meeting controller instance
func NewMeetingController(cfg config.Config) *MeetingController {
	return &MeetingController{
		meetingService: services.NewMeetingService(cfg),
	}
}

// RegisterRoutes registers the meeting routes on an authenticated group
func (ctrl *MeetingController) RegisterRoutes(router *gin.RouterGroup) {
	meetings := router.Group("/meetings")
	{
		meetings.GET("", ctrl.List)
		meetings.POST("", ctrl.Create)
		meetings.GET("/:id", ctrl.GetByID)
		meetings.PUT("/:id", ctrl.Update)
		meetings.DELETE("/:id", ctrl.Delete)
		meetings.POST("/:id/participants", ctrl.AddParticipant)
	}
}

// List returns one page of meetings the caller participates in
func (ctrl *MeetingController) List(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	response, err := ctrl.meetingService.List(
		caller,
		c.Query("projectId"),
		c.Query("status"),
		pageQuery(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// Create schedules a new meeting
func (ctrl *MeetingController) Create(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.meetingService.Create(caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Meeting created successfully",
		"data":    response,
	})
}

// GetByID returns a single meeting
func (ctrl *MeetingController) GetByID(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	response, err := ctrl.meetingService.GetByID(caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// Update applies a partial update to a meeting
func (ctrl *MeetingController) Update(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.meetingService.Update(caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meeting updated successfully",
		"data":    response,
	})
}

// Delete removes a meeting
func (ctrl *MeetingController) Delete(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	if err := ctrl.meetingService.Delete(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Meeting deleted successfully",
	})
}

// AddParticipant adds one user to a meeting's participant set
func (ctrl *MeetingController) AddParticipant(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.meetingService.AddParticipant(caller, c.Param("id"), req.ParticipantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Participant added",
		"data":    response,
	})
}
