package v1

import (
	"net/http"
	"strconv"

	"github.com/archidesk/config"
	"github.com/archidesk/dto"
	"github.com/archidesk/middleware"
	"github.com/archidesk/services"
	"github.com/gin-gonic/gin"
)

// ProjectController handles project endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller instance
func NewProjectController(cfg config.Config) *ProjectController {
	return &ProjectController{
		projectService: services.NewProjectService(cfg),
	}
}

// RegisterRoutes registers the project routes on an authenticated group
func (ctrl *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", ctrl.List)
		projects.POST("", ctrl.Create)
		projects.GET("/:id", ctrl.GetByID)
		projects.PUT("/:id", ctrl.Update)
		projects.DELETE("/:id", ctrl.Delete)
	}
}

// List returns one page of projects visible to the caller
func (ctrl *ProjectController) List(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	response, err := ctrl.projectService.List(
		caller,
		c.Query("status"),
		c.Query("phase"),
		c.Query("search"),
		pageQuery(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// Create creates a new project
func (ctrl *ProjectController) Create(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.projectService.Create(caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": response})
}

// GetByID returns a single project
func (ctrl *ProjectController) GetByID(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	response, err := ctrl.projectService.GetByID(caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// Update applies a partial update to a project
func (ctrl *ProjectController) Update(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.projectService.Update(caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// Delete removes a project
func (ctrl *ProjectController) Delete(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	if err := ctrl.projectService.Delete(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// pageQuery parses the shared page/limit query parameters. Values are
// normalized against deployment limits inside the services.
func pageQuery(c *gin.Context) dto.PageQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		limit = 0
	}
	return dto.PageQuery{Page: page, Limit: limit}
}
