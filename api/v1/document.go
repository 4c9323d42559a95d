package v1

import (
	"net/http"

	"github.com/archidesk/config"
	"github.com/archidesk/dto"
	"github.com/archidesk/middleware"
	"github.com/archidesk/services"
	"github.com/gin-gonic/gin"
)

// DocumentController handles document endpoints
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new document controller instance
func NewDocumentController(cfg config.Config) *DocumentController {
	return &DocumentController{
		documentService: services.NewDocumentService(cfg),
	}
}

// RegisterRoutes registers the document routes on an authenticated group
func (ctrl *DocumentController) RegisterRoutes(router *gin.RouterGroup) {
	documents := router.Group("/documents")
	{
		documents.GET("", ctrl.List)
		documents.POST("", ctrl.Create)
		documents.GET("/:id", ctrl.GetByID)
		documents.GET("/:id/versions", ctrl.Versions)
		documents.PUT("/:id", ctrl.Update)
		documents.DELETE("/:id", ctrl.Delete)
	}
}

// List returns one page of documents visible to the caller
func (ctrl *DocumentController) List(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	response, err := ctrl.documentService.List(
		caller,
		c.Query("projectId"),
		c.Query("type"),
		pageQuery(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// Create registers an uploaded file against a project
func (ctrl *DocumentController) Create(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.documentService.Create(caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Document uploaded successfully",
		"data":    response,
	})
}

// GetByID returns a single document
func (ctrl *DocumentController) GetByID(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	response, err := ctrl.documentService.GetByID(caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// Versions returns a document's version info
func (ctrl *DocumentController) Versions(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	response, err := ctrl.documentService.Versions(caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// Update applies a partial update to a document
func (ctrl *DocumentController) Update(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := ctrl.documentService.Update(caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Document updated successfully",
		"data":    response,
	})
}

// Delete removes a document
func (ctrl *DocumentController) Delete(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	if err := ctrl.documentService.Delete(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Document deleted successfully",
	})
}
