package repositories

import (
	"errors"

	"github.com/archidesk/apperrors"
	"github.com/archidesk/database"
	"github.com/archidesk/dto"
	"github.com/archidesk/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct{}

// NewDocumentRepository creates a new document repository instance
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// FindByID retrieves a document with its project and uploader loaded
func (r *DocumentRepository) FindByID(id string) (models.Document, error) {
	var document models.Document
	result := database.DB.
		Preload("Project").
		Preload("UploadedBy").
		First(&document, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return document, apperrors.NotFound("document not found")
	}
	return document, result.Error
}

// Create inserts a new document into the database
func (r *DocumentRepository) Create(document models.Document) (models.Document, error) {
	if err := database.DB.Create(&document).Error; err != nil {
		return document, err
	}
	return r.FindByID(document.ID)
}

// Update saves changes to a document's own columns; loaded associations
// are left alone.
func (r *DocumentRepository) Update(document models.Document) error {
	return database.DB.Omit(clause.Associations).Save(&document).Error
}

// Delete soft-deletes a document
func (r *DocumentRepository) Delete(id string) error {
	return database.DB.Delete(&models.Document{}, "id = ?", id).Error
}

// FindWithFilter retrieves one page of documents matching the filter,
// newest first. AccessibleToID restricts results to public documents
// plus those on projects where the user is architect or client; the
// role-derived choice of that restriction is resolved by the caller.
func (r *DocumentRepository) FindWithFilter(filter dto.DocumentFilter) ([]models.Document, int64, error) {
	var documents []models.Document
	var totalCount int64

	db := database.DB.Model(&models.Document{})

	if filter.AccessibleToID != "" {
		db = db.
			Joins("JOIN projects ON projects.id = documents.project_id").
			Where("(documents.is_public = ? OR projects.architect_id = ? OR projects.client_id = ?)",
				true, filter.AccessibleToID, filter.AccessibleToID)
	}
	if filter.ProjectID != "" {
		db = db.Where("documents.project_id = ?", filter.ProjectID)
	}
	if filter.Type != "" {
		db = db.Where("documents.type = ?", filter.Type)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := db.
		Preload("Project").
		Preload("UploadedBy").
		Order("documents.created_at DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset()).
		Find(&documents).Error
	if err != nil {
		return nil, 0, err
	}

	return documents, totalCount, nil
}
