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

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project with its architect and client loaded
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.
		Preload("Architect").
		Preload("Client").
		First(&project, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return project, apperrors.NotFound("project not found")
	}
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	if err := database.DB.Create(&project).Error; err != nil {
		return project, err
	}
	return r.FindByID(project.ID)
}

// Update saves changes to a project's own columns; loaded associations
// are left alone.
func (r *ProjectRepository) Update(project models.Project) error {
	return database.DB.Omit(clause.Associations).Save(&project).Error
}

// Delete soft-deletes a project and everything scheduled or uploaded
// against it, in one transaction.
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Meeting{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// FindWithFilter retrieves one page of projects matching the filter.
// The filter is taken at face value; role-derived restrictions are
// resolved by the caller.
func (r *ProjectRepository) FindWithFilter(filter dto.ProjectFilter) ([]models.Project, int64, error) {
	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if filter.ArchitectID != "" {
		db = db.Where("architect_id = ?", filter.ArchitectID)
	}
	if filter.ClientID != "" {
		db = db.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Phase != "" {
		db = db.Where("phase = ?", filter.Phase)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("(title LIKE ? OR description LIKE ?)", pattern, pattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := db.
		Preload("Architect").
		Preload("Client").
		Order("created_at DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset()).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}
