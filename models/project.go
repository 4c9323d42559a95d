package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusLicensed   ProjectStatus = "licensed"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

// ParseProjectStatus validates a status string coming in from the boundary.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectStatusPlanning, ProjectStatusLicensed, ProjectStatusInProgress,
		ProjectStatusCompleted, ProjectStatusOnHold:
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf("unknown project status: %q", s)
}

// ProjectPhase represents the work phase a project is in
type ProjectPhase string

const (
	ProjectPhasePlanning     ProjectPhase = "planning"
	ProjectPhaseLicensing    ProjectPhase = "licensing"
	ProjectPhaseConstruction ProjectPhase = "construction"
	ProjectPhaseCompletion   ProjectPhase = "completion"
)

// ParseProjectPhase validates a phase string coming in from the boundary.
func ParseProjectPhase(s string) (ProjectPhase, error) {
	switch ProjectPhase(s) {
	case ProjectPhasePlanning, ProjectPhaseLicensing, ProjectPhaseConstruction,
		ProjectPhaseCompletion:
		return ProjectPhase(s), nil
	}
	return "", fmt.Errorf("unknown project phase: %q", s)
}

// Project represents an architecture project linking one architect with one client
type Project struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string        `json:"title" gorm:"not null"`
	Description string        `json:"description" gorm:"not null"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'planning'"`
	Phase       ProjectPhase  `json:"phase" gorm:"type:varchar(20);not null;default:'planning'"`

	ArchitectID string `json:"architectId" gorm:"not null;index"`
	Architect   User   `json:"architect" gorm:"foreignKey:ArchitectID"`
	ClientID    string `json:"clientId" gorm:"not null;index"`
	Client      User   `json:"client" gorm:"foreignKey:ClientID"`

	StartDate *time.Time `json:"startDate" gorm:"default:null"`
	EndDate   *time.Time `json:"endDate" gorm:"default:null"`
	Budget    *float64   `json:"budget" gorm:"default:null"`
	Location  *string    `json:"location" gorm:"default:null"`

	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:ProjectID"`
	Meetings  []Meeting  `json:"meetings,omitempty" gorm:"foreignKey:ProjectID"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns a UUID so the model works on any SQL backend.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
