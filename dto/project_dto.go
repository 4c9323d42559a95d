package dto

import (
	"time"

	"github.com/archidesk/models"
)

// CreateProjectRequest represents the payload for creating a project.
// ArchitectID is optional: architects create projects for themselves,
// admins may create on behalf of any architect.
type CreateProjectRequest struct {
	Title       string     `json:"title" binding:"required,min=3"`
	Description string     `json:"description" binding:"required,min=10"`
	ClientID    string     `json:"clientId" binding:"required"`
	ArchitectID string     `json:"architectId"`
	Status      string     `json:"status" binding:"omitempty,oneof=planning licensed in_progress completed on_hold"`
	Phase       string     `json:"phase" binding:"omitempty,oneof=planning licensing construction completion"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Budget      *float64   `json:"budget"`
	Location    *string    `json:"location"`
}

// UpdateProjectRequest represents a partial project update. Nil fields
// are left untouched.
type UpdateProjectRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=3"`
	Description *string    `json:"description" binding:"omitempty,min=10"`
	Status      *string    `json:"status" binding:"omitempty,oneof=planning licensed in_progress completed on_hold"`
	Phase       *string    `json:"phase" binding:"omitempty,oneof=planning licensing construction completion"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Budget      *float64   `json:"budget"`
	Location    *string    `json:"location"`
}

// ProjectFilter carries the list query after the role-derived implicit
// filter has been resolved by the service. The repository itself stays
// role-agnostic and only executes what it is given.
type ProjectFilter struct {
	ArchitectID string // non-empty: only projects with this architect
	ClientID    string // non-empty: only projects with this client
	Status      string
	Phase       string
	Search      string
	Page        PageQuery
}

// ProjectResponse is the external payload for a project, with the
// architect and client references expanded to summary form.
type ProjectResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	Phase       models.ProjectPhase  `json:"phase"`
	Architect   UserSummary          `json:"architect"`
	Client      UserSummary          `json:"client"`
	StartDate   *time.Time           `json:"startDate"`
	EndDate     *time.Time           `json:"endDate"`
	Budget      *float64             `json:"budget"`
	Location    *string              `json:"location"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// NewProjectResponse builds the external payload from a project record
// with its architect and client associations loaded.
func NewProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		Phase:       p.Phase,
		Architect:   NewUserSummary(p.Architect),
		Client:      NewUserSummary(p.Client),
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Budget:      p.Budget,
		Location:    p.Location,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectListResponse is one page of projects.
type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination PageMeta          `json:"pagination"`
}
