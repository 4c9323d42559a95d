package services

import (
	"github.com/archidesk/access"
	"github.com/archidesk/apperrors"
	"github.com/archidesk/config"
	"github.com/archidesk/dto"
	"github.com/archidesk/models"
	"github.com/archidesk/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	cfg         config.Config
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
	engine      *access.Engine
}

// NewProjectService creates a new project service instance
func NewProjectService(cfg config.Config) *ProjectService {
	return &ProjectService{
		cfg:         cfg,
		projectRepo: repositories.NewProjectRepository(),
		userRepo:    repositories.NewUserRepository(),
		engine:      access.NewEngine(),
	}
}

// Create creates a project. Architects create projects for themselves;
// admins must name the architect. Both the architect and the client
// references are validated against their required roles.
func (s *ProjectService) Create(caller access.Caller, req dto.CreateProjectRequest) (dto.ProjectResponse, error) {
	if d := s.engine.Decide(caller, access.ProjectCreate, access.NoResource()); !d.Allowed {
		return dto.ProjectResponse{}, d.Err()
	}

	architectID := req.ArchitectID
	if caller.Role == models.RoleArchitect {
		architectID = caller.ID
	}
	if architectID == "" {
		return dto.ProjectResponse{}, apperrors.Validation("architectId is required")
	}

	architect, err := s.userRepo.FindByID(architectID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return dto.ProjectResponse{}, apperrors.Validation("architect not found")
		}
		return dto.ProjectResponse{}, err
	}
	if architect.Role != models.RoleArchitect {
		return dto.ProjectResponse{}, apperrors.Validation("assigned architect does not have the architect role")
	}

	client, err := s.userRepo.FindByID(req.ClientID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return dto.ProjectResponse{}, apperrors.Validation("client not found")
		}
		return dto.ProjectResponse{}, err
	}
	if client.Role != models.RoleClient {
		return dto.ProjectResponse{}, apperrors.Validation("assigned client does not have the client role")
	}

	status := models.ProjectStatusPlanning
	if req.Status != "" {
		status, err = models.ParseProjectStatus(req.Status)
		if err != nil {
			return dto.ProjectResponse{}, apperrors.Validation(err.Error())
		}
	}

	phase := models.ProjectPhasePlanning
	if req.Phase != "" {
		phase, err = models.ParseProjectPhase(req.Phase)
		if err != nil {
			return dto.ProjectResponse{}, apperrors.Validation(err.Error())
		}
	}

	project := models.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Phase:       phase,
		ArchitectID: architect.ID,
		ClientID:    client.ID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Location:    req.Location,
	}

	created, err := s.projectRepo.Create(project)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	return dto.NewProjectResponse(created), nil
}

// List retrieves one page of projects visible to the caller: admins see
// everything, architects their own projects, clients theirs.
func (s *ProjectService) List(caller access.Caller, status, phase, search string, page dto.PageQuery) (dto.ProjectListResponse, error) {
	filter := dto.ProjectFilter{
		Status: status,
		Phase:  phase,
		Search: search,
		Page:   page.Normalize(s.cfg.DefaultLimit, s.cfg.MaxLimit),
	}

	switch caller.Role {
	case models.RoleAdmin:
		// no restriction
	case models.RoleArchitect:
		filter.ArchitectID = caller.ID
	default:
		filter.ClientID = caller.ID
	}

	projects, total, err := s.projectRepo.FindWithFilter(filter)
	if err != nil {
		return dto.ProjectListResponse{}, err
	}

	responses := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, dto.NewProjectResponse(p))
	}

	return dto.ProjectListResponse{
		Projects:   responses,
		Pagination: dto.NewPageMeta(total, filter.Page),
	}, nil
}

// GetByID retrieves a single project if the caller may read it
func (s *ProjectService) GetByID(caller access.Caller, id string) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	if d := s.engine.Decide(caller, access.ProjectRead, access.ProjectResource(&project)); !d.Allowed {
		return dto.ProjectResponse{}, d.Err()
	}

	return dto.NewProjectResponse(project), nil
}

// Update applies a partial update to a project
func (s *ProjectService) Update(caller access.Caller, id string, req dto.UpdateProjectRequest) (dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	if d := s.engine.Decide(caller, access.ProjectUpdate, access.ProjectResource(&project)); !d.Allowed {
		return dto.ProjectResponse{}, d.Err()
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		status, err := models.ParseProjectStatus(*req.Status)
		if err != nil {
			return dto.ProjectResponse{}, apperrors.Validation(err.Error())
		}
		project.Status = status
	}
	if req.Phase != nil {
		phase, err := models.ParseProjectPhase(*req.Phase)
		if err != nil {
			return dto.ProjectResponse{}, apperrors.Validation(err.Error())
		}
		project.Phase = phase
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}
	if req.Location != nil {
		project.Location = req.Location
	}

	if err := s.projectRepo.Update(project); err != nil {
		return dto.ProjectResponse{}, err
	}

	return dto.NewProjectResponse(project), nil
}

// Delete removes a project together with its meetings and documents
func (s *ProjectService) Delete(caller access.Caller, id string) error {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return err
	}

	if d := s.engine.Decide(caller, access.ProjectDelete, access.ProjectResource(&project)); !d.Allowed {
		return d.Err()
	}

	return s.projectRepo.Delete(id)
}
