package services

import (
	"github.com/archidesk/access"
	"github.com/archidesk/apperrors"
	"github.com/archidesk/config"
	"github.com/archidesk/dto"
	"github.com/archidesk/models"
	"github.com/archidesk/repositories"
)

// DocumentService handles business logic for project documents
type DocumentService struct {
	cfg          config.Config
	documentRepo *repositories.DocumentRepository
	projectRepo  *repositories.ProjectRepository
	engine       *access.Engine
}

// NewDocumentService creates a new document service instance
func NewDocumentService(cfg config.Config) *DocumentService {
	return &DocumentService{
		cfg:          cfg,
		documentRepo: repositories.NewDocumentRepository(),
		projectRepo:  repositories.NewProjectRepository(),
		engine:       access.NewEngine(),
	}
}

// Create registers an uploaded file against a project. Authorization
// derives from the referenced project.
func (s *DocumentService) Create(caller access.Caller, req dto.CreateDocumentRequest) (dto.DocumentResponse, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if d := s.engine.Decide(caller, access.DocumentCreate, access.ProjectResource(&project)); !d.Allowed {
		return dto.DocumentResponse{}, d.Err()
	}

	docType := models.DocumentTypeOther
	if req.Type != "" {
		docType, err = models.ParseDocumentType(req.Type)
		if err != nil {
			return dto.DocumentResponse{}, apperrors.Validation(err.Error())
		}
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	document := models.Document{
		Name:         req.Name,
		Type:         docType,
		FileURL:      req.FileURL,
		FileSize:     req.FileSize,
		MimeType:     mimeType,
		Description:  req.Description,
		ProjectID:    project.ID,
		UploadedByID: caller.ID,
		Version:      1,
		IsPublic:     req.IsPublic,
	}

	created, err := s.documentRepo.Create(document)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	return dto.NewDocumentResponse(created), nil
}

// List retrieves one page of documents visible to the caller: admins
// see everything, everyone else sees public documents plus those on
// their own projects.
func (s *DocumentService) List(caller access.Caller, projectID, docType string, page dto.PageQuery) (dto.DocumentListResponse, error) {
	filter := dto.DocumentFilter{
		ProjectID: projectID,
		Type:      docType,
		Page:      page.Normalize(s.cfg.DefaultLimit, s.cfg.MaxLimit),
	}
	if caller.Role != models.RoleAdmin {
		filter.AccessibleToID = caller.ID
	}

	documents, total, err := s.documentRepo.FindWithFilter(filter)
	if err != nil {
		return dto.DocumentListResponse{}, err
	}

	responses := make([]dto.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		responses = append(responses, dto.NewDocumentResponse(d))
	}

	return dto.DocumentListResponse{
		Documents:  responses,
		Pagination: dto.NewPageMeta(total, filter.Page),
	}, nil
}

// GetByID retrieves a single document if it is public or the caller
// belongs to its project
func (s *DocumentService) GetByID(caller access.Caller, id string) (dto.DocumentResponse, error) {
	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if d := s.engine.Decide(caller, access.DocumentRead, access.DocumentResource(&document)); !d.Allowed {
		return dto.DocumentResponse{}, d.Err()
	}

	return dto.NewDocumentResponse(document), nil
}

// Update applies a partial update to a document. A changed file URL
// bumps the version by exactly one; nothing else touches the version.
func (s *DocumentService) Update(caller access.Caller, id string, req dto.UpdateDocumentRequest) (dto.DocumentResponse, error) {
	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		return dto.DocumentResponse{}, err
	}

	if d := s.engine.Decide(caller, access.DocumentUpdate, access.DocumentResource(&document)); !d.Allowed {
		return dto.DocumentResponse{}, d.Err()
	}

	if req.Name != nil {
		document.Name = *req.Name
	}
	if req.Type != nil {
		docType, err := models.ParseDocumentType(*req.Type)
		if err != nil {
			return dto.DocumentResponse{}, apperrors.Validation(err.Error())
		}
		document.Type = docType
	}
	if req.FileURL != nil && *req.FileURL != document.FileURL {
		document.FileURL = *req.FileURL
		document.Version++
	}
	if req.FileSize != nil {
		document.FileSize = req.FileSize
	}
	if req.MimeType != nil {
		document.MimeType = *req.MimeType
	}
	if req.Description != nil {
		document.Description = req.Description
	}
	if req.IsPublic != nil {
		document.IsPublic = *req.IsPublic
	}

	if err := s.documentRepo.Update(document); err != nil {
		return dto.DocumentResponse{}, err
	}

	return dto.NewDocumentResponse(document), nil
}

// Delete removes a document
func (s *DocumentService) Delete(caller access.Caller, id string) error {
	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		return err
	}

	if d := s.engine.Decide(caller, access.DocumentDelete, access.DocumentResource(&document)); !d.Allowed {
		return d.Err()
	}

	return s.documentRepo.Delete(id)
}

// Versions returns the version info view of a document, under the same
// read rule as the document itself.
func (s *DocumentService) Versions(caller access.Caller, id string) (dto.DocumentVersionResponse, error) {
	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		return dto.DocumentVersionResponse{}, err
	}

	if d := s.engine.Decide(caller, access.DocumentRead, access.DocumentResource(&document)); !d.Allowed {
		return dto.DocumentVersionResponse{}, d.Err()
	}

	return dto.DocumentVersionResponse{
		ID:         document.ID,
		Name:       document.Name,
		Version:    document.Version,
		UpdatedAt:  document.UpdatedAt,
		UploadedBy: dto.NewUserSummary(document.UploadedBy),
	}, nil
}
