package dto

import (
	"time"

	"github.com/archidesk/models"
)

// CreateDocumentRequest represents the payload for registering an
// uploaded file against a project.
type CreateDocumentRequest struct {
	Name        string  `json:"name" binding:"required,min=3"`
	Type        string  `json:"type" binding:"omitempty,oneof=blueprint license contract report other"`
	FileURL     string  `json:"fileUrl" binding:"required"`
	FileSize    *int64  `json:"fileSize"`
	MimeType    string  `json:"mimeType"`
	Description *string `json:"description"`
	ProjectID   string  `json:"projectId" binding:"required"`
	IsPublic    bool    `json:"isPublic"`
}

// UpdateDocumentRequest represents a partial document update. Nil
// fields are left untouched. A changed FileURL bumps the version.
type UpdateDocumentRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3"`
	Type        *string `json:"type" binding:"omitempty,oneof=blueprint license contract report other"`
	FileURL     *string `json:"fileUrl"`
	FileSize    *int64  `json:"fileSize"`
	MimeType    *string `json:"mimeType"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

// DocumentFilter carries the list query after the role-derived implicit
// filter has been resolved by the service. AccessibleToID restricts
// results to documents the user may read (their projects, or public);
// empty means no restriction (admin).
type DocumentFilter struct {
	AccessibleToID string
	ProjectID      string
	Type           string
	Page           PageQuery
}

// DocumentResponse is the external payload for a document, with the
// uploader reference expanded to summary form.
type DocumentResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        models.DocumentType `json:"type"`
	FileURL     string              `json:"fileUrl"`
	FileSize    *int64              `json:"fileSize"`
	MimeType    string              `json:"mimeType"`
	Description *string             `json:"description"`
	Project     ProjectRef          `json:"project"`
	UploadedBy  UserSummary         `json:"uploadedBy"`
	Version     int                 `json:"version"`
	IsPublic    bool                `json:"isPublic"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// NewDocumentResponse builds the external payload from a document
// record with its project and uploader associations loaded.
func NewDocumentResponse(d models.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		FileURL:     d.FileURL,
		FileSize:    d.FileSize,
		MimeType:    d.MimeType,
		Description: d.Description,
		Project:     ProjectRef{ID: d.ProjectID, Title: d.Project.Title},
		UploadedBy:  NewUserSummary(d.UploadedBy),
		Version:     d.Version,
		IsPublic:    d.IsPublic,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// DocumentListResponse is one page of documents.
type DocumentListResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Pagination PageMeta           `json:"pagination"`
}

// DocumentVersionResponse is the version info view of a document.
type DocumentVersionResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Version    int         `json:"version"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	UploadedBy UserSummary `json:"uploadedBy"`
}
