package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentType represents the kind of file attached to a project
type DocumentType string

const (
	DocumentTypeBlueprint DocumentType = "blueprint"
	DocumentTypeLicense   DocumentType = "license"
	DocumentTypeContract  DocumentType = "contract"
	DocumentTypeReport    DocumentType = "report"
	DocumentTypeOther     DocumentType = "other"
)

// ParseDocumentType validates a type string coming in from the boundary.
func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocumentTypeBlueprint, DocumentTypeLicense, DocumentTypeContract,
		DocumentTypeReport, DocumentTypeOther:
		return DocumentType(s), nil
	}
	return "", fmt.Errorf("unknown document type: %q", s)
}

// Document represents a file uploaded against a project
type Document struct {
	ID          string       `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string       `json:"name" gorm:"not null"`
	Type        DocumentType `json:"type" gorm:"type:varchar(12);not null;default:'other';index"`
	FileURL     string       `json:"fileUrl" gorm:"not null"`
	FileSize    *int64       `json:"fileSize" gorm:"default:null"` // bytes
	MimeType    string       `json:"mimeType" gorm:"not null;default:'application/octet-stream'"`
	Description *string      `json:"description" gorm:"default:null"`

	ProjectID    string  `json:"projectId" gorm:"not null;index"`
	Project      Project `json:"project" gorm:"foreignKey:ProjectID"`
	UploadedByID string  `json:"uploadedById" gorm:"not null;index"`
	UploadedBy   User    `json:"uploadedBy" gorm:"foreignKey:UploadedByID"`

	Version  int  `json:"version" gorm:"not null;default:1"`
	IsPublic bool `json:"isPublic" gorm:"not null;default:false"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns a UUID so the model works on any SQL backend.
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
