package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleArchitect Role = "architect"
	RoleClient    Role = "client"
)

// ParseRole validates a role string coming in from the boundary.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleArchitect, RoleClient:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// User represents an admin, architect or client account
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid"`
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Phone    string `json:"phone" gorm:"not null"`
	Password string `json:"-" gorm:"not null"` // Password hash is not exposed in JSON
	Role     Role   `json:"role" gorm:"type:varchar(12);not null;default:'client'"`

	// Profile
	ProfilePic     *string `json:"profilePic" gorm:"default:null"`
	Company        *string `json:"company" gorm:"default:null"`
	Address        *string `json:"address" gorm:"default:null"`
	Specialization *string `json:"specialization" gorm:"default:null"`

	IsActive bool `json:"isActive" gorm:"not null;default:true"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns a UUID so the model works on any SQL backend.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
