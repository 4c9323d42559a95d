package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingStatus represents the scheduling status of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// ParseMeetingStatus validates a status string coming in from the boundary.
func ParseMeetingStatus(s string) (MeetingStatus, error) {
	switch MeetingStatus(s) {
	case MeetingStatusScheduled, MeetingStatusCompleted, MeetingStatusCancelled:
		return MeetingStatus(s), nil
	}
	return "", fmt.Errorf("unknown meeting status: %q", s)
}

// Meeting represents a meeting on a project between architect, client
// and any additional participants
type Meeting struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string        `json:"title" gorm:"not null"`
	Description *string       `json:"description" gorm:"default:null"`
	Date        time.Time     `json:"date" gorm:"not null;index"`
	Duration    int           `json:"duration" gorm:"not null;default:60"` // minutes
	Location    *string       `json:"location" gorm:"default:null"`
	Status      MeetingStatus `json:"status" gorm:"type:varchar(12);not null;default:'scheduled';index"`
	Notes       *string       `json:"notes" gorm:"default:null"`

	ProjectID string  `json:"projectId" gorm:"not null;index"`
	Project   Project `json:"project" gorm:"foreignKey:ProjectID"`
	CreatorID string  `json:"creatorId" gorm:"not null;index"`
	Creator   User    `json:"creator" gorm:"foreignKey:CreatorID"`

	Participants []User `json:"participants" gorm:"many2many:meeting_participants"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate assigns a UUID so the model works on any SQL backend.
func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// HasParticipant reports whether the given user is on the participant list.
func (m *Meeting) HasParticipant(userID string) bool {
	for _, p := range m.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}
