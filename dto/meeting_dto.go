package dto

import (
	"time"

	"github.com/archidesk/models"
)

// CreateMeetingRequest represents the payload for scheduling a meeting.
type CreateMeetingRequest struct {
	Title        string    `json:"title" binding:"required,min=3"`
	Description  *string   `json:"description"`
	Date         time.Time `json:"date" binding:"required"`
	Duration     int       `json:"duration" binding:"omitempty,min=1"` // minutes, defaults to 60
	Location     *string   `json:"location"`
	ProjectID    string    `json:"projectId" binding:"required"`
	Participants []string  `json:"participants"`
}

// UpdateMeetingRequest represents a partial meeting update. Nil fields
// are left untouched.
type UpdateMeetingRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=3"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Duration    *int       `json:"duration" binding:"omitempty,min=1"`
	Location    *string    `json:"location"`
	Status      *string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Notes       *string    `json:"notes"`
}

// AddParticipantRequest adds one user to a meeting's participant set.
type AddParticipantRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
}

// MeetingFilter carries the list query. ParticipantID restricts results
// to meetings that user participates in; empty means no participant
// restriction (admin).
type MeetingFilter struct {
	ParticipantID string
	ProjectID     string
	Status        string
	Page          PageQuery
}

// MeetingResponse is the external payload for a meeting, with creator
// and participant references expanded to summary form.
type MeetingResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  *string              `json:"description"`
	Date         time.Time            `json:"date"`
	Duration     int                  `json:"duration"`
	Location     *string              `json:"location"`
	Status       models.MeetingStatus `json:"status"`
	Notes        *string              `json:"notes"`
	Project      ProjectRef           `json:"project"`
	Creator      UserSummary          `json:"creator"`
	Participants []UserSummary        `json:"participants"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// NewMeetingResponse builds the external payload from a meeting record
// with its project, creator and participant associations loaded.
func NewMeetingResponse(m models.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Date:         m.Date,
		Duration:     m.Duration,
		Location:     m.Location,
		Status:       m.Status,
		Notes:        m.Notes,
		Project:      ProjectRef{ID: m.ProjectID, Title: m.Project.Title},
		Creator:      NewUserSummary(m.Creator),
		Participants: NewUserSummaries(m.Participants),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// MeetingListResponse is one page of meetings.
type MeetingListResponse struct {
	Meetings   []MeetingResponse `json:"meetings"`
	Pagination PageMeta          `json:"pagination"`
}
