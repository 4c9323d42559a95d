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

// MeetingRepository handles database operations for meetings
type MeetingRepository struct{}

// NewMeetingRepository creates a new meeting repository instance
func NewMeetingRepository() *MeetingRepository {
	return &MeetingRepository{}
}

// FindByID retrieves a meeting with its project, creator and
// participants loaded
func (r *MeetingRepository) FindByID(id string) (models.Meeting, error) {
	var meeting models.Meeting
	result := database.DB.
		Preload("Project").
		Preload("Creator").
		Preload("Participants").
		First(&meeting, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return meeting, apperrors.NotFound("meeting not found")
	}
	return meeting, result.Error
}

// Create inserts a new meeting together with its participant rows
func (r *MeetingRepository) Create(meeting models.Meeting) (models.Meeting, error) {
	if err := database.DB.Create(&meeting).Error; err != nil {
		return meeting, err
	}
	return r.FindByID(meeting.ID)
}

// Update saves changes to a meeting's own columns; the participant set
// is managed exclusively through AddParticipant.
func (r *MeetingRepository) Update(meeting models.Meeting) error {
	return database.DB.Omit(clause.Associations).Save(&meeting).Error
}

// Delete soft-deletes a meeting
func (r *MeetingRepository) Delete(id string) error {
	return database.DB.Delete(&models.Meeting{}, "id = ?", id).Error
}

// AddParticipant adds a user to a meeting's participant set. The insert
// is a single conditional statement so concurrent adds of the same
// participant cannot produce duplicates or lost updates.
func (r *MeetingRepository) AddParticipant(meetingID, userID string) error {
	return database.DB.Exec(
		"INSERT INTO meeting_participants (meeting_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		meetingID, userID,
	).Error
}

// FindWithFilter retrieves one page of meetings matching the filter,
// newest first. The filter is taken at face value; role-derived
// restrictions are resolved by the caller.
func (r *MeetingRepository) FindWithFilter(filter dto.MeetingFilter) ([]models.Meeting, int64, error) {
	var meetings []models.Meeting
	var totalCount int64

	db := database.DB.Model(&models.Meeting{})

	if filter.ParticipantID != "" {
		db = db.
			Joins("JOIN meeting_participants mp ON mp.meeting_id = meetings.id").
			Where("mp.user_id = ?", filter.ParticipantID)
	}
	if filter.ProjectID != "" {
		db = db.Where("meetings.project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		db = db.Where("meetings.status = ?", filter.Status)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := db.
		Preload("Project").
		Preload("Creator").
		Preload("Participants").
		Order("meetings.date DESC").
		Limit(filter.Page.Limit).
		Offset(filter.Page.Offset()).
		Find(&meetings).Error
	if err != nil {
		return nil, 0, err
	}

	return meetings, totalCount, nil
}
