package services

import (
	"github.com/archidesk/access"
	"github.com/archidesk/apperrors"
	"github.com/archidesk/config"
	"github.com/archidesk/dto"
	"github.com/archidesk/models"
	"github.com/archidesk/repositories"
)

// MeetingService handles business logic for meetings
type MeetingService struct {
	cfg         config.Config
	meetingRepo *repositories.MeetingRepository
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
	engine      *access.Engine
}

// NewMeetingService creates a new meeting service instance
func NewMeetingService(cfg config.Config) *MeetingService {
	return &MeetingService{
		cfg:         cfg,
		meetingRepo: repositories.NewMeetingRepository(),
		projectRepo: repositories.NewProjectRepository(),
		userRepo:    repositories.NewUserRepository(),
		engine:      access.NewEngine(),
	}
}

// Create schedules a meeting on a project. Authorization derives from
// the referenced project since the meeting does not exist yet. The
// caller always ends up on the participant list.
func (s *MeetingService) Create(caller access.Caller, req dto.CreateMeetingRequest) (dto.MeetingResponse, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		return dto.MeetingResponse{}, err
	}

	if d := s.engine.Decide(caller, access.MeetingCreate, access.ProjectResource(&project)); !d.Allowed {
		return dto.MeetingResponse{}, d.Err()
	}

	participantIDs := dedupe(append(req.Participants, caller.ID))
	participants, err := s.userRepo.FindByIDs(participantIDs)
	if err != nil {
		return dto.MeetingResponse{}, err
	}
	if len(participants) != len(participantIDs) {
		return dto.MeetingResponse{}, apperrors.Validation("one or more participants do not exist")
	}

	duration := req.Duration
	if duration == 0 {
		duration = 60
	}

	meeting := models.Meeting{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		Duration:     duration,
		Location:     req.Location,
		Status:       models.MeetingStatusScheduled,
		ProjectID:    project.ID,
		CreatorID:    caller.ID,
		Participants: participants,
	}

	created, err := s.meetingRepo.Create(meeting)
	if err != nil {
		return dto.MeetingResponse{}, err
	}

	return dto.NewMeetingResponse(created), nil
}

// List retrieves one page of meetings visible to the caller: admins see
// everything, everyone else the meetings they participate in.
func (s *MeetingService) List(caller access.Caller, projectID, status string, page dto.PageQuery) (dto.MeetingListResponse, error) {
	filter := dto.MeetingFilter{
		ProjectID: projectID,
		Status:    status,
		Page:      page.Normalize(s.cfg.DefaultLimit, s.cfg.MaxLimit),
	}
	if caller.Role != models.RoleAdmin {
		filter.ParticipantID = caller.ID
	}

	meetings, total, err := s.meetingRepo.FindWithFilter(filter)
	if err != nil {
		return dto.MeetingListResponse{}, err
	}

	responses := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, dto.NewMeetingResponse(m))
	}

	return dto.MeetingListResponse{
		Meetings:   responses,
		Pagination: dto.NewPageMeta(total, filter.Page),
	}, nil
}

// GetByID retrieves a single meeting if the caller participates in it
func (s *MeetingService) GetByID(caller access.Caller, id string) (dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		return dto.MeetingResponse{}, err
	}

	if d := s.engine.Decide(caller, access.MeetingRead, access.MeetingResource(&meeting)); !d.Allowed {
		return dto.MeetingResponse{}, d.Err()
	}

	return dto.NewMeetingResponse(meeting), nil
}

// Update applies a partial update to a meeting
func (s *MeetingService) Update(caller access.Caller, id string, req dto.UpdateMeetingRequest) (dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		return dto.MeetingResponse{}, err
	}

	if d := s.engine.Decide(caller, access.MeetingUpdate, access.MeetingResource(&meeting)); !d.Allowed {
		return dto.MeetingResponse{}, d.Err()
	}

	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Description != nil {
		meeting.Description = req.Description
	}
	if req.Date != nil {
		meeting.Date = *req.Date
	}
	if req.Duration != nil {
		meeting.Duration = *req.Duration
	}
	if req.Location != nil {
		meeting.Location = req.Location
	}
	if req.Status != nil {
		status, err := models.ParseMeetingStatus(*req.Status)
		if err != nil {
			return dto.MeetingResponse{}, apperrors.Validation(err.Error())
		}
		meeting.Status = status
	}
	if req.Notes != nil {
		meeting.Notes = req.Notes
	}

	if err := s.meetingRepo.Update(meeting); err != nil {
		return dto.MeetingResponse{}, err
	}

	return dto.NewMeetingResponse(meeting), nil
}

// Delete removes a meeting
func (s *MeetingService) Delete(caller access.Caller, id string) error {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		return err
	}

	if d := s.engine.Decide(caller, access.MeetingDelete, access.MeetingResource(&meeting)); !d.Allowed {
		return d.Err()
	}

	return s.meetingRepo.Delete(id)
}

// AddParticipant adds a user to a meeting's participant set. The add is
// idempotent: adding the same participant twice leaves one occurrence.
func (s *MeetingService) AddParticipant(caller access.Caller, id, participantID string) (dto.MeetingResponse, error) {
	meeting, err := s.meetingRepo.FindByID(id)
	if err != nil {
		return dto.MeetingResponse{}, err
	}

	if d := s.engine.Decide(caller, access.MeetingAddParticipant, access.MeetingResource(&meeting)); !d.Allowed {
		return dto.MeetingResponse{}, d.Err()
	}

	if _, err := s.userRepo.FindByID(participantID); err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return dto.MeetingResponse{}, apperrors.Validation("participant does not exist")
		}
		return dto.MeetingResponse{}, err
	}

	if err := s.meetingRepo.AddParticipant(id, participantID); err != nil {
		return dto.MeetingResponse{}, err
	}

	updated, err := s.meetingRepo.FindByID(id)
	if err != nil {
		return dto.MeetingResponse{}, err
	}

	return dto.NewMeetingResponse(updated), nil
}

// dedupe removes duplicate IDs while preserving order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
