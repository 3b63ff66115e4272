package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/okanserdaroglu/campushub/internal/app/models"
	"github.com/okanserdaroglu/campushub/internal/app/models/dto"
	"github.com/okanserdaroglu/campushub/internal/app/repositories"
	"github.com/okanserdaroglu/campushub/internal/pkg/apperrors"
	"github.com/okanserdaroglu/campushub/internal/pkg/helpers"
)

// AnnouncementService handles announcements and campus events
type AnnouncementService struct {
	announcementRepo *repositories.AnnouncementRepository
	eventRepo        *repositories.EventRepository
	logger           zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(
	announcementRepo *repositories.AnnouncementRepository,
	eventRepo *repositories.EventRepository,
	logger zerolog.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		eventRepo:        eventRepo,
		logger:           logger,
	}
}

// CreateAnnouncement posts a notice
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, postedBy int64, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:    req.Title,
		Body:     req.Body,
		Audience: models.Audience(req.Audience),
		PostedBy: postedBy,
	}

	id, err := s.announcementRepo.CreateAnnouncement(ctx, announcement)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("announcementID", id).Str("audience", req.Audience).Msg("Announcement posted")
	return s.announcementRepo.GetAnnouncementByID(ctx, id)
}

// GetAnnouncement retrieves one announcement
func (s *AnnouncementService) GetAnnouncement(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.GetAnnouncementByID(ctx, id)
}

// ListAnnouncementsForRole lists the notices visible to a role. Students
// see ALL and STUDENTS; faculty see ALL and FACULTY; admins see the
// STUDENTS slice plus ALL, which covers everything they post anyway.
func (s *AnnouncementService) ListAnnouncementsForRole(ctx context.Context, role models.Role, page, pageSize int) ([]models.Announcement, dto.PaginationInfo, error) {
	audience := models.AudienceStudents
	if role == models.RoleFaculty {
		audience = models.AudienceFaculty
	}

	announcements, total, err := s.announcementRepo.GetAnnouncementsForAudience(ctx, audience, page, pageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}
	return announcements, helpers.NewPaginationInfo(total, page, pageSize), nil
}

// UpdateAnnouncement edits a notice
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id int64, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	announcement, err := s.announcementRepo.GetAnnouncementByID(ctx, id)
	if err != nil {
		return nil, err
	}

	announcement.Title = req.Title
	announcement.Body = req.Body
	announcement.Audience = models.Audience(req.Audience)

	if err := s.announcementRepo.UpdateAnnouncement(ctx, announcement); err != nil {
		return nil, err
	}
	return s.announcementRepo.GetAnnouncementByID(ctx, id)
}

// DeleteAnnouncement removes a notice
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id int64) error {
	return s.announcementRepo.DeleteAnnouncement(ctx, id)
}

// CreateEvent schedules a campus event
func (s *AnnouncementService) CreateEvent(ctx context.Context, createdBy int64, req *dto.CreateEventRequest) (*models.Event, error) {
	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		return nil, apperrors.NewBadRequestError("startsAt must be RFC 3339")
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return nil, apperrors.NewBadRequestError("endsAt must be RFC 3339")
	}
	if !endsAt.After(startsAt) {
		return nil, apperrors.NewBadRequestError("event must end after it starts")
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		CreatedBy:   createdBy,
	}

	id, err := s.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("eventID", id).Str("title", event.Title).Msg("Event scheduled")
	return s.eventRepo.GetEventByID(ctx, id)
}

// GetEvent retrieves one event
func (s *AnnouncementService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetEventByID(ctx, id)
}

// ListEvents lists events, optionally only upcoming ones
func (s *AnnouncementService) ListEvents(ctx context.Context, upcomingOnly bool) ([]models.Event, error) {
	var from *time.Time
	if upcomingOnly {
		now := time.Now()
		from = &now
	}
	return s.eventRepo.GetEvents(ctx, from)
}

// DeleteEvent removes an event
func (s *AnnouncementService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.DeleteEvent(ctx, id)
}
