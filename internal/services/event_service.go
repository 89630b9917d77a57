package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"flock/internal/authz"
	"flock/internal/models/db_models"
	"flock/internal/models/request_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

type EventServiceInterface interface {
	List(ctx context.Context, from, to *time.Time) ([]db_models.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*db_models.Event, error)
	Create(ctx context.Context, actor authz.ActingUser, req request_models.CreateEventRequest) (*db_models.Event, error)
	Update(ctx context.Context, actor authz.ActingUser, id uuid.UUID, req request_models.CreateEventRequest) (*db_models.Event, error)
	Delete(ctx context.Context, actor authz.ActingUser, id uuid.UUID) error
	MarkAttendance(ctx context.Context, actor authz.ActingUser, eventID uuid.UUID, req request_models.MarkAttendanceRequest) error
	ListAttendance(ctx context.Context, actor authz.ActingUser, eventID uuid.UUID) ([]db_models.AttendanceRecord, error)
}

type EventService struct {
	eventRepo      repositories.EventRepository
	attendanceRepo repositories.AttendanceRepository
	memberRepo     repositories.MemberRepository
	scopes         ScopeResolver
}

func NewEventService(
	eventRepo repositories.EventRepository,
	attendanceRepo repositories.AttendanceRepository,
	memberRepo repositories.MemberRepository,
	scopes ScopeResolver,
) EventServiceInterface {
	return &EventService{
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
		scopes:         scopes,
	}
}

func (s *EventService) List(ctx context.Context, from, to *time.Time) ([]db_models.Event, error) {
	events, err := s.eventRepo.List(ctx, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id uuid.UUID) (*db_models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	return event, nil
}

func buildEvent(req request_models.CreateEventRequest, event *db_models.Event) error {
	date := utils.ParseFlexibleDate(req.EventDate)
	if date == nil {
		return utils.ErrInvalidEventDate
	}
	event.Title = req.Title
	event.EventDate = *date
	event.MeetingURL = req.MeetingURL
	event.Recurrence = req.Recurrence
	event.Type = db_models.EventTypeService
	if req.Type != "" {
		event.Type = db_models.EventType(req.Type)
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, actor authz.ActingUser, req request_models.CreateEventRequest) (*db_models.Event, error) {
	var event db_models.Event
	if err := buildEvent(req, &event); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Insert(ctx, &event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &event, nil
}

func (s *EventService) Update(ctx context.Context, actor authz.ActingUser, id uuid.UUID, req request_models.CreateEventRequest) (*db_models.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := buildEvent(req, event); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, actor authz.ActingUser, id uuid.UUID) error {
	if actor.Role != authz.RoleAdmin {
		return utils.ErrForbidden
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// MarkAttendance upserts the (member, event) record. The member must be in
// the actor's scope; writes outside scope fail, never no-op.
func (s *EventService) MarkAttendance(ctx context.Context, actor authz.ActingUser, eventID uuid.UUID, req request_models.MarkAttendanceRequest) error {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return err
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return utils.ErrMemberNotFound
	}

	filter, err := s.scopes.Resolve(ctx, actor)
	if err != nil {
		return err
	}
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}
	if !filter.AllowsMember(member.ID, member.CampID) {
		return utils.ErrForbidden
	}

	record := &db_models.AttendanceRecord{
		MemberID: member.ID,
		EventID:  event.ID,
		Status:   db_models.AttendanceStatus(req.Status),
		Notes:    req.Notes,
	}
	if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *EventService) ListAttendance(ctx context.Context, actor authz.ActingUser, eventID uuid.UUID) ([]db_models.AttendanceRecord, error) {
	if _, err := s.Get(ctx, eventID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	filter, err := s.scopes.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	if filter.Kind == authz.ScopeUnrestricted {
		return records, nil
	}

	// Narrow to visible members; other camps' rows stay hidden.
	visible := make([]db_models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		member, err := s.memberRepo.FindByID(ctx, rec.MemberID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if member != nil && filter.AllowsMember(member.ID, member.CampID) {
			visible = append(visible, rec)
		}
	}
	return visible, nil
}
