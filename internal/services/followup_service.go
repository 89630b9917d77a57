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

type FollowUpServiceInterface interface {
	Create(ctx context.Context, actor authz.ActingUser, req request_models.CreateFollowUpRequest) (*db_models.FollowUp, error)
	Complete(ctx context.Context, actor authz.ActingUser, id uuid.UUID, req request_models.CompleteFollowUpRequest) (*db_models.FollowUp, error)
	ListByMember(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) ([]db_models.FollowUp, error)
}

type FollowUpService struct {
	followUpRepo repositories.FollowUpRepository
	memberRepo   repositories.MemberRepository
	scopes       ScopeResolver
}

func NewFollowUpService(
	followUpRepo repositories.FollowUpRepository,
	memberRepo repositories.MemberRepository,
	scopes ScopeResolver,
) FollowUpServiceInterface {
	return &FollowUpService{
		followUpRepo: followUpRepo,
		memberRepo:   memberRepo,
		scopes:       scopes,
	}
}

func (s *FollowUpService) checkMemberScope(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) (*db_models.Member, error) {
	filter, err := s.scopes.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	if !filter.AllowsMember(member.ID, member.CampID) {
		return nil, utils.ErrForbidden
	}
	return member, nil
}

func (s *FollowUpService) Create(ctx context.Context, actor authz.ActingUser, req request_models.CreateFollowUpRequest) (*db_models.FollowUp, error) {
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, utils.ErrMemberNotFound
	}
	member, err := s.checkMemberScope(ctx, actor, memberID)
	if err != nil {
		return nil, err
	}

	followUp := &db_models.FollowUp{
		MemberID: member.ID,
		UserID:   actor.ID,
		Type:     db_models.FollowUpType(req.Type),
		Notes:    req.Notes,
	}

	if req.ScheduledAt != "" {
		scheduled, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			return nil, utils.ErrInvalidEventDate
		}
		followUp.ScheduledAt = &scheduled
	} else {
		// No schedule means the contact already happened.
		now := time.Now()
		followUp.CompletedAt = &now
	}

	if err := s.followUpRepo.Insert(ctx, followUp); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return followUp, nil
}

func (s *FollowUpService) Complete(ctx context.Context, actor authz.ActingUser, id uuid.UUID, req request_models.CompleteFollowUpRequest) (*db_models.FollowUp, error) {
	followUp, err := s.followUpRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if followUp == nil {
		return nil, utils.ErrFollowUpNotFound
	}

	if _, err := s.checkMemberScope(ctx, actor, followUp.MemberID); err != nil {
		return nil, err
	}

	now := time.Now()
	outcome := db_models.FollowUpOutcome(req.Outcome)
	followUp.CompletedAt = &now
	followUp.Outcome = &outcome
	if req.Notes != "" {
		followUp.Notes = req.Notes
	}

	if err := s.followUpRepo.Update(ctx, followUp); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return followUp, nil
}

func (s *FollowUpService) ListByMember(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) ([]db_models.FollowUp, error) {
	if _, err := s.checkMemberScope(ctx, actor, memberID); err != nil {
		return nil, err
	}
	followUps, err := s.followUpRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return followUps, nil
}
