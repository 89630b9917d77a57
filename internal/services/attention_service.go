package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flock/internal/authz"
	"flock/internal/models/db_models"
	"flock/internal/models/response_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

const (
	// A member counts as inactive after four weeks without a Present
	// attendance, unless someone reached them within the last week.
	inactivityWindow = 28 * 24 * time.Hour
	contactSnooze    = 7 * 24 * time.Hour

	// Each list is a fixed page; there is no load-more.
	attentionPageSize = 5
)

type AttentionServiceInterface interface {
	GetMembersNeedingAttention(ctx context.Context, actor authz.ActingUser) ([]response_models.AttentionItem, error)
	DismissActionItem(ctx context.Context, actor authz.ActingUser, itemType string, referenceID uuid.UUID) error
}

type AttentionService struct {
	attentionRepo repositories.AttentionRepository
	followUpRepo  repositories.FollowUpRepository
	memberRepo    repositories.MemberRepository
	scopes        ScopeResolver
	now           func() time.Time
}

func NewAttentionService(
	attentionRepo repositories.AttentionRepository,
	followUpRepo repositories.FollowUpRepository,
	memberRepo repositories.MemberRepository,
	scopes ScopeResolver,
) AttentionServiceInterface {
	return &AttentionService{
		attentionRepo: attentionRepo,
		followUpRepo:  followUpRepo,
		memberRepo:    memberRepo,
		scopes:        scopes,
		now:           time.Now,
	}
}

// GetMembersNeedingAttention returns the inactive list followed by the
// overdue follow-up list. The two queries are independent; neither result
// affects the other.
func (s *AttentionService) GetMembersNeedingAttention(ctx context.Context, actor authz.ActingUser) ([]response_models.AttentionItem, error) {
	filter, err := s.scopes.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := s.now()
	attendanceCutoff := now.Add(-inactivityWindow)
	contactCutoff := now.Add(-contactSnooze)

	inactive, err := s.attentionRepo.InactiveMembers(ctx, filter, attendanceCutoff, contactCutoff, attentionPageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	overdue, err := s.attentionRepo.OverdueFollowUps(ctx, filter, now, attentionPageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.AttentionItem, 0, len(inactive)+len(overdue))

	for _, row := range inactive {
		item := response_models.AttentionItem{
			MemberID:    row.MemberID,
			Type:        response_models.AttentionTypeInactive,
			ReferenceID: row.MemberID,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
		}
		if row.LastSeen != nil {
			days := int(now.Sub(*row.LastSeen).Hours() / 24)
			item.DaysOverdue = &days
			item.Reason = fmt.Sprintf("No attendance in %d days", days)
		} else {
			item.Reason = "Never attended an event"
		}
		items = append(items, item)
	}

	for _, row := range overdue {
		days := int(now.Sub(row.ScheduledAt).Hours() / 24)
		items = append(items, response_models.AttentionItem{
			MemberID:    row.MemberID,
			Type:        response_models.AttentionTypeOverdue,
			ReferenceID: row.FollowUpID,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Reason:      fmt.Sprintf("Follow-up overdue by %d days", days),
			DaysOverdue: &days,
		})
	}

	return items, nil
}

// DismissActionItem resolves one alert. The reference id is type-dependent:
// the follow-up id for "overdue", the member id for "inactive". The two
// cases branch immediately into distinct paths.
func (s *AttentionService) DismissActionItem(ctx context.Context, actor authz.ActingUser, itemType string, referenceID uuid.UUID) error {
	switch itemType {
	case response_models.AttentionTypeOverdue:
		return s.dismissOverdue(ctx, actor, referenceID)
	case response_models.AttentionTypeInactive:
		return s.dismissInactive(ctx, actor, referenceID)
	default:
		return utils.ErrInvalidDismissType
	}
}

// dismissOverdue cancels the reminder outright by deleting the follow-up.
func (s *AttentionService) dismissOverdue(ctx context.Context, actor authz.ActingUser, followUpID uuid.UUID) error {
	followUp, err := s.followUpRepo.FindByID(ctx, followUpID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if followUp == nil {
		return utils.ErrFollowUpNotFound
	}

	if err := s.checkMemberScope(ctx, actor, followUp.MemberID); err != nil {
		return err
	}

	deleted, err := s.followUpRepo.Delete(ctx, followUpID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if deleted == 0 {
		return utils.ErrFollowUpNotFound
	}
	return nil
}

// dismissInactive records a completed contact for the member, which keeps
// the inactivity alert quiet for the snooze window.
func (s *AttentionService) dismissInactive(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) error {
	if err := s.checkMemberScope(ctx, actor, memberID); err != nil {
		return err
	}

	now := s.now()
	outcome := db_models.OutcomeReached
	followUp := &db_models.FollowUp{
		MemberID:    memberID,
		UserID:      actor.ID,
		Type:        db_models.FollowUpOther,
		Notes:       "Inactivity alert dismissed from dashboard",
		Outcome:     &outcome,
		CompletedAt: &now,
	}
	if err := s.followUpRepo.Insert(ctx, followUp); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *AttentionService) checkMemberScope(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) error {
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
	return nil
}
