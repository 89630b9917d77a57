package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"flock/internal/authz"
	"flock/internal/infra"
	"flock/internal/models/db_models"
	"flock/internal/models/request_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

type MessagingServiceInterface interface {
	SendSMS(ctx context.Context, actor authz.ActingUser, req request_models.SendMessageRequest) error
	SendEmail(ctx context.Context, actor authz.ActingUser, req request_models.SendMessageRequest) error
	WhatsAppLink(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID, body string) (string, error)
	Draft(ctx context.Context, actor authz.ActingUser, req request_models.DraftMessageRequest) (string, error)
}

type MessagingService struct {
	memberRepo repositories.MemberRepository
	scopes     ScopeResolver
	sms        infra.SMSGateway
	mail       IMailService
	drafter    utils.MessageDrafterInterface
}

func NewMessagingService(
	memberRepo repositories.MemberRepository,
	scopes ScopeResolver,
	sms infra.SMSGateway,
	mail IMailService,
	drafter utils.MessageDrafterInterface,
) MessagingServiceInterface {
	return &MessagingService{
		memberRepo: memberRepo,
		scopes:     scopes,
		sms:        sms,
		mail:       mail,
		drafter:    drafter,
	}
}

func (s *MessagingService) loadRecipient(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) (*db_models.Member, error) {
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

func (s *MessagingService) SendSMS(ctx context.Context, actor authz.ActingUser, req request_models.SendMessageRequest) error {
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return utils.ErrMemberNotFound
	}
	member, err := s.loadRecipient(ctx, actor, memberID)
	if err != nil {
		return err
	}
	if member.Phone == nil || *member.Phone == "" {
		return utils.ErrNoRecipient
	}
	if err := s.sms.Send(ctx, *member.Phone, req.Body); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrGatewayFailure, err)
	}
	return nil
}

func (s *MessagingService) SendEmail(ctx context.Context, actor authz.ActingUser, req request_models.SendMessageRequest) error {
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return utils.ErrMemberNotFound
	}
	member, err := s.loadRecipient(ctx, actor, memberID)
	if err != nil {
		return err
	}
	if member.Email == nil || *member.Email == "" {
		return utils.ErrNoRecipient
	}
	subject := req.Subject
	if subject == "" {
		subject = "A message from your ministry"
	}
	if err := s.mail.SendMail(*member.Email, subject, req.Body); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrGatewayFailure, err)
	}
	return nil
}

// WhatsAppLink builds a wa.me deep link; the operator's device sends the
// actual message.
func (s *MessagingService) WhatsAppLink(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID, body string) (string, error) {
	member, err := s.loadRecipient(ctx, actor, memberID)
	if err != nil {
		return "", err
	}
	if member.Phone == nil || *member.Phone == "" {
		return "", utils.ErrNoRecipient
	}

	digits := strings.TrimPrefix(utils.NormalizePhone(*member.Phone), "+")
	link := "https://wa.me/" + digits
	if body != "" {
		link += "?text=" + url.QueryEscape(body)
	}
	return link, nil
}

func (s *MessagingService) Draft(ctx context.Context, actor authz.ActingUser, req request_models.DraftMessageRequest) (string, error) {
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return "", utils.ErrMemberNotFound
	}
	member, err := s.loadRecipient(ctx, actor, memberID)
	if err != nil {
		return "", err
	}

	return s.drafter.DraftMessage(ctx, utils.DraftRequest{
		MemberName: member.FullName(),
		Purpose:    req.Purpose,
		Tone:       req.Tone,
		Channel:    req.Channel,
	})
}
