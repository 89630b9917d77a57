package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"flock/internal/authz"
	"flock/internal/models/db_models"
	"flock/internal/models/request_models"
	"flock/internal/models/response_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

type MemberServiceInterface interface {
	List(ctx context.Context, actor authz.ActingUser, opts repositories.MemberListOptions) (*response_models.MemberListResponse, error)
	Get(ctx context.Context, actor authz.ActingUser, id uuid.UUID) (*response_models.MemberResponse, error)
	Create(ctx context.Context, actor authz.ActingUser, req request_models.CreateMemberRequest) (*response_models.MemberResponse, error)
	Update(ctx context.Context, actor authz.ActingUser, id uuid.UUID, req request_models.UpdateMemberRequest) (*response_models.MemberResponse, error)
	Delete(ctx context.Context, actor authz.ActingUser, id uuid.UUID) error
	BulkDelete(ctx context.Context, actor authz.ActingUser, ids []uuid.UUID) (int64, error)
	AssignShepherd(ctx context.Context, actor authz.ActingUser, memberID, shepherdID uuid.UUID) error
	UnassignShepherd(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) error
	IssueSelfServiceLink(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) (*response_models.SelfServiceLinkResponse, error)
	SelfServiceUpdate(ctx context.Context, token string, req request_models.SelfServiceUpdateRequest) error
}

type MemberService struct {
	memberRepo     repositories.MemberRepository
	userRepo       repositories.UserRepository
	assignmentRepo repositories.AssignmentRepository
	scopes         ScopeResolver
	mail           IMailService
	appBaseURL     string
}

func NewMemberService(
	memberRepo repositories.MemberRepository,
	userRepo repositories.UserRepository,
	assignmentRepo repositories.AssignmentRepository,
	scopes ScopeResolver,
	mail IMailService,
	appBaseURL string,
) MemberServiceInterface {
	return &MemberService{
		memberRepo:     memberRepo,
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		scopes:         scopes,
		mail:           mail,
		appBaseURL:     appBaseURL,
	}
}

func (s *MemberService) List(ctx context.Context, actor authz.ActingUser, opts repositories.MemberListOptions) (*response_models.MemberListResponse, error) {
	filter, err := s.scopes.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	members, total, err := s.memberRepo.ListScoped(ctx, filter, opts)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, response_models.MemberResponse{
			Member:  m,
			CanEdit: authz.CanEdit(actor, m.CampID, filter.AllowsMember(m.ID, m.CampID)),
		})
	}
	return &response_models.MemberListResponse{Members: out, Total: total}, nil
}

// loadScoped fetches a member and enforces the actor's scope; a member
// outside scope answers ErrForbidden, a missing one ErrMemberNotFound.
func (s *MemberService) loadScoped(ctx context.Context, actor authz.ActingUser, id uuid.UUID) (*db_models.Member, authz.ScopeFilter, error) {
	filter, err := s.scopes.Resolve(ctx, actor)
	if err != nil {
		return nil, filter, err
	}
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, filter, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, filter, utils.ErrMemberNotFound
	}
	if !filter.AllowsMember(member.ID, member.CampID) {
		return nil, filter, utils.ErrForbidden
	}
	return member, filter, nil
}

func (s *MemberService) Get(ctx context.Context, actor authz.ActingUser, id uuid.UUID) (*response_models.MemberResponse, error) {
	member, filter, err := s.loadScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return &response_models.MemberResponse{
		Member:  *member,
		CanEdit: authz.CanEdit(actor, member.CampID, filter.AllowsMember(member.ID, member.CampID)),
	}, nil
}

func (s *MemberService) Create(ctx context.Context, actor authz.ActingUser, req request_models.CreateMemberRequest) (*response_models.MemberResponse, error) {
	member := &db_models.Member{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Role:          db_models.MemberRoleMember,
		Status:        db_models.MemberStatusActive,
		Category:      req.Category,
		Campus:        req.Campus,
		Region:        req.Region,
		Residence:     req.Residence,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
	}
	if req.Role != "" {
		member.Role = db_models.MemberRole(req.Role)
	}
	if req.Status != "" {
		member.Status = db_models.MemberStatus(req.Status)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		member.Email = &email
	}
	if req.Phone != "" {
		phone := utils.NormalizePhone(req.Phone)
		member.Phone = &phone
	}
	if req.CampID != "" {
		campID, err := uuid.Parse(req.CampID)
		if err == nil {
			member.CampID = &campID
		}
	}
	member.Birthday = utils.ParseFlexibleDate(req.Birthday)
	member.JoinDate = utils.ParseFlexibleDate(req.JoinDate)

	switch actor.Role {
	case authz.RoleAdmin:
		// unrestricted
	case authz.RoleLeader:
		// Leaders create members into their own camp only.
		if actor.CampID == nil {
			return nil, utils.ErrForbidden
		}
		member.CampID = actor.CampID
	default:
		return nil, utils.ErrForbidden
	}

	if err := s.memberRepo.Insert(ctx, member); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := s.syncUserForRole(ctx, member, ""); err != nil {
		log.Printf("user sync after create failed for member %s: %v", member.ID, err)
	}

	return &response_models.MemberResponse{Member: *member, CanEdit: true}, nil
}

func (s *MemberService) Update(ctx context.Context, actor authz.ActingUser, id uuid.UUID, req request_models.UpdateMemberRequest) (*response_models.MemberResponse, error) {
	member, filter, err := s.loadScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	previousRole := member.Role

	if req.FirstName != nil {
		member.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		member.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		if *req.Email == "" {
			member.Email = nil
		} else {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			member.Email = &email
		}
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			member.Phone = nil
		} else {
			phone := utils.NormalizePhone(*req.Phone)
			member.Phone = &phone
		}
	}
	if req.Role != nil {
		member.Role = db_models.MemberRole(*req.Role)
	}
	if req.Status != nil {
		member.Status = db_models.MemberStatus(*req.Status)
	}
	if req.Category != nil {
		member.Category = *req.Category
	}
	if req.Campus != nil {
		member.Campus = *req.Campus
	}
	if req.CampID != nil {
		if *req.CampID == "" {
			member.CampID = nil
		} else if campID, err := uuid.Parse(*req.CampID); err == nil {
			member.CampID = &campID
		}
	}
	if req.Birthday != nil {
		member.Birthday = utils.ParseFlexibleDate(*req.Birthday)
	}
	if req.Region != nil {
		member.Region = *req.Region
	}
	if req.Residence != nil {
		member.Residence = *req.Residence
	}
	if req.GuardianName != nil {
		member.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		member.GuardianPhone = *req.GuardianPhone
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if member.Role != previousRole {
		if err := s.syncUserForRole(ctx, member, previousRole); err != nil {
			log.Printf("user sync after role change failed for member %s: %v", member.ID, err)
		}
	}

	return &response_models.MemberResponse{
		Member:  *member,
		CanEdit: authz.CanEdit(actor, member.CampID, filter.AllowsMember(member.ID, member.CampID)),
	}, nil
}

// syncUserForRole keeps the User table in step with the member's role:
// promotion to Leader/Shepherd upserts the linked staff login, demotion
// away from both removes it.
func (s *MemberService) syncUserForRole(ctx context.Context, member *db_models.Member, previousRole db_models.MemberRole) error {
	nowStaff := member.Role == db_models.MemberRoleLeader || member.Role == db_models.MemberRoleShepherd
	wasStaff := previousRole == db_models.MemberRoleLeader || previousRole == db_models.MemberRoleShepherd

	if !nowStaff {
		if wasStaff {
			return s.userRepo.DeleteByMemberID(ctx, member.ID)
		}
		return nil
	}

	role := authz.RoleShepherd
	if member.Role == db_models.MemberRoleLeader {
		role = authz.RoleLeader
	}

	existing, err := s.userRepo.FindByMemberID(ctx, member.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Role = string(role)
		existing.CampID = member.CampID
		if member.Email != nil {
			existing.Email = *member.Email
		}
		return s.userRepo.Update(ctx, existing)
	}

	if member.Email == nil {
		log.Printf("member %s promoted to %s without an email; staff login not created", member.ID, member.Role)
		return nil
	}

	password, err := utils.GenerateSecureToken(8)
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	memberID := member.ID
	user := &db_models.User{
		Email:        *member.Email,
		PasswordHash: hash,
		Role:         string(role),
		MemberID:     &memberID,
		CampID:       member.CampID,
		DisplayName:  member.FullName(),
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return err
	}

	if s.mail != nil {
		subject := fmt.Sprintf("Your %s dashboard access", role)
		body := fmt.Sprintf("Hello %s, you now have %s access. Sign in with this email and the temporary password %s, then change it.",
			member.FirstName, role, password)
		if err := s.mail.SendMail(*member.Email, subject, body); err != nil {
			log.Printf("invite email to %s failed: %v", *member.Email, err)
		}
	}
	return nil
}

func (s *MemberService) Delete(ctx context.Context, actor authz.ActingUser, id uuid.UUID) error {
	member, _, err := s.loadScoped(ctx, actor, id)
	if err != nil {
		return err
	}
	if _, err := s.memberRepo.BulkDelete(ctx, []uuid.UUID{member.ID}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *MemberService) BulkDelete(ctx context.Context, actor authz.ActingUser, ids []uuid.UUID) (int64, error) {
	if actor.Role != authz.RoleAdmin {
		return 0, utils.ErrForbidden
	}
	deleted, err := s.memberRepo.BulkDelete(ctx, ids)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return deleted, nil
}

func (s *MemberService) AssignShepherd(ctx context.Context, actor authz.ActingUser, memberID, shepherdID uuid.UUID) error {
	if actor.Role == authz.RoleShepherd {
		return utils.ErrForbidden
	}
	member, _, err := s.loadScoped(ctx, actor, memberID)
	if err != nil {
		return err
	}

	shepherd, err := s.userRepo.FindByID(ctx, shepherdID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if shepherd == nil || shepherd.Role != string(authz.RoleShepherd) {
		return utils.ErrUserNotFound
	}

	if err := s.assignmentRepo.Assign(ctx, member.ID, shepherd.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *MemberService) UnassignShepherd(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) error {
	if actor.Role == authz.RoleShepherd {
		return utils.ErrForbidden
	}
	member, _, err := s.loadScoped(ctx, actor, memberID)
	if err != nil {
		return err
	}
	if err := s.assignmentRepo.Unassign(ctx, member.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *MemberService) IssueSelfServiceLink(ctx context.Context, actor authz.ActingUser, memberID uuid.UUID) (*response_models.SelfServiceLinkResponse, error) {
	member, _, err := s.loadScoped(ctx, actor, memberID)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	expiry := time.Now().Add(24 * time.Hour)
	member.UpdateToken = &token
	member.UpdateTokenExpiry = &expiry

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SelfServiceLinkResponse{
		MemberID:  member.ID,
		UpdateURL: fmt.Sprintf("%s/self-service/%s", strings.TrimRight(s.appBaseURL, "/"), url.PathEscape(token)),
		ExpiresAt: expiry.Unix(),
	}, nil
}

func (s *MemberService) SelfServiceUpdate(ctx context.Context, token string, req request_models.SelfServiceUpdateRequest) error {
	member, err := s.memberRepo.FindByUpdateToken(ctx, token)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrUpdateTokenInvalid
	}

	if req.Phone != "" {
		phone := utils.NormalizePhone(req.Phone)
		member.Phone = &phone
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		member.Email = &email
	}
	if req.Residence != "" {
		member.Residence = req.Residence
	}
	if req.Region != "" {
		member.Region = req.Region
	}
	if req.Birthday != "" {
		member.Birthday = utils.ParseFlexibleDate(req.Birthday)
	}
	if req.GuardianName != "" {
		member.GuardianName = req.GuardianName
	}
	if req.GuardianPhone != "" {
		member.GuardianPhone = req.GuardianPhone
	}

	// Single use: burn the token with the same write.
	member.UpdateToken = nil
	member.UpdateTokenExpiry = nil

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
