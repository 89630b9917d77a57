package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"flock/internal/authz"
	"flock/internal/models/db_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

type CampServiceInterface interface {
	List(ctx context.Context) ([]db_models.Camp, error)
	Create(ctx context.Context, actor authz.ActingUser, name string) (*db_models.Camp, error)
	SetLeader(ctx context.Context, actor authz.ActingUser, campID, memberID uuid.UUID) error
}

type CampService struct {
	campRepo   repositories.CampRepository
	memberRepo repositories.MemberRepository
}

func NewCampService(campRepo repositories.CampRepository, memberRepo repositories.MemberRepository) CampServiceInterface {
	return &CampService{campRepo: campRepo, memberRepo: memberRepo}
}

func (s *CampService) List(ctx context.Context) ([]db_models.Camp, error) {
	camps, err := s.campRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return camps, nil
}

func (s *CampService) Create(ctx context.Context, actor authz.ActingUser, name string) (*db_models.Camp, error) {
	if actor.Role != authz.RoleAdmin {
		return nil, utils.ErrForbidden
	}

	name = strings.TrimSpace(name)
	existing, err := s.campRepo.FindByName(ctx, name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, nil
	}

	camp := &db_models.Camp{Name: name}
	if err := s.campRepo.Insert(ctx, camp); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return camp, nil
}

func (s *CampService) SetLeader(ctx context.Context, actor authz.ActingUser, campID, memberID uuid.UUID) error {
	if actor.Role != authz.RoleAdmin {
		return utils.ErrForbidden
	}

	camp, err := s.campRepo.FindByID(ctx, campID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if camp == nil {
		return utils.ErrCampNotFound
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMemberNotFound
	}

	if err := s.campRepo.SetLeader(ctx, camp.ID, member.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
