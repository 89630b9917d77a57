package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"flock/internal/authz"
	"flock/internal/models/db_models"
	"flock/internal/models/request_models"
	"flock/internal/models/response_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	CreateUser(ctx context.Context, actor authz.ActingUser, request request_models.CreateUserRequest) (*db_models.User, error)
	Me(ctx context.Context, actor authz.ActingUser) (*response_models.ProfileResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{userRepo: userRepo}
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role, user.CampID)
	if err != nil {
		log.Printf("Token generation failed for %s: %v", user.Email, err)
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AuthService) CreateUser(ctx context.Context, actor authz.ActingUser, request request_models.CreateUserRequest) (*db_models.User, error) {
	if actor.Role != authz.RoleAdmin {
		return nil, utils.ErrForbidden
	}

	role, ok := authz.ParseRole(request.Role)
	if !ok {
		return nil, utils.ErrInvalidRole
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:        request.Email,
		PasswordHash: hash,
		Role:         string(role),
		DisplayName:  request.DisplayName,
	}
	if request.CampID != "" {
		campID, err := uuid.Parse(request.CampID)
		if err == nil {
			user.CampID = &campID
		}
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

// Me returns the caller's own profile plus any campuses linked to a Leader.
func (a *AuthService) Me(ctx context.Context, actor authz.ActingUser) (*response_models.ProfileResponse, error) {
	user, err := a.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	profile := &response_models.ProfileResponse{User: *user}
	if user.Role == string(authz.RoleLeader) {
		campuses, err := a.userRepo.ListCampuses(ctx, user.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		profile.Campuses = campuses
	}
	return profile, nil
}
