package services

import (
	"context"

	"flock/internal/authz"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

// ScopeResolver turns an acting user into the member visibility filter
// applied by every member-touching query and write.
type ScopeResolver interface {
	Resolve(ctx context.Context, actor authz.ActingUser) (authz.ScopeFilter, error)
}

type scopeResolver struct {
	assignmentRepo repositories.AssignmentRepository
}

func NewScopeResolver(assignmentRepo repositories.AssignmentRepository) ScopeResolver {
	return &scopeResolver{assignmentRepo: assignmentRepo}
}

func (s *scopeResolver) Resolve(ctx context.Context, actor authz.ActingUser) (authz.ScopeFilter, error) {
	switch actor.Role {
	case authz.RoleAdmin:
		return authz.Unrestricted(), nil
	case authz.RoleLeader:
		// A leader without a camp sees nothing; a missing assignment must
		// not widen visibility.
		if actor.CampID == nil {
			return authz.NoScope(), nil
		}
		return authz.CampScope(*actor.CampID), nil
	case authz.RoleShepherd:
		ids, err := s.assignmentRepo.MemberIDsForShepherd(ctx, actor.ID)
		if err != nil {
			return authz.NoScope(), utils.ErrDatabaseError
		}
		return authz.MemberScope(ids), nil
	default:
		return authz.NoScope(), nil
	}
}
