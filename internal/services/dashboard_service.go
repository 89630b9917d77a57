package services

import (
	"context"
	"time"

	"flock/internal/authz"
	"flock/internal/models/db_models"
	"flock/internal/models/response_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context, actor authz.ActingUser) (*response_models.DashboardReport, error)
}

type dashboardService struct {
	repo   repositories.DashboardRepository
	scopes ScopeResolver
}

func NewDashboardService(repo repositories.DashboardRepository, scopes ScopeResolver) DashboardServiceInterface {
	return &dashboardService{repo: repo, scopes: scopes}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, actor authz.ActingUser) (*response_models.DashboardReport, error) {
	filter, err := s.scopes.Resolve(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := &response_models.DashboardReport{}

	if report.TotalMembers, err = s.repo.CountMembers(ctx, filter); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report.ActiveMembers, err = s.repo.CountMembersByStatus(ctx, filter, db_models.MemberStatusActive); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report.InactiveMembers, err = s.repo.CountMembersByStatus(ctx, filter, db_models.MemberStatusInactive); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report.NewMembers30Days, err = s.repo.CountNewMembers(ctx, filter, now.AddDate(0, 0, -30)); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report.Camps, err = s.repo.CountCamps(ctx); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report.UpcomingEvents, err = s.repo.CountUpcomingEvents(ctx, now); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report.OpenFollowUps, err = s.repo.CountOpenFollowUps(ctx, filter); err != nil {
		return nil, utils.ErrDatabaseError
	}
	if report.OverdueFollowUps, err = s.repo.CountOverdueFollowUps(ctx, filter, now); err != nil {
		return nil, utils.ErrDatabaseError
	}

	present, total, err := s.repo.AttendanceCounts(ctx, filter, now.AddDate(0, 0, -28))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if total > 0 {
		report.AttendanceRate4Wk = float64(present) / float64(total)
	}

	return report, nil
}
