package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
	"flock/internal/repositories"
)

func newDashboardService(db *gorm.DB) DashboardServiceInterface {
	assignmentRepo := repositories.NewAssignmentRepository(db)
	return NewDashboardService(repositories.NewDashboardRepository(db), NewScopeResolver(assignmentRepo))
}

func TestDashboardCountsForAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	camp := seedCamp(t, db, "Camp A")
	active := seedMember(t, db, "Active", "One", &camp.ID)
	inactive := seedMember(t, db, "Inactive", "Two", &camp.ID)
	inactive.Status = db_models.MemberStatusInactive
	require.NoError(t, db.Save(inactive).Error)

	past := seedEvent(t, db, "Last Sunday", time.Now().Add(-7*24*time.Hour))
	seedEvent(t, db, "Next Sunday", time.Now().Add(7*24*time.Hour))
	seedAttendance(t, db, active.ID, past.ID, db_models.AttendancePresent)
	seedAttendance(t, db, inactive.ID, past.ID, db_models.AttendanceAbsent)

	overdue := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Create(&db_models.FollowUp{
		MemberID:    active.ID,
		UserID:      adminActor().ID,
		Type:        db_models.FollowUpCall,
		ScheduledAt: &overdue,
	}).Error)

	report, err := svc.BuildDashboard(context.Background(), adminActor())
	require.NoError(t, err)

	assert.EqualValues(t, 2, report.TotalMembers)
	assert.EqualValues(t, 1, report.ActiveMembers)
	assert.EqualValues(t, 1, report.InactiveMembers)
	assert.EqualValues(t, 2, report.NewMembers30Days)
	assert.EqualValues(t, 1, report.Camps)
	assert.EqualValues(t, 1, report.UpcomingEvents)
	assert.EqualValues(t, 1, report.OpenFollowUps)
	assert.EqualValues(t, 1, report.OverdueFollowUps)
	assert.InDelta(t, 0.5, report.AttendanceRate4Wk, 0.0001)
}

func TestDashboardScopedToLeaderCamp(t *testing.T) {
	db := newTestDB(t)
	svc := newDashboardService(db)

	campA := seedCamp(t, db, "Camp A")
	campB := seedCamp(t, db, "Camp B")
	seedMember(t, db, "Mine", "Member", &campA.ID)
	seedMember(t, db, "Other", "Member", &campB.ID)

	report, err := svc.BuildDashboard(context.Background(), leaderActor(campA.ID))
	require.NoError(t, err)
	assert.EqualValues(t, 1, report.TotalMembers)
}
