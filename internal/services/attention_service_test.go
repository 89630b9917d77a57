package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
	"flock/internal/models/response_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

func newAttentionService(db *gorm.DB, now time.Time) *AttentionService {
	return &AttentionService{
		attentionRepo: repositories.NewAttentionRepository(db),
		followUpRepo:  repositories.NewFollowUpRepository(db),
		memberRepo:    repositories.NewMemberRepository(db),
		scopes:        NewScopeResolver(repositories.NewAssignmentRepository(db)),
		now:           func() time.Time { return now },
	}
}

func TestAttentionInactivityBoundary(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC().Truncate(time.Second)
	svc := newAttentionService(db, now)

	recent := seedMember(t, db, "Recent", "Visitor", nil)
	edge := seedMember(t, db, "Edge", "Visitor", nil)
	stale := seedMember(t, db, "Stale", "Visitor", nil)

	recentEvent := seedEvent(t, db, "Sunday Service", now.Add(-27*24*time.Hour))
	edgeEvent := seedEvent(t, db, "Boundary Service", now.Add(-28*24*time.Hour))
	staleEvent := seedEvent(t, db, "Old Service", now.Add(-29*24*time.Hour))
	seedAttendance(t, db, recent.ID, recentEvent.ID, db_models.AttendancePresent)
	seedAttendance(t, db, edge.ID, edgeEvent.ID, db_models.AttendancePresent)
	seedAttendance(t, db, stale.ID, staleEvent.ID, db_models.AttendancePresent)

	items, err := svc.GetMembersNeedingAttention(context.Background(), adminActor())
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool)
	for _, item := range items {
		ids[item.MemberID] = true
	}
	assert.False(t, ids[recent.ID], "attendance 27 days ago is still recent")
	assert.False(t, ids[edge.ID], "attendance exactly 28 days ago still counts as recent")
	assert.True(t, ids[stale.ID], "attendance 29 days ago is past the window")
}

func TestAttentionAbsentDoesNotCount(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	svc := newAttentionService(db, now)

	member := seedMember(t, db, "Marked", "Absent", nil)
	event := seedEvent(t, db, "Midweek", now.Add(-2*24*time.Hour))
	seedAttendance(t, db, member.ID, event.ID, db_models.AttendanceAbsent)

	items, err := svc.GetMembersNeedingAttention(context.Background(), adminActor())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, member.ID, items[0].MemberID)
	assert.Equal(t, "Never attended an event", items[0].Reason)
	assert.Nil(t, items[0].DaysOverdue)
}

func TestAttentionRecentContactSnoozes(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	svc := newAttentionService(db, now)

	snoozed := seedMember(t, db, "Snoozed", "Member", nil)
	resurfaced := seedMember(t, db, "Resurfaced", "Member", nil)

	threeDaysAgo := now.Add(-3 * 24 * time.Hour)
	eightDaysAgo := now.Add(-8 * 24 * time.Hour)
	for memberID, completedAt := range map[uuid.UUID]time.Time{
		snoozed.ID:    threeDaysAgo,
		resurfaced.ID: eightDaysAgo,
	} {
		completed := completedAt
		require.NoError(t, db.Create(&db_models.FollowUp{
			MemberID:    memberID,
			UserID:      uuid.New(),
			Type:        db_models.FollowUpCall,
			CompletedAt: &completed,
		}).Error)
	}

	items, err := svc.GetMembersNeedingAttention(context.Background(), adminActor())
	require.NoError(t, err)

	ids := make(map[uuid.UUID]bool)
	for _, item := range items {
		ids[item.MemberID] = true
	}
	assert.False(t, ids[snoozed.ID], "contact 3 days ago suppresses the alert")
	assert.True(t, ids[resurfaced.ID], "contact 8 days ago no longer suppresses")
}

func TestAttentionOverdueFollowUps(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	svc := newAttentionService(db, now)

	member := seedMember(t, db, "Pending", "Contact", nil)
	scheduled := now.Add(-3 * 24 * time.Hour)
	followUp := &db_models.FollowUp{
		MemberID:    member.ID,
		UserID:      uuid.New(),
		Type:        db_models.FollowUpCall,
		ScheduledAt: &scheduled,
	}
	require.NoError(t, db.Create(followUp).Error)

	// The same member also shows up as inactive; both lists are independent.
	items, err := svc.GetMembersNeedingAttention(context.Background(), adminActor())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, response_models.AttentionTypeInactive, items[0].Type, "inactive items come first")
	overdueItem := items[1]
	assert.Equal(t, response_models.AttentionTypeOverdue, overdueItem.Type)
	assert.Equal(t, followUp.ID, overdueItem.ReferenceID, "overdue reference is the follow-up id")
	require.NotNil(t, overdueItem.DaysOverdue)
	assert.Equal(t, 3, *overdueItem.DaysOverdue)
}

func TestAttentionListsAreCapped(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	svc := newAttentionService(db, now)

	for i := 0; i < 7; i++ {
		seedMember(t, db, fmt.Sprintf("Inactive%d", i), "Member", nil)
	}

	items, err := svc.GetMembersNeedingAttention(context.Background(), adminActor())
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestAttentionNeverAttendedLeadsFullPage(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	svc := newAttentionService(db, now)

	for i := 0; i < 5; i++ {
		member := seedMember(t, db, fmt.Sprintf("Stale%d", i), "Member", nil)
		event := seedEvent(t, db, fmt.Sprintf("Service %d", i), now.Add(-time.Duration(30+i)*24*time.Hour))
		seedAttendance(t, db, member.ID, event.ID, db_models.AttendancePresent)
	}
	never := seedMember(t, db, "Never", "Attended", nil)

	items, err := svc.GetMembersNeedingAttention(context.Background(), adminActor())
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, never.ID, items[0].MemberID, "never-attended members lead even on a full page")
	assert.Equal(t, "Never attended an event", items[0].Reason)
}

func TestAttentionScopedToLeaderCamp(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	svc := newAttentionService(db, now)

	campA := seedCamp(t, db, "Camp A")
	campB := seedCamp(t, db, "Camp B")
	inCamp := seedMember(t, db, "Inside", "Camp", &campA.ID)
	seedMember(t, db, "Outside", "Camp", &campB.ID)

	items, err := svc.GetMembersNeedingAttention(context.Background(), leaderActor(campA.ID))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, inCamp.ID, items[0].MemberID)
}

func TestDismissOverdueDeletesFollowUp(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	svc := newAttentionService(db, now)
	actor := adminActor()

	member := seedMember(t, db, "Pending", "Contact", nil)
	scheduled := now.Add(-48 * time.Hour)
	followUp := &db_models.FollowUp{
		MemberID:    member.ID,
		UserID:      actor.ID,
		Type:        db_models.FollowUpCall,
		ScheduledAt: &scheduled,
	}
	require.NoError(t, db.Create(followUp).Error)

	err := svc.DismissActionItem(context.Background(), actor, response_models.AttentionTypeOverdue, followUp.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&db_models.FollowUp{}).Where("id = ?", followUp.ID).Count(&count).Error)
	assert.Zero(t, count)

	// Dismissing the same item again reports it gone.
	err = svc.DismissActionItem(context.Background(), actor, response_models.AttentionTypeOverdue, followUp.ID)
	assert.ErrorIs(t, err, utils.ErrFollowUpNotFound)
}

func TestDismissInactiveRecordsContact(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	svc := newAttentionService(db, now)
	actor := adminActor()

	member := seedMember(t, db, "Quiet", "Member", nil)

	items, err := svc.GetMembersNeedingAttention(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, items, 1)

	err = svc.DismissActionItem(context.Background(), actor, response_models.AttentionTypeInactive, member.ID)
	require.NoError(t, err)

	var followUp db_models.FollowUp
	require.NoError(t, db.First(&followUp, "member_id = ?", member.ID).Error)
	assert.Equal(t, actor.ID, followUp.UserID, "the dismissing user owns the contact record")
	assert.NotNil(t, followUp.CompletedAt)
	require.NotNil(t, followUp.Outcome)
	assert.Equal(t, db_models.OutcomeReached, *followUp.Outcome)

	// The contact record keeps the alert quiet.
	items, err = svc.GetMembersNeedingAttention(context.Background(), actor)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDismissRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	svc := newAttentionService(db, time.Now())

	err := svc.DismissActionItem(context.Background(), adminActor(), "snoozed", uuid.New())
	assert.ErrorIs(t, err, utils.ErrInvalidDismissType)
}

func TestDismissOutOfScopeIsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newAttentionService(db, time.Now())

	member := seedMember(t, db, "Unassigned", "Member", nil)

	err := svc.DismissActionItem(context.Background(), shepherdActor(), response_models.AttentionTypeInactive, member.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
