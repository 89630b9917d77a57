package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
	"flock/internal/models/request_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

func newFollowUpService(db *gorm.DB) FollowUpServiceInterface {
	assignmentRepo := repositories.NewAssignmentRepository(db)
	return NewFollowUpService(
		repositories.NewFollowUpRepository(db),
		repositories.NewMemberRepository(db),
		NewScopeResolver(assignmentRepo),
	)
}

func TestCreateFollowUpWithoutScheduleIsCompleted(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowUpService(db)
	actor := adminActor()

	member := seedMember(t, db, "Ama", "Mensah", nil)

	followUp, err := svc.Create(context.Background(), actor, request_models.CreateFollowUpRequest{
		MemberID: member.ID.String(),
		Type:     "Call",
		Notes:    "checked in after service",
	})
	require.NoError(t, err)
	assert.NotNil(t, followUp.CompletedAt, "an unscheduled contact already happened")
	assert.Nil(t, followUp.ScheduledAt)
	assert.Equal(t, actor.ID, followUp.UserID)
}

func TestCreateFollowUpWithSchedulePends(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowUpService(db)

	member := seedMember(t, db, "Kofi", "Owusu", nil)
	scheduledAt := time.Now().Add(48 * time.Hour).Format(time.RFC3339)

	followUp, err := svc.Create(context.Background(), adminActor(), request_models.CreateFollowUpRequest{
		MemberID:    member.ID.String(),
		Type:        "Visit",
		ScheduledAt: scheduledAt,
	})
	require.NoError(t, err)
	assert.NotNil(t, followUp.ScheduledAt)
	assert.Nil(t, followUp.CompletedAt)
}

func TestCreateFollowUpRejectsBadSchedule(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowUpService(db)

	member := seedMember(t, db, "Kofi", "Owusu", nil)

	_, err := svc.Create(context.Background(), adminActor(), request_models.CreateFollowUpRequest{
		MemberID:    member.ID.String(),
		Type:        "Visit",
		ScheduledAt: "tomorrow",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidEventDate)
}

func TestCompleteFollowUpRecordsOutcome(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowUpService(db)
	actor := adminActor()

	member := seedMember(t, db, "Grace", "Ofori", nil)
	scheduled := time.Now().Add(-time.Hour)
	followUp := &db_models.FollowUp{
		MemberID:    member.ID,
		UserID:      actor.ID,
		Type:        db_models.FollowUpCall,
		ScheduledAt: &scheduled,
	}
	require.NoError(t, db.Create(followUp).Error)

	completed, err := svc.Complete(context.Background(), actor, followUp.ID, request_models.CompleteFollowUpRequest{
		Outcome: "Reached",
		Notes:   "prayed together",
	})
	require.NoError(t, err)
	assert.NotNil(t, completed.CompletedAt)
	require.NotNil(t, completed.Outcome)
	assert.Equal(t, db_models.OutcomeReached, *completed.Outcome)
	assert.Equal(t, "prayed together", completed.Notes)
}

func TestFollowUpsAreScopeChecked(t *testing.T) {
	db := newTestDB(t)
	svc := newFollowUpService(db)

	member := seedMember(t, db, "Hidden", "Member", nil)

	_, err := svc.Create(context.Background(), shepherdActor(), request_models.CreateFollowUpRequest{
		MemberID: member.ID.String(),
		Type:     "Call",
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.ListByMember(context.Background(), shepherdActor(), member.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}
