package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
	"flock/internal/models/request_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

func newMemberService(db *gorm.DB, mail *fakeMail) MemberServiceInterface {
	assignmentRepo := repositories.NewAssignmentRepository(db)
	return NewMemberService(
		repositories.NewMemberRepository(db),
		repositories.NewUserRepository(db),
		assignmentRepo,
		NewScopeResolver(assignmentRepo),
		mail,
		"https://flock.example.com",
	)
}

func strPtr(s string) *string { return &s }

func TestCreateMemberAsLeaderForcesOwnCamp(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db, &fakeMail{})

	campA := seedCamp(t, db, "Camp A")
	campB := seedCamp(t, db, "Camp B")

	resp, err := svc.Create(context.Background(), leaderActor(campA.ID), request_models.CreateMemberRequest{
		FirstName: "Efua",
		LastName:  "Addo",
		CampID:    campB.ID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CampID)
	assert.Equal(t, campA.ID, *resp.CampID, "leaders create into their own camp regardless of the request")
}

func TestCreateMemberAsShepherdIsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db, &fakeMail{})

	_, err := svc.Create(context.Background(), shepherdActor(), request_models.CreateMemberRequest{
		FirstName: "Efua",
		LastName:  "Addo",
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestGetMemberOutsideLeaderCampIsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db, &fakeMail{})

	campA := seedCamp(t, db, "Camp A")
	campB := seedCamp(t, db, "Camp B")
	outside := seedMember(t, db, "Out", "Side", &campB.ID)

	_, err := svc.Get(context.Background(), leaderActor(campA.ID), outside.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.Get(context.Background(), leaderActor(campA.ID), uuid.New())
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)
}

func TestPromotionCreatesStaffLoginAndInvite(t *testing.T) {
	db := newTestDB(t)
	mail := &fakeMail{}
	svc := newMemberService(db, mail)

	member := seedMember(t, db, "Grace", "Ofori", nil)
	email := "grace@example.com"
	member.Email = &email
	require.NoError(t, db.Save(member).Error)

	_, err := svc.Update(context.Background(), adminActor(), member.ID, request_models.UpdateMemberRequest{
		Role: strPtr("Leader"),
	})
	require.NoError(t, err)

	var user db_models.User
	require.NoError(t, db.First(&user, "member_id = ?", member.ID).Error)
	assert.Equal(t, "Leader", user.Role)
	assert.Equal(t, email, user.Email)
	assert.NotEmpty(t, user.PasswordHash)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, email, mail.sent[0].To)
	assert.True(t, strings.Contains(mail.sent[0].Body, "Leader"))
}

func TestPromotionWithoutEmailSkipsLogin(t *testing.T) {
	db := newTestDB(t)
	mail := &fakeMail{}
	svc := newMemberService(db, mail)

	member := seedMember(t, db, "No", "Email", nil)

	_, err := svc.Update(context.Background(), adminActor(), member.ID, request_models.UpdateMemberRequest{
		Role: strPtr("Shepherd"),
	})
	require.NoError(t, err, "missing email must not fail the update itself")

	var count int64
	require.NoError(t, db.Model(&db_models.User{}).Where("member_id = ?", member.ID).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, mail.sent)
}

func TestDemotionRemovesStaffLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db, &fakeMail{})

	member := seedMember(t, db, "Former", "Leader", nil)
	email := "former@example.com"
	member.Email = &email
	member.Role = db_models.MemberRoleLeader
	require.NoError(t, db.Save(member).Error)
	memberID := member.ID
	require.NoError(t, db.Create(&db_models.User{
		Email:        email,
		PasswordHash: "hash",
		Role:         "Leader",
		MemberID:     &memberID,
	}).Error)

	_, err := svc.Update(context.Background(), adminActor(), member.ID, request_models.UpdateMemberRequest{
		Role: strPtr("Member"),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&db_models.User{}).Where("member_id = ?", member.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBulkDeleteIsAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db, &fakeMail{})

	camp := seedCamp(t, db, "Camp A")
	member := seedMember(t, db, "To", "Delete", &camp.ID)

	_, err := svc.BulkDelete(context.Background(), leaderActor(camp.ID), []uuid.UUID{member.ID})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	deleted, err := svc.BulkDelete(context.Background(), adminActor(), []uuid.UUID{member.ID, uuid.New()})
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)
}

func TestAssignShepherdRequiresShepherdUser(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db, &fakeMail{})

	member := seedMember(t, db, "Needs", "Shepherd", nil)
	leaderUser := &db_models.User{Email: "lead@example.com", PasswordHash: "hash", Role: "Leader"}
	require.NoError(t, db.Create(leaderUser).Error)

	err := svc.AssignShepherd(context.Background(), adminActor(), member.ID, leaderUser.ID)
	assert.ErrorIs(t, err, utils.ErrUserNotFound, "only Shepherd users can be assigned")

	shepherdUser := &db_models.User{Email: "shep@example.com", PasswordHash: "hash", Role: "Shepherd"}
	require.NoError(t, db.Create(shepherdUser).Error)

	require.NoError(t, svc.AssignShepherd(context.Background(), adminActor(), member.ID, shepherdUser.ID))

	var assignment db_models.MemberAssignment
	require.NoError(t, db.First(&assignment, "member_id = ?", member.ID).Error)
	assert.Equal(t, shepherdUser.ID, assignment.ShepherdID)
}

func TestSelfServiceTokenIsSingleUse(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db, &fakeMail{})

	member := seedMember(t, db, "Self", "Service", nil)

	link, err := svc.IssueSelfServiceLink(context.Background(), adminActor(), member.ID)
	require.NoError(t, err)
	assert.Contains(t, link.UpdateURL, "https://flock.example.com/self-service/")

	parts := strings.Split(link.UpdateURL, "/")
	token := parts[len(parts)-1]

	err = svc.SelfServiceUpdate(context.Background(), token, request_models.SelfServiceUpdateRequest{
		Phone:     "024 999 8888",
		Residence: "Adenta",
	})
	require.NoError(t, err)

	var updated db_models.Member
	require.NoError(t, db.First(&updated, "id = ?", member.ID).Error)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "0249998888", *updated.Phone)
	assert.Equal(t, "Adenta", updated.Residence)
	assert.Nil(t, updated.UpdateToken, "the token burns on use")

	err = svc.SelfServiceUpdate(context.Background(), token, request_models.SelfServiceUpdateRequest{Phone: "0200000000"})
	assert.ErrorIs(t, err, utils.ErrUpdateTokenInvalid)
}

func TestSelfServiceTokenExpires(t *testing.T) {
	db := newTestDB(t)
	svc := newMemberService(db, &fakeMail{})

	member := seedMember(t, db, "Slow", "Member", nil)
	token := "expired-token"
	expired := time.Now().Add(-time.Hour)
	member.UpdateToken = &token
	member.UpdateTokenExpiry = &expired
	require.NoError(t, db.Save(member).Error)

	err := svc.SelfServiceUpdate(context.Background(), token, request_models.SelfServiceUpdateRequest{Phone: "0200000000"})
	assert.ErrorIs(t, err, utils.ErrUpdateTokenInvalid)
}
