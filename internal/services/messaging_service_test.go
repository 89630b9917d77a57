package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flock/internal/infra"
	"flock/internal/models/request_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

type fakeDrafter struct {
	lastReq utils.DraftRequest
}

func (f *fakeDrafter) DraftMessage(ctx context.Context, req utils.DraftRequest) (string, error) {
	f.lastReq = req
	return "Hello " + req.MemberName + ", we missed you!", nil
}

func newMessagingService(db *gorm.DB, sms infra.SMSGateway, mail *fakeMail, drafter *fakeDrafter) MessagingServiceInterface {
	assignmentRepo := repositories.NewAssignmentRepository(db)
	return NewMessagingService(
		repositories.NewMemberRepository(db),
		NewScopeResolver(assignmentRepo),
		sms,
		mail,
		drafter,
	)
}

func TestSendSMSPostsToGateway(t *testing.T) {
	db := newTestDB(t)

	var payload map[string]string
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := newMessagingService(db, infra.NewHTTPSMSGateway(server.URL, "secret", "FLOCK"), &fakeMail{}, &fakeDrafter{})

	member := seedMember(t, db, "Ama", "Mensah", nil)
	phone := "0241112222"
	member.Phone = &phone
	require.NoError(t, db.Save(member).Error)

	err := svc.SendSMS(context.Background(), adminActor(), request_models.SendMessageRequest{
		MemberID: member.ID.String(),
		Body:     "See you on Sunday",
	})
	require.NoError(t, err)

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, phone, payload["to"])
	assert.Equal(t, "See you on Sunday", payload["message"])
	assert.Equal(t, "FLOCK", payload["sender"])
}

func TestSendSMSGatewayFailure(t *testing.T) {
	db := newTestDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newMessagingService(db, infra.NewHTTPSMSGateway(server.URL, "secret", "FLOCK"), &fakeMail{}, &fakeDrafter{})

	member := seedMember(t, db, "Ama", "Mensah", nil)
	phone := "0241112222"
	member.Phone = &phone
	require.NoError(t, db.Save(member).Error)

	err := svc.SendSMS(context.Background(), adminActor(), request_models.SendMessageRequest{
		MemberID: member.ID.String(),
		Body:     "hello",
	})
	assert.ErrorIs(t, err, utils.ErrGatewayFailure)
}

func TestSendSMSWithoutPhone(t *testing.T) {
	db := newTestDB(t)
	svc := newMessagingService(db, infra.NewHTTPSMSGateway("http://localhost:0", "k", "s"), &fakeMail{}, &fakeDrafter{})

	member := seedMember(t, db, "No", "Phone", nil)

	err := svc.SendSMS(context.Background(), adminActor(), request_models.SendMessageRequest{
		MemberID: member.ID.String(),
		Body:     "hello",
	})
	assert.ErrorIs(t, err, utils.ErrNoRecipient)
}

func TestSendEmailUsesMailService(t *testing.T) {
	db := newTestDB(t)
	mail := &fakeMail{}
	svc := newMessagingService(db, infra.NewHTTPSMSGateway("http://localhost:0", "k", "s"), mail, &fakeDrafter{})

	member := seedMember(t, db, "Grace", "Ofori", nil)
	email := "grace@example.com"
	member.Email = &email
	require.NoError(t, db.Save(member).Error)

	err := svc.SendEmail(context.Background(), adminActor(), request_models.SendMessageRequest{
		MemberID: member.ID.String(),
		Subject:  "Retreat details",
		Body:     "Departure is 7am",
	})
	require.NoError(t, err)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, email, mail.sent[0].To)
	assert.Equal(t, "Retreat details", mail.sent[0].Subject)
}

func TestWhatsAppLinkFormat(t *testing.T) {
	db := newTestDB(t)
	svc := newMessagingService(db, infra.NewHTTPSMSGateway("http://localhost:0", "k", "s"), &fakeMail{}, &fakeDrafter{})

	member := seedMember(t, db, "Kofi", "Owusu", nil)
	phone := "+233241112222"
	member.Phone = &phone
	require.NoError(t, db.Save(member).Error)

	link, err := svc.WhatsAppLink(context.Background(), adminActor(), member.ID, "See you Sunday?")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/233241112222?text=See+you+Sunday%3F", link)

	link, err = svc.WhatsAppLink(context.Background(), adminActor(), member.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/233241112222", link)
}

func TestMessagingIsScopeChecked(t *testing.T) {
	db := newTestDB(t)
	svc := newMessagingService(db, infra.NewHTTPSMSGateway("http://localhost:0", "k", "s"), &fakeMail{}, &fakeDrafter{})

	member := seedMember(t, db, "Hidden", "Member", nil)
	phone := "0241112222"
	member.Phone = &phone
	require.NoError(t, db.Save(member).Error)

	err := svc.SendSMS(context.Background(), shepherdActor(), request_models.SendMessageRequest{
		MemberID: member.ID.String(),
		Body:     "hello",
	})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestDraftUsesMemberName(t *testing.T) {
	db := newTestDB(t)
	drafter := &fakeDrafter{}
	svc := newMessagingService(db, infra.NewHTTPSMSGateway("http://localhost:0", "k", "s"), &fakeMail{}, drafter)

	member := seedMember(t, db, "Ama", "Mensah", nil)

	draft, err := svc.Draft(context.Background(), adminActor(), request_models.DraftMessageRequest{
		MemberID: member.ID.String(),
		Purpose:  "invite back to service",
		Tone:     "warm",
		Channel:  "sms",
	})
	require.NoError(t, err)
	assert.Contains(t, draft, "Ama Mensah")
	assert.Equal(t, "invite back to service", drafter.lastReq.Purpose)
}
