package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"flock/internal/authz"
	"flock/internal/infra"
	"flock/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, infra.AutoMigrate(db))
	return db
}

func seedCamp(t *testing.T, db *gorm.DB, name string) *db_models.Camp {
	t.Helper()
	camp := &db_models.Camp{Name: name}
	require.NoError(t, db.Create(camp).Error)
	return camp
}

func seedMember(t *testing.T, db *gorm.DB, first, last string, campID *uuid.UUID) *db_models.Member {
	t.Helper()
	member := &db_models.Member{
		FirstName: first,
		LastName:  last,
		Role:      db_models.MemberRoleMember,
		Status:    db_models.MemberStatusActive,
		CampID:    campID,
	}
	require.NoError(t, db.Create(member).Error)
	return member
}

func seedEvent(t *testing.T, db *gorm.DB, title string, date time.Time) *db_models.Event {
	t.Helper()
	event := &db_models.Event{Title: title, Type: db_models.EventTypeService, EventDate: date}
	require.NoError(t, db.Create(event).Error)
	return event
}

func seedAttendance(t *testing.T, db *gorm.DB, memberID, eventID uuid.UUID, status db_models.AttendanceStatus) {
	t.Helper()
	require.NoError(t, db.Create(&db_models.AttendanceRecord{
		MemberID: memberID,
		EventID:  eventID,
		Status:   status,
	}).Error)
}

func seedAssignment(t *testing.T, db *gorm.DB, memberID, shepherdID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&db_models.MemberAssignment{
		MemberID:   memberID,
		ShepherdID: shepherdID,
		AssignedAt: time.Now(),
	}).Error)
}

func adminActor() authz.ActingUser {
	return authz.ActingUser{ID: uuid.New(), Role: authz.RoleAdmin}
}

func leaderActor(campID uuid.UUID) authz.ActingUser {
	return authz.ActingUser{ID: uuid.New(), Role: authz.RoleLeader, CampID: &campID}
}

func shepherdActor() authz.ActingUser {
	return authz.ActingUser{ID: uuid.New(), Role: authz.RoleShepherd}
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMail records outbound mail instead of dialing SMTP.
type fakeMail struct {
	sent []sentMail
	err  error
}

func (f *fakeMail) SendMail(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}
