package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"flock/internal/models/db_models"
	"flock/internal/repositories"
	"flock/pkg/utils"
)

func newCampService(db *gorm.DB) CampServiceInterface {
	return NewCampService(repositories.NewCampRepository(db), repositories.NewMemberRepository(db))
}

func TestCreateCampIsIdempotentByName(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db)

	first, err := svc.Create(context.Background(), adminActor(), "Camp Bethel")
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), adminActor(), "  Camp Bethel ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&db_models.Camp{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateCampIsAdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db)

	_, err := svc.Create(context.Background(), leaderActor(uuid.New()), "Camp Bethel")
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestSetCampLeader(t *testing.T) {
	db := newTestDB(t)
	svc := newCampService(db)

	camp := seedCamp(t, db, "Camp Bethel")
	member := seedMember(t, db, "Grace", "Ofori", &camp.ID)

	err := svc.SetLeader(context.Background(), adminActor(), camp.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrMemberNotFound)

	err = svc.SetLeader(context.Background(), adminActor(), uuid.New(), member.ID)
	assert.ErrorIs(t, err, utils.ErrCampNotFound)

	require.NoError(t, svc.SetLeader(context.Background(), adminActor(), camp.ID, member.ID))

	var updated db_models.Camp
	require.NoError(t, db.First(&updated, "id = ?", camp.ID).Error)
	require.NotNil(t, updated.LeaderID)
	assert.Equal(t, member.ID, *updated.LeaderID)
}
