package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"Admin", "Leader", "Shepherd"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok)
		assert.Equal(t, Role(valid), role)
	}

	_, ok := ParseRole("Member")
	assert.False(t, ok)
	_, ok = ParseRole("admin")
	assert.False(t, ok, "roles are case sensitive")
}

func TestMemberScopeEmptyIsNone(t *testing.T) {
	filter := MemberScope(nil)
	assert.Equal(t, ScopeNone, filter.Kind)

	filter = MemberScope([]uuid.UUID{})
	assert.Equal(t, ScopeNone, filter.Kind)
}

func TestAllowsMember(t *testing.T) {
	campA := uuid.New()
	campB := uuid.New()
	memberID := uuid.New()

	assert.True(t, Unrestricted().AllowsMember(memberID, nil))

	camp := CampScope(campA)
	assert.True(t, camp.AllowsMember(memberID, &campA))
	assert.False(t, camp.AllowsMember(memberID, &campB))
	assert.False(t, camp.AllowsMember(memberID, nil), "camp scope never matches a campless member")

	members := MemberScope([]uuid.UUID{memberID})
	assert.True(t, members.AllowsMember(memberID, &campB))
	assert.False(t, members.AllowsMember(uuid.New(), &campB))

	assert.False(t, NoScope().AllowsMember(memberID, &campA))
}

func TestCanEdit(t *testing.T) {
	campA := uuid.New()
	campB := uuid.New()

	admin := ActingUser{ID: uuid.New(), Role: RoleAdmin}
	assert.True(t, CanEdit(admin, nil, false))

	leader := ActingUser{ID: uuid.New(), Role: RoleLeader, CampID: &campA}
	assert.True(t, CanEdit(leader, &campA, false))
	assert.False(t, CanEdit(leader, &campB, false))
	assert.False(t, CanEdit(leader, nil, false))

	campless := ActingUser{ID: uuid.New(), Role: RoleLeader}
	assert.False(t, CanEdit(campless, &campA, false))

	shepherd := ActingUser{ID: uuid.New(), Role: RoleShepherd}
	assert.True(t, CanEdit(shepherd, &campA, true))
	assert.False(t, CanEdit(shepherd, &campA, false))
}
