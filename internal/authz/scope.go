package authz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of staff roles. Member.Role is a wider enum and
// lives with the Member model; this one gates data access.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleLeader   Role = "Leader"
	RoleShepherd Role = "Shepherd"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleLeader, RoleShepherd:
		return Role(s), true
	}
	return "", false
}

// ActingUser is the capability object threaded explicitly through every
// scope-resolving and mutating operation. There is no ambient lookup.
type ActingUser struct {
	ID     uuid.UUID
	Role   Role
	CampID *uuid.UUID
}

type ScopeKind int

const (
	// ScopeNone grants access to no members. It is the result for a
	// Leader without a camp and a Shepherd without assignments; missing
	// scope must never widen to unrestricted.
	ScopeNone ScopeKind = iota
	ScopeUnrestricted
	ScopeCamp
	ScopeMembers
)

// ScopeFilter is the resolved visibility of an acting user over members.
type ScopeFilter struct {
	Kind      ScopeKind
	CampID    uuid.UUID
	MemberIDs []uuid.UUID
}

func Unrestricted() ScopeFilter { return ScopeFilter{Kind: ScopeUnrestricted} }

func CampScope(campID uuid.UUID) ScopeFilter {
	return ScopeFilter{Kind: ScopeCamp, CampID: campID}
}

func MemberScope(ids []uuid.UUID) ScopeFilter {
	if len(ids) == 0 {
		return ScopeFilter{Kind: ScopeNone}
	}
	return ScopeFilter{Kind: ScopeMembers, MemberIDs: ids}
}

func NoScope() ScopeFilter { return ScopeFilter{Kind: ScopeNone} }

// Apply narrows a query over the members table (or an alias of it) to the
// filter. Every member list, detail and mutation query goes through here.
func (f ScopeFilter) Apply(tx *gorm.DB, table string) *gorm.DB {
	switch f.Kind {
	case ScopeUnrestricted:
		return tx
	case ScopeCamp:
		return tx.Where(table+".camp_id = ?", f.CampID)
	case ScopeMembers:
		return tx.Where(table+".id IN ?", f.MemberIDs)
	default:
		return tx.Where("1 = 0")
	}
}

// AllowsMember reports whether a member with the given id and camp is
// visible under the filter. Used for single-record reads and writes.
func (f ScopeFilter) AllowsMember(memberID uuid.UUID, campID *uuid.UUID) bool {
	switch f.Kind {
	case ScopeUnrestricted:
		return true
	case ScopeCamp:
		return campID != nil && *campID == f.CampID
	case ScopeMembers:
		for _, id := range f.MemberIDs {
			if id == memberID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CanEdit mirrors the scope rules as the per-record boolean returned to
// clients alongside member data. assigned reports whether a
// MemberAssignment row exists for (member, actor).
func CanEdit(actor ActingUser, memberCampID *uuid.UUID, assigned bool) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleLeader:
		return actor.CampID != nil && memberCampID != nil && *actor.CampID == *memberCampID
	case RoleShepherd:
		return assigned
	default:
		return false
	}
}
