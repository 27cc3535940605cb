package security

import (
	"strings"

	"noteboard-be/internal/pkg/apperror"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// RoleSet is the set of roles allowed to call an operation. The empty set
// means the operation is public.
type RoleSet struct {
	roles map[Role]struct{}
}

func NewRoleSet(roles ...Role) RoleSet {
	set := RoleSet{roles: make(map[Role]struct{}, len(roles))}
	for _, r := range roles {
		set.roles[r] = struct{}{}
	}
	return set
}

var (
	Public    = NewRoleSet()
	AnyUser   = NewRoleSet(RoleUser, RoleAdmin)
	AdminOnly = NewRoleSet(RoleAdmin)
)

func (s RoleSet) IsPublic() bool {
	return len(s.roles) == 0
}

// Contains matches role names exactly; unknown roles are simply not members.
func (s RoleSet) Contains(role string) bool {
	_, ok := s.roles[Role(role)]
	return ok
}

// Authorize checks verified claims against the roles an operation requires.
// claims is nil when the request carried no valid token.
func Authorize(claims *Claims, required RoleSet) error {
	if required.IsPublic() {
		return nil
	}
	if claims == nil {
		return apperror.Unauthenticated("A valid access token is required.")
	}
	if !required.Contains(claims.Role) {
		return apperror.Forbidden("You do not have permission to perform this action.")
	}
	return nil
}

// DefaultRole returns role, or "user" when role is blank.
func DefaultRole(role string) string {
	if strings.TrimSpace(role) == "" {
		return string(RoleUser)
	}
	return role
}
