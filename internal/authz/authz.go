// Package authz holds the single authorization decision consulted by
// every team-scoped mutation. It is read-then-decide only: callers
// resolve membership, this package answers yes or no.
package authz

import "gearguard/internal/entities"

type Context struct {
	ActorID  uint64
	Role     entities.Role
	IsMember bool
}

// CanMutateTeamRequest grants access to recorded team members and to
// manager/admin roles regardless of membership.
func CanMutateTeamRequest(ctx Context) bool {
	if ctx.Role.IsElevated() {
		return true
	}
	return ctx.IsMember
}

// CanManageTeams restricts team creation and membership administration.
func CanManageTeams(role entities.Role) bool {
	return role.IsElevated()
}

// CanManageEquipment restricts equipment registration to manager/admin.
func CanManageEquipment(role entities.Role) bool {
	return role.IsElevated()
}
