package authz

import (
	"testing"

	"gearguard/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestCanMutateTeamRequest(t *testing.T) {
	cases := []struct {
		name    string
		role    entities.Role
		member  bool
		allowed bool
	}{
		{"admin outside team", entities.RoleAdmin, false, true},
		{"manager outside team", entities.RoleManager, false, true},
		{"technician member", entities.RoleTechnician, true, true},
		{"technician outside team", entities.RoleTechnician, false, false},
		{"requester member", entities.RoleRequester, true, true},
		{"requester outside team", entities.RoleRequester, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanMutateTeamRequest(Context{ActorID: 1, Role: tc.role, IsMember: tc.member})
			assert.Equal(t, tc.allowed, got)
		})
	}
}

func TestCanManageTeams(t *testing.T) {
	assert.True(t, CanManageTeams(entities.RoleAdmin))
	assert.True(t, CanManageTeams(entities.RoleManager))
	assert.False(t, CanManageTeams(entities.RoleTechnician))
	assert.False(t, CanManageTeams(entities.RoleRequester))
}

func TestCanManageEquipment(t *testing.T) {
	assert.True(t, CanManageEquipment(entities.RoleAdmin))
	assert.True(t, CanManageEquipment(entities.RoleManager))
	assert.False(t, CanManageEquipment(entities.RoleTechnician))
	assert.False(t, CanManageEquipment(entities.RoleRequester))
}
