package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface is the storage side of the team-membership
// cache consulted by the authorization gate.
type CacheRepositoryInterface interface {
	GetMemberIDs(ctx context.Context, teamID uint64) ([]uint64, bool, error)
	SetMemberIDs(ctx context.Context, teamID uint64, userIDs []uint64, ttl time.Duration) error
	InvalidateTeam(ctx context.Context, teamID uint64) error
}
