package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const teamMembersKeyFormat = "team_members:%d"

type RedisCacheRepository struct {
	client *redis.Client
}

func NewRedisCacheRepository(client *redis.Client) CacheRepositoryInterface {
	return &RedisCacheRepository{client: client}
}

func (r *RedisCacheRepository) GetMemberIDs(ctx context.Context, teamID uint64) ([]uint64, bool, error) {
	raw, err := r.client.Get(ctx, fmt.Sprintf(teamMembersKeyFormat, teamID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var ids []uint64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false, err
	}
	return ids, true, nil
}

func (r *RedisCacheRepository) SetMemberIDs(ctx context.Context, teamID uint64, userIDs []uint64, ttl time.Duration) error {
	raw, err := json.Marshal(userIDs)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, fmt.Sprintf(teamMembersKeyFormat, teamID), raw, ttl).Err()
}

func (r *RedisCacheRepository) InvalidateTeam(ctx context.Context, teamID uint64) error {
	return r.client.Del(ctx, fmt.Sprintf(teamMembersKeyFormat, teamID)).Err()
}
