package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 进度快照缓存有效期；任何结算/领奖写入都会主动失效
const progressTTL = 10 * time.Minute

type AchievementCache struct {
	redis *redis.Client
}

func NewAchievementCache(redis *redis.Client) *AchievementCache {
	return &AchievementCache{redis: redis}
}

func (c *AchievementCache) progressKey(userID uint64) string {
	return fmt.Sprintf("achievement:progress:%d", userID)
}

// GetProgress 读取进度快照缓存，未命中返回 false
func (c *AchievementCache) GetProgress(ctx context.Context, userID uint64, out interface{}) bool {
	val, err := c.redis.Get(ctx, c.progressKey(userID)).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

// SetProgress 写入进度快照缓存
func (c *AchievementCache) SetProgress(ctx context.Context, userID uint64, snapshot interface{}) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, c.progressKey(userID), payload, progressTTL).Err()
}

// InvalidateProgress 结算或领奖后失效缓存
func (c *AchievementCache) InvalidateProgress(ctx context.Context, userID uint64) error {
	return c.redis.Del(ctx, c.progressKey(userID)).Err()
}
