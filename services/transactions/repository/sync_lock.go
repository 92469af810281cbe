package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/ecotrack/internal/pkg/constants"
	"github.com/piresc/ecotrack/internal/pkg/database"
	"github.com/piresc/ecotrack/internal/pkg/models"
)

// releaseLockScript deletes the lock only while it still holds our token, so
// an expired lock taken over by another drain is left alone
var releaseLockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type SyncLockRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

func NewSyncLockRepo(cfg *models.Config, redisClient *database.RedisClient) *SyncLockRepo {
	return &SyncLockRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

func syncLockKey(externalUserID, merchantID string) string {
	return fmt.Sprintf(constants.KeySyncLock, externalUserID, merchantID)
}

// AcquireSyncLock reports false when another holder owns the lock
func (r *SyncLockRepo) AcquireSyncLock(ctx context.Context, externalUserID, merchantID, token string, ttl time.Duration) (bool, error) {
	ok, err := r.redisClient.SetNX(ctx, syncLockKey(externalUserID, merchantID), token, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	return ok, nil
}

func (r *SyncLockRepo) ReleaseSyncLock(ctx context.Context, externalUserID, merchantID, token string) error {
	key := syncLockKey(externalUserID, merchantID)
	if err := releaseLockScript.Run(ctx, r.redisClient.Client, []string{key}, token).Err(); err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}
	return nil
}
