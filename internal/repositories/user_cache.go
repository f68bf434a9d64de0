package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/espresso-tracker/internal/logger"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

// UserCacheRepository caches user rows in Redis, keyed by username. Users are
// immutable once registered, so entries only need a TTL.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

// NewUserCacheRepository creates a cache repository with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// cachedUser is the cached form of a user. It carries no password hash.
type cachedUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func userKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, username string) (*models.User, error) {
	key := userKey(username)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debugw("cache miss", "key", key)
			return nil, nil
		}
		logger.Log.Errorw("cache get failed", "key", key, "error", err)
		return nil, err
	}

	var cu cachedUser
	if err := json.Unmarshal(val, &cu); err != nil {
		logger.Log.Errorw("cache entry corrupted", "key", key, "error", err)
		return nil, err
	}

	user := &models.User{
		Username:  cu.Username,
		Email:     cu.Email,
		CreatedAt: cu.CreatedAt,
	}
	if err := user.ID.UnmarshalText([]byte(cu.ID)); err != nil {
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return user, nil
}

// Set caches the user with the configured expiration.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	key := userKey(user.Username)

	data, err := json.Marshal(cachedUser{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "ttl", r.exp, "error", err)
	return err
}
