package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "flexxit_backend/internal/feature/auth/adapters"
	"flexxit_backend/internal/platform/cache"
)

// NewUserRepository creates the Credential Store repository.
// When rdb is nil the cache layer passes every call straight to the database.
func NewUserRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *cache.CachingUserRepository {
	return cache.NewCachingUserRepository(rdb, ttl, authadapters.NewUserRepository(db), "users")
}
