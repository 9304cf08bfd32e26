package di

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"flexxit_backend/internal/app/router"
	authhandler "flexxit_backend/internal/feature/auth/transport/handler"
	authusecase "flexxit_backend/internal/feature/auth/usecase"
	cataloghandler "flexxit_backend/internal/feature/catalog/transport/handler"
	catalogusecase "flexxit_backend/internal/feature/catalog/usecase"
	userhandler "flexxit_backend/internal/feature/user/transport/handler"
	userusecase "flexxit_backend/internal/feature/user/usecase"
	"flexxit_backend/internal/platform/http/handler"
	jwtmw "flexxit_backend/internal/platform/jwt"
	"flexxit_backend/internal/platform/password"
)

// Deps are the external resources the application is built from.
type Deps struct {
	DB             *gorm.DB
	Redis          *redis.Client // optional
	UserCacheTTL   time.Duration
	JWT            jwtmw.Config
	Catalog        catalogusecase.Provider
	AllowedOrigins []string
	BcryptCost     int
}

// NewEngine wires repositories, usecases and handlers into a gin engine.
func NewEngine(d Deps) (*gin.Engine, error) {
	if d.JWT.Secret == "" {
		return nil, errors.New(jwtmw.EnvKeyJWTSecret + " is not set")
	}
	if d.DB == nil {
		return nil, errors.New("database is required")
	}
	if d.Catalog == nil {
		return nil, errors.New("catalog provider is required")
	}

	users := NewUserRepository(d.DB, d.Redis, d.UserCacheTTL)
	hasher := password.NewBcryptHasher(d.BcryptCost)
	tokens := jwtmw.NewGenerator(d.JWT.Secret, d.JWT.Expiration)

	authUC := authusecase.NewAuthUsecase(users, tokens, hasher)
	watchlistUC := userusecase.NewWatchlistUsecase(users)
	profileUC := userusecase.NewProfileUsecase(users, hasher)
	catalogUC := catalogusecase.NewCatalogUsecase(d.Catalog)

	handlers := router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC),
		User:    userhandler.NewUserHandler(watchlistUC, profileUC),
		Catalog: cataloghandler.NewCatalogHandler(catalogUC),
		Ready:   handler.Ready(readinessChecks(d.DB, d.Redis)),
	}

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = router.DefaultAllowedOrigins
	}
	return router.NewRouter(handlers, jwtmw.AuthRequired(tokens, users), origins), nil
}

func readinessChecks(db *gorm.DB, rdb *redis.Client) map[string]handler.Check {
	checks := map[string]handler.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}
