// Package router assembles the gin engine and its routes.
package router

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "flexxit_backend/internal/feature/auth/transport/handler"
	cataloghandler "flexxit_backend/internal/feature/catalog/transport/handler"
	userhandler "flexxit_backend/internal/feature/user/transport/handler"
	"flexxit_backend/internal/platform/http/handler"
	"flexxit_backend/internal/platform/httpapi"
)

// DefaultAllowedOrigins are the front-end origins accepted when CORS_ALLOWED_ORIGINS is unset.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://flexxit-project.vercel.app",
}

// LoadAllowedOrigins reads the comma separated CORS_ALLOWED_ORIGINS list.
func LoadAllowedOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return DefaultAllowedOrigins
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return DefaultAllowedOrigins
	}
	return origins
}

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	User    *userhandler.UserHandler
	Catalog *cataloghandler.CatalogHandler
	Ready   gin.HandlerFunc
}

// NewRouter builds the engine. authRequired guards the profile and /api/user routes.
func NewRouter(h Handlers, authRequired gin.HandlerFunc, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	if h.Ready != nil {
		r.GET("/readyz", h.Ready)
	}

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/profile", authRequired, h.Auth.Profile)
	}

	content := api.Group("/content")
	{
		content.GET("/browse", h.Catalog.Browse)
		content.GET("/media/:mediaType/:id", h.Catalog.MediaDetails)
		content.GET("/tv/:tvId/season/:seasonNumber", h.Catalog.SeasonDetails)
		content.GET("/search", h.Catalog.Search)
		content.GET("/genres", h.Catalog.Genres)
		content.GET("/genre/:genreId", h.Catalog.MoviesByGenre)
	}

	user := api.Group("/user")
	user.Use(authRequired)
	{
		user.GET("/watchlist", h.User.GetWatchlist)
		user.POST("/watchlist/add", h.User.AddToWatchlist)
		user.POST("/watchlist/remove", h.User.RemoveFromWatchlist)
		user.PUT("/profile", h.User.UpdateProfile)
		user.PUT("/profile/password", h.User.ChangePassword)
	}

	r.NoRoute(func(c *gin.Context) {
		httpapi.Abort(c, http.StatusNotFound, "Not found")
	})

	return r
}
