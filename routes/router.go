package routes

import (
	"context"
	"io/fs"
	"log"

	"kard-tasks/kard/config"
	"kard-tasks/kard/database"
	"kard-tasks/kard/middleware"
	"kard-tasks/kard/services"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Auth     services.AuthServiceInterface
	User     services.UserServiceInterface
	Activity services.ActivityServiceInterface
}

// NewRouter builds the engine with the global middleware chain, the API
// groups and the static client. ctx bounds the rate limiter's cleanup
// goroutine.
func NewRouter(ctx context.Context, cfg config.Config, db *database.Database, svc Services, files fs.FS) *gin.Engine {
	router := gin.Default()
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		log.Printf("Invalid TRUSTED_PROXIES %q, trusting no proxy: %v", cfg.TrustedProxies, err)
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.BodyLimit(cfg.BodyLimitBytes))

	RegisterHealthRoutes(router, db)

	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitMax, cfg.RateLimitWindow)

	public := router.Group("/", limiter.Middleware())
	RegisterAuthRoutes(public, db, svc.User, svc.Auth)

	protected := router.Group("/", limiter.Middleware(), middleware.AuthMiddleware(svc.Auth))
	RegisterActivityRoutes(protected, db, svc.Activity)
	RegisterUserRoutes(protected, db, svc.User)

	if files != nil {
		RegisterStaticRoutes(router, files)
	}

	return router
}
