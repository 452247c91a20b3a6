package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/resumes"
	"resume-vault/internal/shared/auth"
	"resume-vault/internal/shared/config"
	"resume-vault/internal/shared/metrics"
	"resume-vault/internal/shared/server/middleware"
	"resume-vault/internal/shared/server/respond"
	"resume-vault/internal/users"
)

// Upload rate limit: the parse call can hold a handler open for a long
// time, so cap how many uploads one principal can start.
var uploadRateRule = middleware.RateLimitRule{Rate: 0.5, Burst: 5}

// RouterDeps carries everything route registration needs.
type RouterDeps struct {
	Config         config.Config
	Tokens         *auth.Tokens
	UsersHandler   *users.Handler
	ResumesHandler *resumes.Handler
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(!deps.Config.IsProduction()),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	protected := api.Group("")
	protected.Use(middleware.Auth(deps.Tokens))

	deps.UsersHandler.RegisterRoutes(api, protected)

	uploadLimiter := middleware.RateLimit(middleware.NewRateLimiter(nil), uploadRateRule)
	deps.ResumesHandler.RegisterRoutes(protected, uploadLimiter)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":3000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
