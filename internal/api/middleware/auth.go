package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/logging"
	"github.com/linskybing/oasis/internal/notify"
	"github.com/linskybing/oasis/internal/observability/metrics"
	"github.com/linskybing/oasis/pkg/response"
	"github.com/linskybing/oasis/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct {
	notifier notify.Notifier
}

// NewAuth creates a new Auth middleware instance
func NewAuth(notifier notify.Notifier) *Auth {
	return &Auth{notifier: notifier}
}

// RequireRoles runs the authorization gate before the handler. Anonymous
// callers get 401 with a login redirect; callers with the wrong role get 403,
// a redirect home and a notice.
func (a *Auth) RequireRoles(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := utils.IdentityFromContext(c)
		decision := authz.Authorize(id, c.Request.URL.RequestURI(), roles...)
		metrics.ObserveAuthz(decision.Outcome.String())

		switch decision.Outcome {
		case authz.Allow:
			c.Next()
		case authz.RedirectLogin:
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.RedirectResponse{
				Error:    "authentication required",
				Redirect: decision.Location,
				Notice:   decision.Notice.Response(),
			})
		default:
			if a.notifier != nil {
				if err := a.notifier.Notify(c.Request.Context(), id.UserID, decision.Notice); err != nil {
					logging.FromContext(c).WithError(err).Warn("failed to deliver notice")
				}
			}
			c.AbortWithStatusJSON(http.StatusForbidden, response.RedirectResponse{
				Error:    "permission denied",
				Redirect: decision.Location,
				Notice:   decision.Notice.Response(),
			})
		}
	}
}

// Admin checks if user is an administrator
func (a *Auth) Admin() gin.HandlerFunc {
	return a.RequireRoles(user.RoleAdmin)
}

// Authenticated admits any signed-in user regardless of role.
func (a *Auth) Authenticated() gin.HandlerFunc {
	return a.RequireRoles(user.AllRoles...)
}

// CORSMiddleware allows the configured front-end origins.
func CORSMiddleware() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(config.CorsOrigins))
	for _, o := range config.CorsOrigins {
		allowed[o] = struct{}{}
	}
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if _, ok := allowed[origin]; ok {
				return true
			}
			return !config.IsProduction && (strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:"))
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", logging.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", logging.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(corsConfig)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
