package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/api/handlers"
	"github.com/linskybing/oasis/internal/api/middleware"
	"github.com/linskybing/oasis/internal/api/routes"
	"github.com/linskybing/oasis/internal/application"
	"github.com/linskybing/oasis/internal/notify"
)

// SetupRouter mounts the full route table over svc with in-process notices
// and rate limits.
func SetupRouter(svc *application.Services, notifier notify.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, handlers.New(svc, notifier), middleware.NewAuth(notifier), middleware.NewMemoryLimiter())
	return r
}
