package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/api/handlers"
	"github.com/linskybing/oasis/internal/api/middleware"
	"github.com/linskybing/oasis/internal/config"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/internal/observability/metrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes mounts every endpoint. Identity is attached to all requests
// when a token is present; each role area then runs the authorization gate.
func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, auth *middleware.Auth, limiter middleware.Limiter) {
	r.Use(middleware.Authenticate())

	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public
	r.POST("/register/:kind", h.User.Register)
	r.POST("/login", middleware.RateLimit(limiter, "login", config.LoginRateLimit, config.LoginRateWindow), h.User.Login)
	r.POST("/logout", h.User.Logout)
	r.GET("/auth/status", h.User.AuthStatus)
	r.GET("/programs", h.Catalog.ListPrograms)
	r.GET("/programs/:id", h.Catalog.GetProgram)
	r.GET("/sectors", h.Catalog.ListSectors)
	r.POST("/contact", h.Contact.SendMessage)

	signedIn := r.Group("/", auth.Authenticated())
	{
		signedIn.PUT("/me/password", h.User.ChangePassword)
		signedIn.GET("/notices", h.Notice.DrainNotices)
		signedIn.GET("/ws/notices", h.Notice.StreamNotices)
		signedIn.GET("/projects/:id", h.Project.GetProject)
	}

	company := r.Group("/company", auth.RequireRoles(user.RoleCompany))
	{
		company.GET("/profile", h.Profile.GetProfile)
		company.PUT("/profile", h.Profile.UpdateProfile)
		company.POST("/profile/logo", h.Profile.UploadImage)

		company.GET("/projects", h.Project.ListCompanyProjects)
		company.POST("/projects", h.Project.SubmitProject)
		company.PUT("/projects/:id", h.Project.EditProject)
		company.GET("/projects/:id/postulations", h.Postulation.ListForProject)
		company.PUT("/postulations/:kind/:id/:action", h.Postulation.Decide)
	}

	apprentice := r.Group("/apprentice", auth.RequireRoles(user.RoleApprentice))
	{
		apprentice.GET("/dashboard", h.Dashboard.ApprenticeDashboard)
		apprentice.GET("/profile", h.Profile.GetProfile)
		apprentice.PUT("/profile", h.Profile.UpdateProfile)
		apprentice.POST("/profile/photo", h.Profile.UploadImage)

		apprentice.GET("/projects", h.Project.ListApprenticeProjects)
		apprentice.GET("/projects/:id", h.Project.GetApprenticeProject)
		apprentice.POST("/projects/:id/apply", h.Postulation.Apply)
		apprentice.GET("/postulations", h.Postulation.ListMine)
	}

	instructor := r.Group("/instructor", auth.RequireRoles(user.RoleInstructor))
	{
		instructor.GET("/profile", h.Profile.GetProfile)
		instructor.PUT("/profile", h.Profile.UpdateProfile)
		instructor.POST("/profile/photo", h.Profile.UploadImage)

		instructor.GET("/projects", h.Project.ListInstructorProjects)
		instructor.GET("/projects/:id", h.Project.GetInstructorProject)
		instructor.POST("/projects/:id/apply", h.Postulation.Apply)
		instructor.GET("/postulations", h.Postulation.ListMine)
		instructor.GET("/supervised", h.Project.ListSupervised)
	}

	admin := r.Group("/admin", auth.Admin())
	{
		admin.GET("/dashboard", h.Dashboard.AdminDashboard)
		admin.GET("/reports", h.Dashboard.Reports)

		projects := admin.Group("/projects")
		{
			projects.GET("", h.Project.ListAllProjects)
			projects.GET("/pending", h.Project.ListPendingProjects)
			projects.PUT("/:id/approve", h.Project.ApproveProject)
			projects.PUT("/:id/reject", h.Project.RejectProject)
			projects.PUT("/:id/advance", h.Project.AdvanceProject)
			projects.DELETE("/:id", h.Project.DeleteProject)
		}

		users := admin.Group("/users")
		{
			users.GET("", h.User.ListUsers)
			users.GET("/:id", h.User.GetUser)
			users.POST("", h.User.CreateUser)
			users.PUT("/:id", h.User.UpdateUser)
			users.DELETE("/:id", h.User.DeleteUser)
		}

		programs := admin.Group("/programs")
		{
			programs.GET("", h.Catalog.ListPrograms)
			programs.POST("", h.Catalog.CreateProgram)
			programs.PUT("/:id", h.Catalog.UpdateProgram)
			programs.DELETE("/:id", h.Catalog.DeleteProgram)
		}

		sectors := admin.Group("/sectors")
		{
			sectors.GET("", h.Catalog.ListSectors)
			sectors.POST("", h.Catalog.CreateSector)
			sectors.PUT("/:id", h.Catalog.UpdateSector)
			sectors.DELETE("/:id", h.Catalog.DeleteSector)
		}

		admin.GET("/contact", h.Contact.ListMessages)
		admin.PUT("/contact/:id/resolve", h.Contact.ResolveMessage)
		admin.GET("/audit/logs", h.Audit.GetAuditLogs)
	}
}
