package routes

import (
	"net/http"
	"time"

	"staffstream/handlers"
	"staffstream/middleware"
	"staffstream/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.CurrentUserHandler)
	}
}

// RegisterOnboardingRoutes registers the employee onboarding endpoints.
func RegisterOnboardingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/onboarding")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/application", hb.Onboarding.GetApplicationHandler)
		api.GET("/application/status", hb.Onboarding.GetApplicationStatusHandler)
		api.POST("/application", hb.Onboarding.SubmitApplicationHandler)

		// Status review is an HR operation.
		hr := api.Group("")
		hr.Use(middleware.HRAuthMiddleware(hb.UserRepo))
		hr.PUT("/application/:applicationId/status", hb.Onboarding.UpdateApplicationStatusHandler)
	}
}

// RegisterPersonalRoutes registers the personal information endpoints.
func RegisterPersonalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/personal")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Onboarding.GetPersonalInfoHandler)
		api.PUT("", hb.Onboarding.UpdatePersonalInfoHandler)
	}
}

// RegisterHRRoutes registers the HR dashboard endpoints.
func RegisterHRRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hr")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.HRAuthMiddleware(hb.UserRepo))
		api.POST("/generate-token", hb.HR.GenerateTokenHandler)
		api.GET("/token-history", hb.HR.TokenHistoryHandler)
		api.POST("/token/:id/remind", hb.HR.RemindTokenHandler)
		api.GET("", hb.HR.GetApplicationsHandler)
		api.POST("/:id/approve", hb.HR.ApproveApplicationHandler)
		api.POST("/:id/reject", hb.HR.RejectApplicationHandler)
	}
}

// RegisterVisaRoutes registers the visa document workflow endpoints.
func RegisterVisaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/visa")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Visa.GetStatusHandler)
		api.POST("/upload", hb.Visa.UploadDocumentHandler)

		hr := api.Group("/hr")
		hr.Use(middleware.HRAuthMiddleware(hb.UserRepo))
		hr.GET("/in-progress", hb.Visa.InProgressHandler)
		hr.GET("/all", hb.Visa.AllApplicationsHandler)
		hr.POST("/:id/approve", hb.Visa.ApproveDocumentHandler)
		hr.POST("/:id/reject", hb.Visa.RejectDocumentHandler)
	}
}

// RegisterFileRoutes registers the document upload and download endpoints.
func RegisterFileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/files")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/upload", hb.Storage.UploadFileHandler)
		api.GET("/download/:filename", hb.Storage.DownloadFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterOnboardingRoutes(r, hb)
	RegisterPersonalRoutes(r, hb)
	RegisterHRRoutes(r, hb)
	RegisterVisaRoutes(r, hb)
	RegisterFileRoutes(r, hb)
	RegisterHealthRoute(r)
}
