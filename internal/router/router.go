package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hackxperience/hackxperience/internal/handlers"
	"github.com/hackxperience/hackxperience/internal/middleware"
	"github.com/hackxperience/hackxperience/internal/types"
)

func NewRouter(uploadDir string) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Stored presentation URLs resolve against this mount
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/spline-proxy/*path", handlers.AssetProxy)
		api.GET("/ws/:table", middleware.AuthMiddleware(), handlers.WebSocket)

		// Public form submissions
		api.POST("/registrations", handlers.CreateRegistration)
		api.POST("/submissions", handlers.CreateSubmission)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.LoginAdmin)
			auth.POST("/logout", handlers.LogoutAdmin)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		admin := api.Group("/admin", middleware.AuthMiddleware())
		{
			admin.GET("/registrations", handlers.ListRegistrations)
			admin.GET("/registrations/teams", handlers.ListTeams)
			admin.GET("/submissions", handlers.ListSubmissions)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
