package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mentorhub/handlers"
	"mentorhub/middleware"
	"mentorhub/models"
)

// RegisterUserRoutes registers account and auth endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.GET("/verify-email", hb.VerifyEmailHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/google", hb.GoogleAuthHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/me", hb.GetProfileHandler)
		protected.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterSessionRoutes registers the booking window and commit endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/:id", hb.GetSessionHandler)
		api.GET("/mentor/:mentorId", hb.ListMentorSessionsHandler)
		api.POST("/book", middleware.RequireRole(models.RoleMentee), hb.BookSessionHandler)
		api.POST("", middleware.RequireRole(models.RoleMentor), hb.CreateSessionHandler)
	}
}

// RegisterMentorRoutes registers credential verification endpoints.
func RegisterMentorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mentor")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/verification", middleware.RequireRole(models.RoleMentor), hb.SubmitVerificationHandler)
		api.GET("/verification", middleware.RequireRole(models.RoleMentor), hb.GetVerificationHandler)
		api.GET("/verification/document/:documentId", hb.DocumentURLHandler)
	}
}

// RegisterCommunityRoutes registers the question and answer board.
func RegisterCommunityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/community")
	{
		api.GET("/questions", hb.ListQuestionsHandler)
		api.GET("/questions/:id", hb.GetQuestionHandler)
		api.GET("/questions/:id/answers", hb.ListAnswersHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/questions", hb.AskQuestionHandler)
		protected.POST("/questions/:id/answers", hb.AnswerQuestionHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		adminGroup.PUT("/mentors/:id/approve", hb.ApproveMentorHandler)
		adminGroup.GET("/documents/:documentId", hb.DocumentURLHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterMentorRoutes(r, hb)
	RegisterCommunityRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
