package routes

import (
	adminapi "cfp-portal/internal/api/admin"
	authapi "cfp-portal/internal/api/auth"
	pagesapi "cfp-portal/internal/api/pages"
	reviewsapi "cfp-portal/internal/api/reviews"
	subsapi "cfp-portal/internal/api/submissions"
	usersapi "cfp-portal/internal/api/users"
	"cfp-portal/internal/app/http/middleware"
	"cfp-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Managed page content is world-readable
	r.GET("/pages/front", pagesapi.GetFrontPage)
	r.GET("/pages/help", pagesapi.ListHelpPageItems)
	r.GET("/pages/deadline", pagesapi.GetDeadline)

	r.GET("/verify", authapi.VerifyEmail)
	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.GET("/profile", usersapi.GetProfile)
	auth.PUT("/profile", usersapi.UpdateProfile)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/submissions", subsapi.ListSubmissions)
	auth.POST("/submissions", subsapi.CreateSubmission)
	auth.GET("/submissions/:uuid", subsapi.GetSubmission)
	auth.PUT("/submissions/:uuid", subsapi.UpdateSubmission)
	auth.DELETE("/submissions/:uuid", subsapi.DeleteSubmission)
	auth.GET("/submissions/:uuid/file", subsapi.DownloadSubmissionFile)

	// Reviewers
	reviewer := auth.Group("/")
	reviewer.Use(middleware.RequireRole(users.RoleReviewer, users.RoleAdmin))
	reviewer.POST("/submissions/:uuid/reviews", reviewsapi.CreateReview)
	reviewer.PUT("/reviews/:uuid", reviewsapi.UpdateReview)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.GET("/submissions", adminapi.ListAllSubmissions)
	admin.GET("/reviews", adminapi.ListAllReviews)

	admin.GET("/export/submissions", adminapi.ExportSubmissionsCSV)
	admin.GET("/export/reviews", adminapi.ExportReviewsCSV)

	admin.POST("/content/deadline", adminapi.CreateDeadline)
	admin.PUT("/content/deadline", adminapi.UpdateDeadline)
	admin.POST("/content/front-page", adminapi.CreateFrontPage)
	admin.PUT("/content/front-page", adminapi.UpdateFrontPage)
	admin.POST("/content/registration-status", adminapi.CreateRegistrationStatus)
	admin.PUT("/content/registration-status", adminapi.UpdateRegistrationStatus)
	admin.POST("/content/help-page", adminapi.CreateHelpPageItem)
	admin.DELETE("/content/help-page/:id", adminapi.DeleteHelpPageItem)
}
