package admin

import (
	"net/http"
	"time"

	"cfp-portal/database"
	"cfp-portal/internal/domain/submissions"
	"cfp-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsVerified  bool       `json:"is_verified"`
	Name        string     `json:"name"`
	Country     string     `json:"country"`
	Affiliation string     `json:"affiliation"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type AdminSubmission struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Submitter    string   `json:"submitter"`
	SubmittedOn  string   `json:"submitted_on"`
	AverageScore *float64 `json:"average_score,omitempty"`
}

type AdminReview struct {
	ID              string `json:"id"`
	SubmissionTitle string `json:"submission_title"`
	Reviewer        string `json:"reviewer"`
	SubmittedOn     string `json:"submitted_on"`
	ExpertiseScore  int    `json:"expertise_score"`
	SubmissionScore int    `json:"submission_score"`
}

func AdminDashboard(c *gin.Context) {
	var userCount, submissionCount, reviewCount int64
	database.DB.Model(&users.User{}).Count(&userCount)
	database.DB.Model(&submissions.Submission{}).Count(&submissionCount)
	database.DB.Model(&submissions.SubmissionReview{}).Count(&reviewCount)

	c.JSON(http.StatusOK, gin.H{
		"users":       userCount,
		"submissions": submissionCount,
		"reviews":     reviewCount,
	})
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	err := database.DB.Preload("Profile").Find(&all).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	var adminUsers []AdminUser
	for _, u := range all {
		au := AdminUser{
			ID:          u.ID,
			Username:    u.Username,
			Email:       u.Email,
			Role:        u.Role,
			IsVerified:  u.IsVerified,
			LastLoginAt: u.LastLoginAt,
		}
		if u.Profile != nil {
			au.Name = u.Profile.Name
			au.Country = u.Profile.Country
			au.Affiliation = u.Profile.Affiliation
		}
		adminUsers = append(adminUsers, au)
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllSubmissions(c *gin.Context) {
	var subs []submissions.Submission
	err := database.DB.Preload("User").Order("submitted_on ASC").Find(&subs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	var result []AdminSubmission
	for _, s := range subs {
		avg, err := submissions.AverageScore(database.DB, s.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute score"})
			return
		}
		result = append(result, AdminSubmission{
			ID:           s.ID,
			Title:        s.Title,
			Submitter:    s.User.Username,
			SubmittedOn:  s.SubmittedOn.Format("2006-01-02 15:04"),
			AverageScore: avg,
		})
	}

	c.JSON(http.StatusOK, result)
}

func ListAllReviews(c *gin.Context) {
	var reviews []submissions.SubmissionReview
	err := database.DB.Preload("User").Order("submitted_on ASC").Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	// Titles fetched in one pass instead of one query per row
	titles := map[string]string{}
	var subs []submissions.Submission
	if err := database.DB.Select("id", "title").Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}
	for _, s := range subs {
		titles[s.ID] = s.Title
	}

	var result []AdminReview
	for _, r := range reviews {
		result = append(result, AdminReview{
			ID:              r.ID,
			SubmissionTitle: titles[r.SubmissionID],
			Reviewer:        r.User.Username,
			SubmittedOn:     r.SubmittedOn.Format("2006-01-02 15:04"),
			ExpertiseScore:  r.ExpertiseScore,
			SubmissionScore: r.SubmissionScore,
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Profile").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var subs []submissions.Submission
	if err := database.DB.Where("user_id = ?", userID).Order("submitted_on ASC").Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	var reviews []submissions.SubmissionReview
	if err := database.DB.Where("user_id = ?", userID).Order("submitted_on ASC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        user,
		"submissions": subs,
		"reviews":     reviews,
	})
}
