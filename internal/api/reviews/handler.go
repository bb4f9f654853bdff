package reviews

import (
	"net/http"

	"cfp-portal/database"
	"cfp-portal/internal/domain/submissions"

	"github.com/gin-gonic/gin"
)

type reviewInput struct {
	ExpertiseScore  int    `json:"expertise_score" binding:"required,min=1,max=5"`
	SubmissionScore int    `json:"submission_score" binding:"required,min=1,max=5"`
	Comments        string `json:"comments"`
}

// ------------------------------
// POST /submissions/:uuid/reviews (reviewer/admin)
// ------------------------------
func CreateReview(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sub submissions.Submission
	if err := database.DB.First(&sub, "id = ?", c.Param("uuid")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	review := submissions.SubmissionReview{
		SubmissionID:    sub.ID,
		UserID:          userID,
		ExpertiseScore:  input.ExpertiseScore,
		SubmissionScore: input.SubmissionScore,
		Comments:        input.Comments,
	}

	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": review.ID})
}

// ------------------------------
// PUT /reviews/:uuid (review author)
// ------------------------------
func UpdateReview(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var review submissions.SubmissionReview
	if err := database.DB.First(&review, "id = ?", c.Param("uuid")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if review.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review.ExpertiseScore = input.ExpertiseScore
	review.SubmissionScore = input.SubmissionScore
	review.Comments = input.Comments

	if err := review.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
}
