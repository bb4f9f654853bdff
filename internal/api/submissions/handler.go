package submissions

import (
	"errors"
	"io"
	"net/http"
	"time"

	"cfp-portal/database"
	"cfp-portal/internal/domain/content"
	"cfp-portal/internal/domain/submissions"
	"cfp-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func isReviewer(c *gin.Context) bool {
	role := c.GetString("role")
	return role == users.RoleReviewer || role == users.RoleAdmin
}

// deadlinePassed reports whether the configured submission deadline has
// gone by. No configured deadline means submissions stay open.
func deadlinePassed() (bool, error) {
	d, err := content.Deadline(database.DB)
	if err != nil {
		return false, err
	}
	return d != nil && d.Date.Before(time.Now()), nil
}

// ------------------------------
// POST /submissions (multipart)
// ------------------------------
func CreateSubmission(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	closed, err := deadlinePassed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check deadline"})
		return
	}
	if closed {
		c.JSON(http.StatusForbidden, gin.H{"error": "The submission deadline has passed"})
		return
	}

	var input struct {
		Title        string `form:"title" binding:"required,max=128"`
		Authors      string `form:"authors"`
		ContactEmail string `form:"contact_email" binding:"required,email"`
		Abstract     string `form:"abstract"`
		Conflicts    string `form:"conflicts"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := submissions.Submission{
		UserID:       userID,
		Title:        input.Title,
		Authors:      input.Authors,
		ContactEmail: input.ContactEmail,
		Abstract:     input.Abstract,
		Conflicts:    input.Conflicts,
	}

	// The paper file is optional at creation time
	if header, err := c.FormFile("file"); err == nil {
		ref, hash, err := saveUpload(c, header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sub.FilePath = ref
		sub.FileHash = hash
	}

	if err := database.DB.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, toSubmissionDTO(sub))
}

// ------------------------------
// GET /submissions/:uuid
// ------------------------------
func GetSubmission(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var sub submissions.Submission
	if err := database.DB.First(&sub, "id = ?", c.Param("uuid")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	reviewer := isReviewer(c)
	if sub.UserID != userID && !reviewer {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	dto := toSubmissionDTO(sub)

	// Authors don't see scores on their own paper
	if reviewer {
		avg, err := submissions.AverageScore(database.DB, sub.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute score"})
			return
		}
		total, err := submissions.TotalScore(database.DB, sub.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute score"})
			return
		}
		reviews, err := submissions.ReviewsFor(database.DB, sub.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
			return
		}
		dto.AverageScore = avg
		dto.TotalScore = &total
		dto.Reviews = toReviewDTOs(reviews)
	}

	c.JSON(http.StatusOK, dto)
}

// ------------------------------
// GET /submissions
// ------------------------------
func ListSubmissions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	q := database.DB.Order("submitted_on ASC")
	if !isReviewer(c) {
		q = q.Where("user_id = ?", userID)
	}

	var subs []submissions.Submission
	if err := q.Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	out := make([]SubmissionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, toSubmissionDTO(s))
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// PUT /submissions/:uuid (owner, pre-deadline)
// ------------------------------
func UpdateSubmission(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var sub submissions.Submission
	if err := database.DB.First(&sub, "id = ?", c.Param("uuid")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if sub.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	closed, err := deadlinePassed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check deadline"})
		return
	}
	if closed {
		c.JSON(http.StatusForbidden, gin.H{"error": "The submission deadline has passed"})
		return
	}

	var input struct {
		Title        string `form:"title" binding:"required,max=128"`
		Authors      string `form:"authors"`
		ContactEmail string `form:"contact_email" binding:"required,email"`
		Abstract     string `form:"abstract"`
		Conflicts    string `form:"conflicts"`
	}
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub.Title = input.Title
	sub.Authors = input.Authors
	sub.ContactEmail = input.ContactEmail
	sub.Abstract = input.Abstract
	sub.Conflicts = input.Conflicts

	if header, err := c.FormFile("file"); err == nil {
		ref, hash, err := saveUpload(c, header)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sub.FilePath = ref
		sub.FileHash = hash
	}

	if err := database.DB.Save(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}

	c.JSON(http.StatusOK, toSubmissionDTO(sub))
}

// ------------------------------
// DELETE /submissions/:uuid (owner or admin)
// ------------------------------
func DeleteSubmission(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var sub submissions.Submission
	if err := database.DB.First(&sub, "id = ?", c.Param("uuid")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	if sub.UserID != userID && c.GetString("role") != users.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if err := submissions.DeleteWithReviews(database.DB, sub.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission deleted"})
}

// ------------------------------
// GET /submissions/:uuid/file
// ------------------------------
func DownloadSubmissionFile(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var sub submissions.Submission
	if err := database.DB.First(&sub, "id = ?", c.Param("uuid")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if sub.UserID != userID && !isReviewer(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	if sub.FilePath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "No file attached"})
		return
	}

	r, err := Files.Open(c.Request.Context(), sub.FilePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
		return
	}
	defer r.Close()

	c.Header("Content-Disposition", "attachment")
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, r)
}
