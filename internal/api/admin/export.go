package admin

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"

	"cfp-portal/database"
	"cfp-portal/internal/domain/submissions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

/*
	CSV exports
	-----------
	Each export materializes the selection ONCE, ordered, with the owning
	user and profile preloaded, then walks that slice. Scores are computed
	per row from the live review set; a submission with no reviews gets a
	blank score cell. Missing profile fields come out blank, never as an
	error.
*/

func formatScore(avg *float64) string {
	if avg == nil {
		return ""
	}
	return strconv.FormatFloat(*avg, 'g', -1, 64)
}

// WriteSubmissionsCSV writes the submission export for the given selection,
// preserving its order. Callers must preload User.Profile.
func WriteSubmissionsCSV(w io.Writer, db *gorm.DB, subs []submissions.Submission) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{
		"Title", "Authors", "Contact", "Submitted On", "Score", "Submitter", "Submitter Email", "Country",
	}); err != nil {
		return err
	}

	for _, s := range subs {
		avg, err := submissions.AverageScore(db, s.ID)
		if err != nil {
			return err
		}

		name := ""
		country := ""
		if s.User.Profile != nil {
			name = s.User.Profile.Name
			country = s.User.Profile.Country
		}

		if err := writer.Write([]string{
			s.Title,
			s.Authors,
			s.ContactEmail,
			s.SubmittedOn.Format("2006-01-02 15:04"),
			formatScore(avg),
			name,
			s.User.Email,
			country,
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteReviewsCSV writes the review export for the given selection,
// preserving its order. Callers must preload User.Profile and Submission.
func WriteReviewsCSV(w io.Writer, reviews []submissions.SubmissionReview) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Reviewer", "Comments", "Submission Title"}); err != nil {
		return err
	}

	for _, r := range reviews {
		name := ""
		if r.User.Profile != nil {
			name = r.User.Profile.Name
		}
		if err := writer.Write([]string{name, r.Comments, r.Submission.Title}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// submissionSelection applies the optional list filters (submitter
// username, submitted_on range) and returns one ordered materialization.
func submissionSelection(c *gin.Context) ([]submissions.Submission, error) {
	q := database.DB.Preload("User.Profile").Order("submitted_on ASC")

	if username := c.Query("submitter"); username != "" {
		q = q.Joins("JOIN users ON users.id = submissions.user_id").
			Where("users.username = ?", username)
	}
	if from := c.Query("from"); from != "" {
		q = q.Where("submitted_on >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("submitted_on <= ?", to)
	}

	var subs []submissions.Submission
	err := q.Find(&subs).Error
	return subs, err
}

// ------------------------------
// GET /admin/export/submissions
// ------------------------------
func ExportSubmissionsCSV(c *gin.Context) {
	subs, err := submissionSelection(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submissions"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=cfp-submissions.csv")
	c.Status(http.StatusOK)

	if err := WriteSubmissionsCSV(c.Writer, database.DB, subs); err != nil {
		// headers are already out; nothing sensible left to send
		_ = c.Error(err)
	}
}

// ------------------------------
// GET /admin/export/reviews
// ------------------------------
func ExportReviewsCSV(c *gin.Context) {
	q := database.DB.Preload("User.Profile").Preload("Submission").Order("submitted_on ASC")

	if username := c.Query("reviewer"); username != "" {
		q = q.Joins("JOIN users ON users.id = submission_reviews.user_id").
			Where("users.username = ?", username)
	}

	var reviews []submissions.SubmissionReview
	if err := q.Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=cfp-review-comments.csv")
	c.Status(http.StatusOK)

	if err := WriteReviewsCSV(c.Writer, reviews); err != nil {
		_ = c.Error(err)
	}
}
