package reviews

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cfp-portal/database"
	"cfp-portal/internal/domain/submissions"
	"cfp-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB, users.User, submissions.Submission) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&users.User{}, &users.Profile{},
		&submissions.Submission{}, &submissions.SubmissionReview{},
	))

	// handlers read the package-global handle
	database.DB = db

	author := users.User{Username: "author", Email: "author@example.org", Role: users.RoleUser}
	require.NoError(t, db.Create(&author).Error)

	reviewer := users.User{Username: "reviewer", Email: "reviewer@example.org", Role: users.RoleReviewer}
	require.NoError(t, db.Create(&reviewer).Error)

	sub := submissions.Submission{UserID: author.ID, Title: "Paper", ContactEmail: author.Email}
	require.NoError(t, db.Create(&sub).Error)

	r := gin.New()
	asReviewer := func(c *gin.Context) {
		c.Set("user_id", reviewer.ID)
		c.Set("role", users.RoleReviewer)
	}
	r.POST("/submissions/:uuid/reviews", asReviewer, CreateReview)
	r.PUT("/reviews/:uuid", asReviewer, UpdateReview)

	return r, db, reviewer, sub
}

func postReview(t *testing.T, r *gin.Engine, submissionID string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/submissions/%s/reviews", submissionID), bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReview_ValidScores(t *testing.T) {
	r, db, _, sub := setupTest(t)

	w := postReview(t, r, sub.ID, map[string]any{
		"expertise_score":  1,
		"submission_score": 5,
		"comments":         "solid",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.Model(&submissions.SubmissionReview{}).
		Where("submission_id = ?", sub.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateReview_RejectsBoundaryViolations(t *testing.T) {
	r, db, _, sub := setupTest(t)

	for _, score := range []int{0, 6} {
		w := postReview(t, r, sub.ID, map[string]any{
			"expertise_score":  3,
			"submission_score": score,
		})
		require.Equal(t, http.StatusBadRequest, w.Code, "score %d must be rejected", score)
	}

	var count int64
	require.NoError(t, db.Model(&submissions.SubmissionReview{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestCreateReview_UnknownSubmission(t *testing.T) {
	r, _, _, _ := setupTest(t)

	w := postReview(t, r, "9b4d0b3a-0000-4000-8000-000000000000", map[string]any{
		"expertise_score":  3,
		"submission_score": 3,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateReview_OnlyAuthor(t *testing.T) {
	r, db, reviewer, sub := setupTest(t)

	other := users.User{Username: "other", Email: "other@example.org", Role: users.RoleReviewer}
	require.NoError(t, db.Create(&other).Error)

	review := submissions.SubmissionReview{
		SubmissionID:    sub.ID,
		UserID:          other.ID,
		ExpertiseScore:  2,
		SubmissionScore: 2,
	}
	require.NoError(t, db.Create(&review).Error)
	_ = reviewer

	raw, _ := json.Marshal(map[string]any{
		"expertise_score":  4,
		"submission_score": 4,
	})
	req := httptest.NewRequest(http.MethodPut, "/reviews/"+review.ID, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateReview_ByAuthor(t *testing.T) {
	r, db, reviewer, sub := setupTest(t)

	review := submissions.SubmissionReview{
		SubmissionID:    sub.ID,
		UserID:          reviewer.ID,
		ExpertiseScore:  2,
		SubmissionScore: 2,
	}
	require.NoError(t, db.Create(&review).Error)

	raw, _ := json.Marshal(map[string]any{
		"expertise_score":  4,
		"submission_score": 5,
		"comments":         "changed my mind",
	})
	req := httptest.NewRequest(http.MethodPut, "/reviews/"+review.ID, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded submissions.SubmissionReview
	require.NoError(t, db.First(&reloaded, "id = ?", review.ID).Error)
	require.Equal(t, 5, reloaded.SubmissionScore)
	require.Equal(t, "changed my mind", reloaded.Comments)
}
