package submissions

import (
	"testing"
	"time"

	"cfp-portal/internal/domain/users"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&users.User{}, &users.Profile{},
		&Submission{}, &SubmissionReview{},
	))
	return db
}

func seedSubmission(t *testing.T, db *gorm.DB, username string) Submission {
	t.Helper()

	u := users.User{Username: username, Email: username + "@example.org", Role: users.RoleUser}
	require.NoError(t, db.Create(&u).Error)

	sub := Submission{
		UserID:       u.ID,
		Title:        "A Paper",
		ContactEmail: username + "@example.org",
	}
	require.NoError(t, db.Create(&sub).Error)
	require.NotEmpty(t, sub.ID)
	require.False(t, sub.SubmittedOn.IsZero())
	return sub
}

func seedReview(t *testing.T, db *gorm.DB, sub Submission, score int, submittedOn time.Time) SubmissionReview {
	t.Helper()

	name := "rev-" + uuid.NewString()[:8]
	u := users.User{Username: name, Email: name + "@example.org", Role: users.RoleReviewer}
	require.NoError(t, db.Create(&u).Error)

	r := SubmissionReview{
		SubmissionID:    sub.ID,
		UserID:          u.ID,
		SubmittedOn:     submittedOn,
		ExpertiseScore:  3,
		SubmissionScore: score,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func TestAverageScore_NoReviews(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubmission(t, db, "author1")

	avg, err := AverageScore(db, sub.ID)
	require.NoError(t, err)
	require.Nil(t, avg)

	total, err := TotalScore(db, sub.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
}

func TestScores_ThreeReviews(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubmission(t, db, "author2")

	now := time.Now()
	for i, score := range []int{3, 4, 5} {
		seedReview(t, db, sub, score, now.Add(time.Duration(i)*time.Minute))
	}

	avg, err := AverageScore(db, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	require.InDelta(t, 4.0, *avg, 1e-9)

	total, err := TotalScore(db, sub.ID)
	require.NoError(t, err)
	require.EqualValues(t, 12, total)
}

func TestReviewsFor_OrderedBySubmittedOn(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubmission(t, db, "author3")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	// inserted out of order on purpose
	second := seedReview(t, db, sub, 4, base.Add(time.Hour))
	first := seedReview(t, db, sub, 3, base)
	third := seedReview(t, db, sub, 5, base.Add(2*time.Hour))

	reviews, err := ReviewsFor(db, sub.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	require.Equal(t, first.ID, reviews[0].ID)
	require.Equal(t, second.ID, reviews[1].ID)
	require.Equal(t, third.ID, reviews[2].ID)
}

func TestReviewValidate_ScoreBounds(t *testing.T) {
	valid := SubmissionReview{ExpertiseScore: 1, SubmissionScore: 5}
	require.NoError(t, valid.Validate())

	tooLow := SubmissionReview{ExpertiseScore: 3, SubmissionScore: 0}
	require.Error(t, tooLow.Validate())

	tooHigh := SubmissionReview{ExpertiseScore: 6, SubmissionScore: 3}
	require.Error(t, tooHigh.Validate())
}

func TestReviewCreate_RejectsOutOfRangeScore(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubmission(t, db, "author4")

	u := users.User{Username: "strict-reviewer", Email: "strict@example.org", Role: users.RoleReviewer}
	require.NoError(t, db.Create(&u).Error)

	bad := SubmissionReview{
		SubmissionID:    sub.ID,
		UserID:          u.ID,
		ExpertiseScore:  3,
		SubmissionScore: 6,
	}
	require.Error(t, db.Create(&bad).Error)

	var count int64
	require.NoError(t, db.Model(&SubmissionReview{}).Where("submission_id = ?", sub.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDeleteWithReviews_Cascades(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubmission(t, db, "author5")
	seedReview(t, db, sub, 3, time.Now())
	seedReview(t, db, sub, 4, time.Now())

	require.NoError(t, DeleteWithReviews(db, sub.ID))

	var subCount, reviewCount int64
	require.NoError(t, db.Model(&Submission{}).Where("id = ?", sub.ID).Count(&subCount).Error)
	require.NoError(t, db.Model(&SubmissionReview{}).Where("submission_id = ?", sub.ID).Count(&reviewCount).Error)
	require.EqualValues(t, 0, subCount)
	require.EqualValues(t, 0, reviewCount)
}

func TestSubmissionBeforeCreate_AssignsIdentityOnce(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubmission(t, db, "author6")

	id := sub.ID
	stamp := sub.SubmittedOn

	sub.Title = "Retitled"
	require.NoError(t, db.Save(&sub).Error)

	var reloaded Submission
	require.NoError(t, db.First(&reloaded, "id = ?", id).Error)
	require.Equal(t, id, reloaded.ID)
	require.WithinDuration(t, stamp, reloaded.SubmittedOn, time.Second)
	require.Equal(t, "Retitled", reloaded.Title)
}
