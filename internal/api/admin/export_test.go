package admin

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"cfp-portal/internal/domain/submissions"
	"cfp-portal/internal/domain/users"

	"github.com/glebarez/sqlite"
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
		&submissions.Submission{}, &submissions.SubmissionReview{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, name, country string) users.User {
	t.Helper()

	u := users.User{Username: username, Email: username + "@example.org", Role: users.RoleUser}
	require.NoError(t, db.Create(&u).Error)

	if name != "" || country != "" {
		require.NoError(t, db.Create(&users.Profile{UserID: u.ID, Name: name, Country: country}).Error)
	}
	return u
}

func seedSubmission(t *testing.T, db *gorm.DB, owner users.User, title string, submittedOn time.Time) submissions.Submission {
	t.Helper()

	sub := submissions.Submission{
		UserID:       owner.ID,
		Title:        title,
		Authors:      "A. Author",
		ContactEmail: owner.Email,
		SubmittedOn:  submittedOn,
	}
	require.NoError(t, db.Create(&sub).Error)
	return sub
}

func seedScores(t *testing.T, db *gorm.DB, sub submissions.Submission, reviewer users.User, scores ...int) {
	t.Helper()
	for _, score := range scores {
		r := submissions.SubmissionReview{
			SubmissionID:    sub.ID,
			UserID:          reviewer.ID,
			ExpertiseScore:  3,
			SubmissionScore: score,
			Comments:        "fine work",
		}
		require.NoError(t, db.Create(&r).Error)
	}
}

func exportRows(t *testing.T, db *gorm.DB, subs []submissions.Submission) [][]string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteSubmissionsCSV(&buf, db, subs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func loadSelection(t *testing.T, db *gorm.DB) []submissions.Submission {
	t.Helper()

	var subs []submissions.Submission
	require.NoError(t, db.Preload("User.Profile").Order("submitted_on ASC").Find(&subs).Error)
	return subs
}

func TestWriteSubmissionsCSV_HeaderAndRowCount(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "alice", "Alice", "SE")

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"First", "Second", "Third"} {
		seedSubmission(t, db, author, title, base.Add(time.Duration(i)*time.Hour))
	}

	rows := exportRows(t, db, loadSelection(t, db))

	require.Len(t, rows, 4) // header + 3
	require.Equal(t, []string{
		"Title", "Authors", "Contact", "Submitted On", "Score", "Submitter", "Submitter Email", "Country",
	}, rows[0])

	// rows come out in selection order
	require.Equal(t, "First", rows[1][0])
	require.Equal(t, "Second", rows[2][0])
	require.Equal(t, "Third", rows[3][0])
}

func TestWriteSubmissionsCSV_ScoreColumn(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "bob", "Bob", "DE")
	reviewer := seedUser(t, db, "carol", "Carol", "FR")

	base := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)
	unreviewed := seedSubmission(t, db, author, "Unreviewed", base)
	reviewed := seedSubmission(t, db, author, "Reviewed", base.Add(time.Hour))
	seedScores(t, db, reviewed, reviewer, 3, 4)

	rows := exportRows(t, db, loadSelection(t, db))
	require.Len(t, rows, 3)

	require.Equal(t, unreviewed.Title, rows[1][0])
	require.Equal(t, "", rows[1][4]) // no reviews, blank score

	require.Equal(t, reviewed.Title, rows[2][0])
	require.Equal(t, "3.5", rows[2][4])
}

func TestWriteSubmissionsCSV_MissingProfileTolerated(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "dave", "", "") // no profile row at all

	seedSubmission(t, db, author, "Orphan Fields", time.Date(2026, 6, 3, 9, 0, 0, 0, time.UTC))

	rows := exportRows(t, db, loadSelection(t, db))
	require.Len(t, rows, 2)

	require.Equal(t, "", rows[1][5])                  // submitter name blank
	require.Equal(t, "dave@example.org", rows[1][6])  // email still present
	require.Equal(t, "", rows[1][7])                  // country blank
}

func TestWriteReviewsCSV(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "erin", "Erin", "NO")
	reviewer := seedUser(t, db, "frank", "Frank", "US")

	sub := seedSubmission(t, db, author, "Graded Paper", time.Date(2026, 6, 4, 9, 0, 0, 0, time.UTC))
	seedScores(t, db, sub, reviewer, 4)

	var reviews []submissions.SubmissionReview
	require.NoError(t, db.Preload("User.Profile").Preload("Submission").
		Order("submitted_on ASC").Find(&reviews).Error)

	var buf bytes.Buffer
	require.NoError(t, WriteReviewsCSV(&buf, reviews))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"Reviewer", "Comments", "Submission Title"}, rows[0])
	require.Equal(t, []string{"Frank", "fine work", "Graded Paper"}, rows[1])
}
