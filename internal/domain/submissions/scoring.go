package submissions

import (
	"database/sql"

	"gorm.io/gorm"
)

/*
	Scoring
	-------
	Scores are never persisted on the submission row. Every call recomputes
	from the live review set, so there is no denormalized value that can
	drift. Callers rendering a list should fetch once per row and reuse the
	result within the request.
*/

// AverageScore returns the mean submission_score over all reviews of the
// given submission. Nil means no reviews exist yet ("no score").
func AverageScore(db *gorm.DB, submissionID string) (*float64, error) {
	var avg sql.NullFloat64
	err := db.Model(&SubmissionReview{}).
		Where("submission_id = ?", submissionID).
		Select("AVG(submission_score)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// TotalScore returns the sum of submission_score over all reviews of the
// given submission; zero when none exist.
func TotalScore(db *gorm.DB, submissionID string) (int64, error) {
	var total int64
	err := db.Model(&SubmissionReview{}).
		Where("submission_id = ?", submissionID).
		Select("COALESCE(SUM(submission_score), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ReviewsFor lists a submission's reviews oldest-first, the order they are
// shown in.
func ReviewsFor(db *gorm.DB, submissionID string) ([]SubmissionReview, error) {
	var reviews []SubmissionReview
	err := db.Where("submission_id = ?", submissionID).
		Order("submitted_on ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteWithReviews removes a submission and its reviews in one
// transaction. The FK constraint already cascades on Postgres; deleting the
// reviews explicitly keeps the behavior identical on backends that don't
// enforce it.
func DeleteWithReviews(db *gorm.DB, submissionID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_id = ?", submissionID).
			Delete(&SubmissionReview{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Submission{ID: submissionID}).Error
	})
}
