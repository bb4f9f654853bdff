package submissions

import (
	"fmt"
	"time"

	"cfp-portal/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinScore = 1
	MaxScore = 5
)

// SubmissionReview ties one reviewer to one submission with two 1..5
// scores and free-text comments. A reviewer may file more than one review
// for the same paper; nothing here forbids it.
type SubmissionReview struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SubmissionID string     `gorm:"type:uuid;not null;index" json:"submission_id"`
	Submission   Submission `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UserID       uint       `gorm:"not null;index" json:"-"`
	User         users.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	SubmittedOn time.Time `gorm:"not null" json:"submitted_on"`

	ExpertiseScore  int    `gorm:"not null;default:1" json:"expertise_score"`
	SubmissionScore int    `gorm:"not null;default:1" json:"submission_score"`
	Comments        string `gorm:"type:text" json:"comments"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (r *SubmissionReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.SubmittedOn.IsZero() {
		r.SubmittedOn = time.Now()
	}
	return r.Validate()
}

// Validate checks the inclusive 1..5 score range. The HTTP layer rejects
// bad scores before they get here; this is the last line before a write.
func (r *SubmissionReview) Validate() error {
	if r.ExpertiseScore < MinScore || r.ExpertiseScore > MaxScore {
		return fmt.Errorf("expertise score %d out of range [%d,%d]", r.ExpertiseScore, MinScore, MaxScore)
	}
	if r.SubmissionScore < MinScore || r.SubmissionScore > MaxScore {
		return fmt.Errorf("submission score %d out of range [%d,%d]", r.SubmissionScore, MinScore, MaxScore)
	}
	return nil
}
