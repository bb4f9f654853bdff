package submissions

import (
	"time"

	"cfp-portal/internal/domain/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is one paper entry. The uuid primary key is the public
// identifier used in every URL that references the paper.
type Submission struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uint       `gorm:"not null;index" json:"-"`
	User   users.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	SubmittedOn time.Time `gorm:"not null" json:"submitted_on"`

	Title        string `gorm:"size:128;not null" json:"title"`
	Authors      string `gorm:"type:text" json:"authors"`
	ContactEmail string `gorm:"not null" json:"contact_email"`
	Abstract     string `gorm:"type:text" json:"abstract"`
	Conflicts    string `gorm:"type:text" json:"conflicts"`

	// Storage reference and content hash of the uploaded paper. The hash is
	// computed once while the upload is streamed out and never changes
	// unless the file itself is replaced.
	FilePath string `json:"file_path,omitempty"`
	FileHash string `gorm:"size:64" json:"file_hash,omitempty"`

	Reviews []SubmissionReview `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate assigns the random public identifier and the one-time
// submission timestamp on the application side, so they hold on any
// database backend.
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SubmittedOn.IsZero() {
		s.SubmittedOn = time.Now()
	}
	return nil
}
