package submissions

import (
	"time"

	"cfp-portal/internal/domain/submissions"
)

type ReviewDTO struct {
	ID              string    `json:"id"`
	SubmittedOn     time.Time `json:"submitted_on"`
	ExpertiseScore  int       `json:"expertise_score"`
	SubmissionScore int       `json:"submission_score"`
	Comments        string    `json:"comments"`
}

type SubmissionDTO struct {
	ID           string    `json:"id"`
	SubmittedOn  time.Time `json:"submitted_on"`
	Title        string    `json:"title"`
	Authors      string    `json:"authors"`
	ContactEmail string    `json:"contact_email"`
	Abstract     string    `json:"abstract"`
	Conflicts    string    `json:"conflicts"`
	FileHash     string    `json:"file_hash,omitempty"`
	HasFile      bool      `json:"has_file"`

	// Review data only present for reviewers and admins
	AverageScore *float64    `json:"average_score,omitempty"`
	TotalScore   *int64      `json:"total_score,omitempty"`
	Reviews      []ReviewDTO `json:"reviews,omitempty"`
}

func toSubmissionDTO(s submissions.Submission) SubmissionDTO {
	return SubmissionDTO{
		ID:           s.ID,
		SubmittedOn:  s.SubmittedOn,
		Title:        s.Title,
		Authors:      s.Authors,
		ContactEmail: s.ContactEmail,
		Abstract:     s.Abstract,
		Conflicts:    s.Conflicts,
		FileHash:     s.FileHash,
		HasFile:      s.FilePath != "",
	}
}

func toReviewDTOs(reviews []submissions.SubmissionReview) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, ReviewDTO{
			ID:              r.ID,
			SubmittedOn:     r.SubmittedOn,
			ExpertiseScore:  r.ExpertiseScore,
			SubmissionScore: r.SubmissionScore,
			Comments:        r.Comments,
		})
	}
	return out
}
