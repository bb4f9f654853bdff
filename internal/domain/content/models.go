package content

import "time"

/*
	Managed content
	---------------
	Administrator-edited records that drive page copy without a code
	deploy. The deadline, front-page and registration-status kinds are
	single global values: the guard in singleton.go refuses a second row.
	Help-page items are an ordinary list.
*/

// SubmissionDeadline is the cutoff after which authors can no longer
// create or edit submissions.
type SubmissionDeadline struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Name string    `gorm:"size:64" json:"name"`
	Date time.Time `gorm:"not null" json:"date"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// FrontPage holds the two blocks of copy shown on the portal home page.
type FrontPage struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	Name                string `gorm:"size:64" json:"name"`
	LeadingParagraph    string `gorm:"type:text" json:"leading_paragraph"`
	SubmissionParagraph string `gorm:"type:text" json:"submission_paragraph"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// RegistrationStatus gates the signup endpoint. When no record exists
// registration is treated as open.
type RegistrationStatus struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64" json:"name"`
	Open bool   `gorm:"not null;default:true" json:"open"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// HelpPageItem is one entry on the help page. Plain list, no singleton
// constraint.
type HelpPageItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:64" json:"name"`
	Title   string `gorm:"size:64" json:"title"`
	Content string `gorm:"type:text" json:"content"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
