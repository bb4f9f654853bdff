package users

import (
	"time"
)

const (
	RoleUser     = "user"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"not null;uniqueIndex:idx_users_username"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	LastLoginAt *time.Time `gorm:"column:last_login_at"`

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReviewer reports whether the user may open other people's submissions
// and file reviews. Admins always can.
func (u *User) IsReviewer() bool {
	return u.Role == RoleReviewer || u.Role == RoleAdmin
}
