package users

import "time"

const (
	TokenTypeVerify        = "verify"
	TokenTypePasswordReset = "password_reset"
)

// One outstanding token per user and purpose. The index is scoped to
// (user_id, type) so a pending signup token never blocks a password
// reset for the same account.
type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_verification_tokens_user_type"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Token     string `gorm:"uniqueIndex"`
	Type      string `gorm:"uniqueIndex:idx_verification_tokens_user_type"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
