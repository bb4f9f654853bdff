package users

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Profile holds the conference-facing identity of an account, separate from
// the credentials. Every user has exactly one.
type Profile struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex:idx_profiles_user_id"`

	Name           string `gorm:"size:128"`
	Country        string `gorm:"size:48"`
	Affiliation    string `gorm:"size:32"`
	EmailConfirmed bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

/*
	Profile provisioning
	--------------------
	- Responsible ONLY for making sure a profile row exists for a user.
	- Called inside the registration transaction, and again lazily by any
	  read that needs user.Profile (covers accounts created before this
	  code, and Google sign-ups).
	- Second and later calls are no-ops: the unique index on user_id plus
	  FirstOrCreate make a duplicate row impossible.

	IMPORTANT: pass db in, do NOT import cfp-portal/database here (avoids
	import cycle).
*/

// EnsureProfile returns the user's profile, creating an empty one if none
// exists yet. Must be called AFTER the user has an ID (after Create).
func EnsureProfile(db *gorm.DB, userID uint) (*Profile, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID missing (call EnsureProfile after Create)")
	}

	var profile Profile
	err := db.Where(Profile{UserID: userID}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
