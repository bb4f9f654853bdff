package content

import (
	"errors"

	"gorm.io/gorm"
)

// ErrAlreadyExists is returned when a second instance of a singleton
// content kind is created. The admin layer surfaces it as a refused
// action, not a server failure.
var ErrAlreadyExists = errors.New("content record already exists")

// Singleton marks the content kinds limited to one row.
type Singleton interface {
	pinID(id uint)
}

func (d *SubmissionDeadline) pinID(id uint) { d.ID = id }
func (f *FrontPage) pinID(id uint)          { f.ID = id }
func (r *RegistrationStatus) pinID(id uint) { r.ID = id }

// CreateSingleton inserts rec only if no row of its kind exists yet. The
// record is pinned to primary key 1, so even when two administrators
// race past the existence check on separate connections, the second
// insert fails on the key and comes back as ErrAlreadyExists. This holds
// at READ COMMITTED isolation; no table lock needed.
func CreateSingleton(db *gorm.DB, rec Singleton) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(rec).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}
		rec.pinID(1)
		return tx.Create(rec).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

// Deadline returns the configured submission deadline, or nil when none
// has been set.
func Deadline(db *gorm.DB) (*SubmissionDeadline, error) {
	var d SubmissionDeadline
	err := db.First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// RegistrationOpen reports whether new accounts may be created. No record
// means open.
func RegistrationOpen(db *gorm.DB) (bool, error) {
	var rs RegistrationStatus
	err := db.First(&rs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return rs.Open, nil
}
