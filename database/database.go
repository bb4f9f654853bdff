package database

import (
	"fmt"
	"log"
	"os"

	"cfp-portal/internal/domain/content"
	"cfp-portal/internal/domain/submissions"
	"cfp-portal/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate creates/updates the schema for every domain model. Split out so
// tests can run it against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// accounts
		&users.User{},
		&users.VerificationToken{},
		&users.Profile{},

		// papers
		&submissions.Submission{},
		&submissions.SubmissionReview{},

		// managed content
		&content.SubmissionDeadline{},
		&content.FrontPage{},
		&content.RegistrationStatus{},
		&content.HelpPageItem{},
	)
}
