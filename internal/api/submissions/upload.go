package submissions

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"cfp-portal/internal/infra/storage"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize caps submission files at 50 MiB.
const MaxUploadSize = 52428000

// Whitelist of acceptable file types for submissions
var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-powerpoint":    true,
	"application/zip":                  true,
	"application/x-zip":                true,
	"application/octet-stream":         true,
	"application/x-zip-compressed":     true,
}

// Files is the upload backend, wired once at startup.
var Files storage.Store

func InitStorage() {
	store, err := storage.FromConfig()
	if err != nil {
		log.Fatal("❌ Failed to init file storage:", err)
	}
	Files = store
}

func validateUpload(header *multipart.FileHeader) error {
	if header.Size > MaxUploadSize {
		return fmt.Errorf("file exceeds the 50 MiB limit")
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedContentTypes[contentType] {
		return fmt.Errorf("file type %q is not accepted", contentType)
	}
	return nil
}

// saveUpload streams the file into the store and hashes it in the same
// pass. Returns the storage reference and the sha256 hex digest.
func saveUpload(c *gin.Context, header *multipart.FileHeader) (string, string, error) {
	if err := validateUpload(header); err != nil {
		return "", "", err
	}

	f, err := header.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	hasher := sha256.New()
	key := storage.SubmissionKey()

	ref, err := Files.Save(c.Request.Context(), key, io.TeeReader(f, hasher))
	if err != nil {
		return "", "", err
	}

	return ref, hex.EncodeToString(hasher.Sum(nil)), nil
}
