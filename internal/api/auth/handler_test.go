package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cfp-portal/config"
	"cfp-portal/database"
	"cfp-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&users.User{}, &users.VerificationToken{}, &users.Profile{}))
	return db
}

func TestIsPasswordStrong(t *testing.T) {
	require.True(t, isPasswordStrong("abcdefg1"))
	require.True(t, isPasswordStrong("C0rrectHorse"))

	require.False(t, isPasswordStrong("short1"))       // too short
	require.False(t, isPasswordStrong("onlyletters"))  // no digit
	require.False(t, isPasswordStrong("123456789012")) // no letter
}

func TestIsEmailValid(t *testing.T) {
	require.True(t, isEmailValid("someone@example.org"))
	require.True(t, isEmailValid("first.last+tag@sub.example.co"))

	require.False(t, isEmailValid("not-an-email"))
	require.False(t, isEmailValid("missing@tld"))
	require.False(t, isEmailValid("@example.org"))
}

func TestIssueAppJWT_RoundTrip(t *testing.T) {
	config.JWT_SECRET = "test-secret"

	user := users.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.org",
		Role:     users.RoleReviewer,
	}

	tokenString, err := issueAppJWT(user)
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWT_SECRET), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.EqualValues(t, 42, claims["user_id"])
	require.Equal(t, "alice", claims["username"])
	require.Equal(t, users.RoleReviewer, claims["role"])
}

func TestGenerateVerificationToken_UniqueHex(t *testing.T) {
	a := generateVerificationToken()
	b := generateVerificationToken()

	require.Len(t, a, 32)
	require.Len(t, b, 32)
	require.NotEqual(t, a, b)
}

func TestRequestPasswordReset_UnverifiedUserStillGetsStoredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	database.DB = db

	// an unverified account still holds its signup token
	u := users.User{Username: "pending", Email: "pending@example.org", Role: users.RoleUser, IsVerified: false}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&users.VerificationToken{
		UserID:    u.ID,
		Token:     generateVerificationToken(),
		Type:      users.TokenTypeVerify,
		ExpiresAt: time.Now().Add(48 * time.Hour),
	}).Error)

	r := gin.New()
	r.POST("/request-password-reset", RequestPasswordReset)

	req := httptest.NewRequest(http.MethodPost, "/request-password-reset",
		strings.NewReader(`{"email":"pending@example.org"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// the 200 must be backed by a stored reset token, next to the signup one
	var resetCount int64
	require.NoError(t, db.Model(&users.VerificationToken{}).
		Where("user_id = ? AND type = ?", u.ID, users.TokenTypePasswordReset).
		Count(&resetCount).Error)
	require.EqualValues(t, 1, resetCount)

	var verifyCount int64
	require.NoError(t, db.Model(&users.VerificationToken{}).
		Where("user_id = ? AND type = ?", u.ID, users.TokenTypeVerify).
		Count(&verifyCount).Error)
	require.EqualValues(t, 1, verifyCount)
}
