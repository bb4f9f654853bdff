package users

import (
	"net/http"

	"cfp-portal/database"
	"cfp-portal/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type ProfileDTO struct {
	Name           string `json:"name"`
	Country        string `json:"country"`
	Affiliation    string `json:"affiliation"`
	EmailConfirmed bool   `json:"email_confirmed"`
}

type MeResponse struct {
	ID       uint       `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	Verified bool       `json:"verified"`
	Profile  ProfileDTO `json:"profile"`
}

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Lazily provisions for accounts that predate profile rows
	profile, err := users.EnsureProfile(database.DB, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Verified: user.IsVerified,
		Profile: ProfileDTO{
			Name:           profile.Name,
			Country:        profile.Country,
			Affiliation:    profile.Affiliation,
			EmailConfirmed: profile.EmailConfirmed,
		},
	})
}

func GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := users.EnsureProfile(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, ProfileDTO{
		Name:           profile.Name,
		Country:        profile.Country,
		Affiliation:    profile.Affiliation,
		EmailConfirmed: profile.EmailConfirmed,
	})
}

func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		Name        string `json:"name" binding:"required,max=128"`
		Country     string `json:"country" binding:"required,max=48"`
		Affiliation string `json:"affiliation" binding:"max=32"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := users.EnsureProfile(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	profile.Name = input.Name
	profile.Country = input.Country
	profile.Affiliation = input.Affiliation

	if err := database.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
