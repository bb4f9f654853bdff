package pages

import (
	"net/http"

	"cfp-portal/database"
	"cfp-portal/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// Public, read-only views of the managed-content records.

func GetFrontPage(c *gin.Context) {
	var fp content.FrontPage
	if err := database.DB.First(&fp).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Front page content not set"})
		return
	}
	c.JSON(http.StatusOK, fp)
}

func GetDeadline(c *gin.Context) {
	d, err := content.Deadline(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load deadline"})
		return
	}
	if d == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No deadline set"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func ListHelpPageItems(c *gin.Context) {
	var items []content.HelpPageItem
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load help page"})
		return
	}
	c.JSON(http.StatusOK, items)
}
