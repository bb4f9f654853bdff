package admin

import (
	"errors"
	"net/http"
	"time"

	"cfp-portal/database"
	"cfp-portal/internal/domain/content"

	"github.com/gin-gonic/gin"
)

// Managed-content administration. The deadline, front-page and
// registration-status kinds go through the singleton guard: the first
// create succeeds, any later one comes back 409.

func createSingleton(c *gin.Context, rec content.Singleton) {
	err := content.CreateSingleton(database.DB, rec)
	if errors.Is(err, content.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "A record of this kind already exists. Edit the existing one instead."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func CreateDeadline(c *gin.Context) {
	var input struct {
		Name string    `json:"name" binding:"required,max=64"`
		Date time.Time `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createSingleton(c, &content.SubmissionDeadline{Name: input.Name, Date: input.Date})
}

func UpdateDeadline(c *gin.Context) {
	var input struct {
		Name string    `json:"name" binding:"required,max=64"`
		Date time.Time `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var d content.SubmissionDeadline
	if err := database.DB.First(&d).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No deadline set"})
		return
	}
	d.Name = input.Name
	d.Date = input.Date
	if err := database.DB.Save(&d).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update deadline"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func CreateFrontPage(c *gin.Context) {
	var input struct {
		Name                string `json:"name" binding:"required,max=64"`
		LeadingParagraph    string `json:"leading_paragraph" binding:"required"`
		SubmissionParagraph string `json:"submission_paragraph" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createSingleton(c, &content.FrontPage{
		Name:                input.Name,
		LeadingParagraph:    input.LeadingParagraph,
		SubmissionParagraph: input.SubmissionParagraph,
	})
}

func UpdateFrontPage(c *gin.Context) {
	var input struct {
		Name                string `json:"name" binding:"required,max=64"`
		LeadingParagraph    string `json:"leading_paragraph" binding:"required"`
		SubmissionParagraph string `json:"submission_paragraph" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var fp content.FrontPage
	if err := database.DB.First(&fp).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No front page content set"})
		return
	}
	fp.Name = input.Name
	fp.LeadingParagraph = input.LeadingParagraph
	fp.SubmissionParagraph = input.SubmissionParagraph
	if err := database.DB.Save(&fp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update front page"})
		return
	}
	c.JSON(http.StatusOK, fp)
}

func CreateRegistrationStatus(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required,max=64"`
		Open *bool  `json:"open" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createSingleton(c, &content.RegistrationStatus{Name: input.Name, Open: *input.Open})
}

func UpdateRegistrationStatus(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required,max=64"`
		Open *bool  `json:"open" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rs content.RegistrationStatus
	if err := database.DB.First(&rs).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No registration status set"})
		return
	}
	rs.Name = input.Name
	rs.Open = *input.Open
	if err := database.DB.Save(&rs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update registration status"})
		return
	}
	c.JSON(http.StatusOK, rs)
}

func CreateHelpPageItem(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required,max=64"`
		Title   string `json:"title" binding:"required,max=64"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := content.HelpPageItem{Name: input.Name, Title: input.Title, Content: input.Content}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create help page item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func DeleteHelpPageItem(c *gin.Context) {
	res := database.DB.Delete(&content.HelpPageItem{}, c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete help page item"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Help page item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Help page item deleted"})
}
