package Controllers

import (
	"net/http"

	"RehabCenter/Models"

	"github.com/gin-gonic/gin"
)

func FetchDiagnoses(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.Diagnosis{})
	if severity := c.Query("severity_level"); severity != "" {
		query = query.Where("severity_level = ?", severity)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var diagnoses []Models.Diagnosis
	if err := query.Limit(limit).Offset(offset).Order("id").Find(&diagnoses).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": diagnoses, "pagination": makePagination(page, limit, total)})
}

func GetDiagnosis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var diagnosis Models.Diagnosis
	if err := getDB(c).Preload("Patients").Where("id = ?", id).First(&diagnosis).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": diagnosis})
}

func CreateDiagnosis(c *gin.Context) {
	var input struct {
		Title         string `json:"title" binding:"required"`
		SeverityLevel string `json:"severity_level" binding:"required"`
		Description   string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if !Models.ValidSeverityLevel(input.SeverityLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown severity level"})
		return
	}

	db := getDB(c)
	var count int64
	if err := db.Model(&Models.Diagnosis{}).Where("title = ?", input.Title).Count(&count).Error; err != nil {
		respondError(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "a diagnosis with this title already exists"})
		return
	}

	diagnosis := Models.Diagnosis{Title: input.Title, SeverityLevel: input.SeverityLevel, Description: input.Description}
	if err := db.Create(&diagnosis).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Diagnosis created", "data": diagnosis})
}

func UpdateDiagnosis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Title         string `json:"title"`
		SeverityLevel string `json:"severity_level"`
		Description   *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var diagnosis Models.Diagnosis
	if err := db.Where("id = ?", id).First(&diagnosis).Error; err != nil {
		respondError(c, err)
		return
	}
	if input.Title != "" {
		diagnosis.Title = input.Title
	}
	if input.SeverityLevel != "" {
		if !Models.ValidSeverityLevel(input.SeverityLevel) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unknown severity level"})
			return
		}
		diagnosis.SeverityLevel = input.SeverityLevel
	}
	if input.Description != nil {
		diagnosis.Description = *input.Description
	}
	if err := db.Save(&diagnosis).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Diagnosis updated", "data": diagnosis})
}

func DeleteDiagnosis(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var diagnosis Models.Diagnosis
	if err := db.Where("id = ?", id).First(&diagnosis).Error; err != nil {
		respondError(c, err)
		return
	}

	// Detach patients first, the FK would otherwise block the delete.
	var detached int64
	result := db.Model(&Models.Patient{}).Where("diagnosis_id = ?", id).Update("diagnosis_id", nil)
	if result.Error != nil {
		respondError(c, result.Error)
		return
	}
	detached = result.RowsAffected

	if err := db.Delete(&diagnosis).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Diagnosis deleted", "patients_detached": detached})
}
