package Controllers

import (
	"net/http"

	"RehabCenter/Models"

	"github.com/gin-gonic/gin"
)

func FetchMedicalRecords(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.MedicalRecord{})
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate != "" && endDate != "" {
		query = query.Where("created_at BETWEEN ? AND ?", startDate, endDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var records []Models.MedicalRecord
	if err := query.Limit(limit).Offset(offset).Order("id desc").Find(&records).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records, "pagination": makePagination(page, limit, total)})
}

func GetMedicalRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var record Models.MedicalRecord
	if err := getDB(c).Where("id = ?", id).First(&record).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

func CreateMedicalRecord(c *gin.Context) {
	var input struct {
		PatientID uint   `json:"patient_id" binding:"required"`
		Notes     string `json:"notes"`
		Photo     string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var patient Models.Patient
	if err := db.Where("id = ?", input.PatientID).First(&patient).Error; err != nil {
		respondError(c, err)
		return
	}
	var count int64
	if err := db.Model(&Models.MedicalRecord{}).Where("patient_id = ?", input.PatientID).Count(&count).Error; err != nil {
		respondError(c, err)
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "this patient already has a medical record"})
		return
	}

	record := Models.MedicalRecord{PatientID: input.PatientID, Notes: input.Notes, Photo: input.Photo}
	if err := db.Create(&record).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Medical record created", "data": record})
}

func UpdateMedicalRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Notes *string `json:"notes"`
		Photo *string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var record Models.MedicalRecord
	if err := db.Where("id = ?", id).First(&record).Error; err != nil {
		respondError(c, err)
		return
	}
	if input.Notes != nil {
		record.Notes = *input.Notes
	}
	if input.Photo != nil {
		record.Photo = *input.Photo
	}
	if err := db.Save(&record).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Medical record updated", "data": record})
}

func DeleteMedicalRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var record Models.MedicalRecord
	if err := db.Where("id = ?", id).First(&record).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := db.Delete(&record).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Medical record deleted"})
}
