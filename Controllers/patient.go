package Controllers

import (
	"net/http"

	"RehabCenter/Models"
	"RehabCenter/Utils/Money"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func FetchPatients(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.Patient{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var patients []Models.Patient
	err := query.Preload("Diagnosis").Preload("MedicalRecord").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("date desc").Limit(5)
		}).
		Preload("Sessions.Procedure").Preload("Sessions.Therapist").
		Limit(limit).Offset(offset).Order("id desc").Find(&patients).Error
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": patients, "pagination": makePagination(page, limit, total)})
}

func GetPatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patient Models.Patient
	if err := getDB(c).Preload("Diagnosis").Preload("MedicalRecord").Where("id = ?", id).First(&patient).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": patient})
}

func CreatePatient(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		BirthDate   string `json:"birth_date" binding:"required"`
		Phone       string `json:"phone" binding:"required"`
		DiagnosisID *uint  `json:"diagnosis_id"`
		Notes       string `json:"notes"`
		Photo       string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	patient := Models.Patient{
		Name:        input.Name,
		BirthDate:   input.BirthDate,
		Phone:       input.Phone,
		DiagnosisID: input.DiagnosisID,
	}
	// The medical record is created together with the patient.
	err := getDB(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&patient).Error; err != nil {
			return err
		}
		record := Models.MedicalRecord{PatientID: patient.ID, Notes: input.Notes, Photo: input.Photo}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		patient.MedicalRecord = &record
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Patient created", "data": patient})
}

func UpdatePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Name        string `json:"name"`
		BirthDate   string `json:"birth_date"`
		Phone       string `json:"phone"`
		DiagnosisID *uint  `json:"diagnosis_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var patient Models.Patient
	if err := db.Where("id = ?", id).First(&patient).Error; err != nil {
		respondError(c, err)
		return
	}
	if input.Name != "" {
		patient.Name = input.Name
	}
	if input.BirthDate != "" {
		patient.BirthDate = input.BirthDate
	}
	if input.Phone != "" {
		patient.Phone = input.Phone
	}
	patient.DiagnosisID = input.DiagnosisID
	if err := db.Save(&patient).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := db.Preload("Diagnosis").Preload("MedicalRecord").Where("id = ?", id).First(&patient).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Patient updated", "data": patient})
}

func DeletePatient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var patient Models.Patient
	if err := db.Where("id = ?", id).First(&patient).Error; err != nil {
		respondError(c, err)
		return
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&Models.MedicalRecord{}).Error; err != nil {
			return err
		}
		return tx.Delete(&patient).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Patient deleted"})
}

// GetPatientStats aggregates the visit count and the exact amount the patient
// has paid across all invoices of their sessions.
func GetPatientStats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)

	var patient Models.Patient
	if err := db.Preload("Diagnosis").Where("id = ?", id).First(&patient).Error; err != nil {
		respondError(c, err)
		return
	}

	var totalSessions int64
	if err := db.Model(&Models.Session{}).Where("patient_id = ?", id).Count(&totalSessions).Error; err != nil {
		respondError(c, err)
		return
	}

	var payments []Models.Payment
	err := db.Model(&Models.Payment{}).Select("payments.*").
		Joins("JOIN invoices ON invoices.id = payments.invoice_id").
		Joins("JOIN sessions ON sessions.id = invoices.session_id").
		Where("sessions.patient_id = ?", id).
		Find(&payments).Error
	if err != nil {
		respondError(c, err)
		return
	}
	amounts := make([]decimal.Decimal, 0, len(payments))
	for _, payment := range payments {
		amounts = append(amounts, payment.Amount)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"patient":       patient,
		"totalSessions": totalSessions,
		"totalSpent":    Money.Sum(amounts),
	}})
}
