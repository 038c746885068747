package Controllers

import (
	"net/http"

	"RehabCenter/Billing"
	"RehabCenter/Models"
	"RehabCenter/Scheduling"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func FetchSessions(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.Session{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Where("patient_id = ?", patientID)
	}
	if therapistID := c.Query("therapist_id"); therapistID != "" {
		query = query.Where("therapist_id = ?", therapistID)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var sessions []Models.Session
	err := query.Preload("Patient.Diagnosis").Preload("Therapist").Preload("Procedure").
		Preload("Invoice.Payments").
		Limit(limit).Offset(offset).Order("date desc, start_time desc").Find(&sessions).Error
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sessions, "pagination": makePagination(page, limit, total)})
}

func GetSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var session Models.Session
	err := getDB(c).Preload("Patient.Diagnosis").Preload("Patient.MedicalRecord").
		Preload("Therapist").Preload("Procedure").Preload("Invoice.Payments").
		Where("id = ?", id).First(&session).Error
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": session})
}

func CreateSession(c *gin.Context) {
	var input struct {
		ProcedureID     uint    `json:"procedure_id" binding:"required"`
		PatientID       uint    `json:"patient_id" binding:"required"`
		TherapistID     uint    `json:"therapist_id" binding:"required"`
		Date            string  `json:"date" binding:"required"`
		StartTime       string  `json:"start_time" binding:"required"`
		DurationMinutes int     `json:"duration_minutes" binding:"required"`
		RoomNumber      *string `json:"room_number"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if input.DurationMinutes <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "duration_minutes must be positive"})
		return
	}

	db := getDB(c)
	session := Models.Session{
		ProcedureID:     input.ProcedureID,
		PatientID:       input.PatientID,
		TherapistID:     input.TherapistID,
		Date:            input.Date,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		RoomNumber:      input.RoomNumber,
	}
	if err := Scheduling.BookSession(db, &session); err != nil {
		respondError(c, err)
		return
	}
	if err := db.Preload("Patient").Preload("Therapist").Preload("Procedure").
		Where("id = ?", session.ID).First(&session).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Session created", "data": session})
}

func UpdateSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		ProcedureID     uint    `json:"procedure_id"`
		PatientID       uint    `json:"patient_id"`
		TherapistID     uint    `json:"therapist_id"`
		Date            string  `json:"date"`
		StartTime       string  `json:"start_time"`
		DurationMinutes int     `json:"duration_minutes"`
		Status          string  `json:"status"`
		RoomNumber      *string `json:"room_number"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var session Models.Session
	if err := db.Where("id = ?", id).First(&session).Error; err != nil {
		respondError(c, err)
		return
	}

	if input.Status != "" {
		if err := Billing.ChangeStatus(&session, input.Status); err != nil {
			respondError(c, err)
			return
		}
	}
	if input.ProcedureID != 0 {
		session.ProcedureID = input.ProcedureID
	}
	if input.PatientID != 0 {
		session.PatientID = input.PatientID
	}
	if input.TherapistID != 0 {
		session.TherapistID = input.TherapistID
	}
	if input.Date != "" {
		session.Date = input.Date
	}
	if input.StartTime != "" {
		session.StartTime = input.StartTime
	}
	if input.DurationMinutes > 0 {
		session.DurationMinutes = input.DurationMinutes
	}
	if input.RoomNumber != nil {
		session.RoomNumber = input.RoomNumber
	}

	if err := db.Save(&session).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := db.Preload("Patient").Preload("Therapist").Preload("Procedure").
		Where("id = ?", id).First(&session).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session updated", "data": session})
}

func DeleteSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var session Models.Session
	if err := db.Where("id = ?", id).First(&session).Error; err != nil {
		respondError(c, err)
		return
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		var invoice Models.Invoice
		if err := tx.Where("session_id = ?", id).First(&invoice).Error; err == nil {
			if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&Models.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&invoice).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&session).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Session deleted"})
}

// CompleteSession flips the session to Completed and makes sure an invoice
// exists for it, billing the procedure cost when none was issued before.
func CompleteSession(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)

	session, invoice, err := Billing.CompleteSession(db, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := db.Preload("Patient").Preload("Therapist").Preload("Procedure").
		Where("id = ?", session.ID).First(&session).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session completed, invoice issued",
		"data":    gin.H{"session": session, "invoice": invoice},
	})
}
