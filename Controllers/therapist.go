package Controllers

import (
	"net/http"

	"RehabCenter/Models"

	"github.com/gin-gonic/gin"
)

func FetchTherapists(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.Therapist{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}
	if specialization := c.Query("specialization"); specialization != "" {
		query = query.Where("specialization LIKE ?", "%"+specialization+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var therapists []Models.Therapist
	if err := query.Preload("Schedule").Limit(limit).Offset(offset).Order("id").Find(&therapists).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": therapists, "pagination": makePagination(page, limit, total)})
}

func GetTherapist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var therapist Models.Therapist
	if err := getDB(c).Preload("Schedule").Where("id = ?", id).First(&therapist).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": therapist})
}

func CreateTherapist(c *gin.Context) {
	var input struct {
		Name           string `json:"name" binding:"required"`
		Specialization string `json:"specialization" binding:"required"`
		Phone          string `json:"phone" binding:"required"`
		ScheduleID     *uint  `json:"schedule_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	therapist := Models.Therapist{
		Name:           input.Name,
		Specialization: input.Specialization,
		Phone:          input.Phone,
		ScheduleID:     input.ScheduleID,
	}
	if err := getDB(c).Create(&therapist).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Therapist created", "data": therapist})
}

func UpdateTherapist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Name           string `json:"name"`
		Specialization string `json:"specialization"`
		Phone          string `json:"phone"`
		ScheduleID     *uint  `json:"schedule_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var therapist Models.Therapist
	if err := db.Where("id = ?", id).First(&therapist).Error; err != nil {
		respondError(c, err)
		return
	}
	if input.Name != "" {
		therapist.Name = input.Name
	}
	if input.Specialization != "" {
		therapist.Specialization = input.Specialization
	}
	if input.Phone != "" {
		therapist.Phone = input.Phone
	}
	if input.ScheduleID != nil {
		therapist.ScheduleID = input.ScheduleID
	}
	if err := db.Save(&therapist).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Therapist updated", "data": therapist})
}

func DeleteTherapist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var therapist Models.Therapist
	if err := db.Where("id = ?", id).First(&therapist).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := db.Delete(&therapist).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Therapist deleted"})
}

// GetTherapistSchedule lists the therapist's non-cancelled sessions, optionally
// narrowed to a date range.
func GetTherapistSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)

	var therapist Models.Therapist
	if err := db.Where("id = ?", id).First(&therapist).Error; err != nil {
		respondError(c, err)
		return
	}

	query := db.Model(&Models.Session{}).
		Where("therapist_id = ? AND status <> ?", id, Models.SessionCancelled)
	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate != "" && endDate != "" {
		query = query.Where("date BETWEEN ? AND ?", startDate, endDate)
	}

	var sessions []Models.Session
	if err := query.Preload("Patient").Preload("Procedure").
		Order("date, start_time").Find(&sessions).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"therapist": therapist, "sessions": sessions}})
}
