package Controllers

import (
	"net/http"

	"RehabCenter/Models"

	"github.com/gin-gonic/gin"
)

func FetchSchedules(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.Schedule{})
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}
	if available := c.Query("is_available"); available != "" {
		query = query.Where("is_available = ?", available == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var schedules []Models.Schedule
	if err := query.Limit(limit).Offset(offset).Order("date, start_time").Find(&schedules).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedules, "pagination": makePagination(page, limit, total)})
}

func GetSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var schedule Models.Schedule
	if err := getDB(c).Where("id = ?", id).First(&schedule).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": schedule})
}

func CreateSchedule(c *gin.Context) {
	var input struct {
		Date        string `json:"date" binding:"required"`
		StartTime   string `json:"start_time" binding:"required"`
		EndTime     string `json:"end_time" binding:"required"`
		IsAvailable *bool  `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	schedule := Models.Schedule{
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		IsAvailable: input.IsAvailable == nil || *input.IsAvailable,
	}
	if err := getDB(c).Create(&schedule).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Schedule slot created", "data": schedule})
}

func UpdateSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Date        string `json:"date"`
		StartTime   string `json:"start_time"`
		EndTime     string `json:"end_time"`
		IsAvailable *bool  `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var schedule Models.Schedule
	if err := db.Where("id = ?", id).First(&schedule).Error; err != nil {
		respondError(c, err)
		return
	}
	if input.Date != "" {
		schedule.Date = input.Date
	}
	if input.StartTime != "" {
		schedule.StartTime = input.StartTime
	}
	if input.EndTime != "" {
		schedule.EndTime = input.EndTime
	}
	if input.IsAvailable != nil {
		schedule.IsAvailable = *input.IsAvailable
	}
	if err := db.Save(&schedule).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule slot updated", "data": schedule})
}

func DeleteSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var schedule Models.Schedule
	if err := db.Where("id = ?", id).First(&schedule).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := db.Delete(&schedule).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule slot deleted"})
}

func GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date parameter is required"})
		return
	}
	var slots []Models.Schedule
	err := getDB(c).Where("date = ? AND is_available = ?", date, true).
		Order("start_time").Find(&slots).Error
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": slots})
}
