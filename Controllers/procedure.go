package Controllers

import (
	"net/http"

	"RehabCenter/Models"
	"RehabCenter/Utils/Money"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func FetchProcedures(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.Procedure{})
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if minCost := c.Query("minCost"); minCost != "" {
		amount, err := Money.Parse(minCost)
		if err != nil {
			respondError(c, err)
			return
		}
		query = query.Where("cost >= ?", amount)
	}
	if maxCost := c.Query("maxCost"); maxCost != "" {
		amount, err := Money.Parse(maxCost)
		if err != nil {
			respondError(c, err)
			return
		}
		query = query.Where("cost <= ?", amount)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var procedures []Models.Procedure
	if err := query.Limit(limit).Offset(offset).Order("id").Find(&procedures).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": procedures, "pagination": makePagination(page, limit, total)})
}

func GetProcedure(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var procedure Models.Procedure
	if err := getDB(c).Where("id = ?", id).First(&procedure).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": procedure})
}

func CreateProcedure(c *gin.Context) {
	var input struct {
		Title           string          `json:"title" binding:"required"`
		Cost            decimal.Decimal `json:"cost"`
		DurationMinutes int             `json:"duration_minutes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if input.Cost.IsNegative() || input.DurationMinutes <= 0 {
		respondError(c, Money.ErrInvalidAmount)
		return
	}

	procedure := Models.Procedure{Title: input.Title, Cost: input.Cost, DurationMinutes: input.DurationMinutes}
	if err := getDB(c).Create(&procedure).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Procedure created", "data": procedure})
}

func UpdateProcedure(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Title           string           `json:"title"`
		Cost            *decimal.Decimal `json:"cost"`
		DurationMinutes int              `json:"duration_minutes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var procedure Models.Procedure
	if err := db.Where("id = ?", id).First(&procedure).Error; err != nil {
		respondError(c, err)
		return
	}
	if input.Title != "" {
		procedure.Title = input.Title
	}
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			respondError(c, Money.ErrInvalidAmount)
			return
		}
		procedure.Cost = *input.Cost
	}
	if input.DurationMinutes > 0 {
		procedure.DurationMinutes = input.DurationMinutes
	}
	if err := db.Save(&procedure).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Procedure updated", "data": procedure})
}

func DeleteProcedure(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var procedure Models.Procedure
	if err := db.Where("id = ?", id).First(&procedure).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := db.Delete(&procedure).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Procedure deleted"})
}
