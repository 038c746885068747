package Controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"RehabCenter/Billing"
	"RehabCenter/Scheduling"
	"RehabCenter/Utils/Money"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func getDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get("db")
	if !exists {
		log.Println("no database handle in request context")
		return nil
	}
	return db.(*gorm.DB)
}

func getPagination(c *gin.Context) (page, limit, offset int) {
	page = defaultPage
	limit = defaultLimit
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, (page - 1) * limit
}

func makePagination(page, limit int, total int64) Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// respondError maps the domain error set onto HTTP statuses. Anything outside
// the set is treated as a storage failure and surfaced as a generic 500 so no
// internal detail leaks.
func respondError(c *gin.Context, err error) {
	var overpayment *Billing.OverpaymentError
	switch {
	case errors.Is(err, Billing.ErrSessionNotFound),
		errors.Is(err, Billing.ErrInvoiceNotFound),
		errors.Is(err, Scheduling.ErrTherapistNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.As(err, &overpayment):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   overpayment.Error(),
			"remaining": overpayment.Remaining.StringFixed(2),
		})
	case errors.Is(err, Billing.ErrAlreadyCompleted),
		errors.Is(err, Billing.ErrInvalidTransition),
		errors.Is(err, Billing.ErrInvalidMethod),
		errors.Is(err, Money.ErrInvalidAmount),
		errors.Is(err, Scheduling.ErrInvalidTime):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, Billing.ErrDuplicateInvoice),
		errors.Is(err, Scheduling.ErrTherapistUnavailable):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	default:
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
