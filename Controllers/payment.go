package Controllers

import (
	"net/http"

	"RehabCenter/Billing"
	"RehabCenter/Models"

	"github.com/gin-gonic/gin"
)

func FetchPayments(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.Payment{})
	if invoiceID := c.Query("invoice_id"); invoiceID != "" {
		query = query.Where("invoice_id = ?", invoiceID)
	}
	if method := c.Query("method"); method != "" {
		query = query.Where("method = ?", method)
	}
	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate != "" && endDate != "" {
		query = query.Where("payment_date BETWEEN ? AND ?", startDate, endDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var payments []Models.Payment
	err := query.Preload("Invoice.Session.Patient").Preload("Invoice.Session.Procedure").
		Limit(limit).Offset(offset).Order("payment_date desc, id desc").Find(&payments).Error
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payments, "pagination": makePagination(page, limit, total)})
}

func GetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payment Models.Payment
	err := getDB(c).Preload("Invoice.Payments").Preload("Invoice.Session.Patient").
		Preload("Invoice.Session.Therapist").Preload("Invoice.Session.Procedure").
		Where("id = ?", id).First(&payment).Error
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payment})
}

// CreatePayment records a payment against an invoice. Overpayment is rejected
// with the remaining balance reported to two decimal places.
func CreatePayment(c *gin.Context) {
	var input Billing.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	payment, err := Billing.AdmitPayment(getDB(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Payment recorded", "data": payment})
}

// UpdatePayment allows correcting method and date. The amount is immutable:
// changing it after admission would sidestep the overpayment check.
func UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Method      string `json:"method"`
		PaymentDate string `json:"payment_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var payment Models.Payment
	if err := db.Where("id = ?", id).First(&payment).Error; err != nil {
		respondError(c, err)
		return
	}
	if input.Method != "" {
		if !Models.ValidPaymentMethod(input.Method) {
			respondError(c, Billing.ErrInvalidMethod)
			return
		}
		payment.Method = input.Method
	}
	if input.PaymentDate != "" {
		payment.PaymentDate = input.PaymentDate
	}
	if err := db.Save(&payment).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment updated", "data": payment})
}

func DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var payment Models.Payment
	if err := db.Where("id = ?", id).First(&payment).Error; err != nil {
		respondError(c, err)
		return
	}
	if err := db.Delete(&payment).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment deleted"})
}
