package Controllers

import (
	"net/http"

	"RehabCenter/Billing"
	"RehabCenter/Models"
	"RehabCenter/Utils/Money"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceWithBalance struct {
	Models.Invoice
	Billing.Balance
}

func FetchInvoices(c *gin.Context) {
	db := getDB(c)
	page, limit, offset := getPagination(c)

	query := db.Model(&Models.Invoice{})
	if patientID := c.Query("patient_id"); patientID != "" {
		query = query.Select("invoices.*").
			Joins("JOIN sessions ON sessions.id = invoices.session_id").
			Where("sessions.patient_id = ?", patientID)
	}
	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate != "" && endDate != "" {
		query = query.Where("issue_date BETWEEN ? AND ?", startDate, endDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, err)
		return
	}
	var invoices []Models.Invoice
	err := query.Preload("Payments").
		Preload("Session.Patient").Preload("Session.Therapist").Preload("Session.Procedure").
		Limit(limit).Offset(offset).Order("issue_date desc, id desc").Find(&invoices).Error
	if err != nil {
		respondError(c, err)
		return
	}

	merged := make([]invoiceWithBalance, 0, len(invoices))
	for i := range invoices {
		merged = append(merged, invoiceWithBalance{Invoice: invoices[i], Balance: Billing.GetBalance(&invoices[i])})
	}

	// The paid filter is derived state, so it is applied in memory over the
	// fetched page rather than pushed into the query.
	if paid := c.Query("paid"); paid != "" {
		wantPaid := paid == "true"
		filtered := merged[:0]
		for _, invoice := range merged {
			if invoice.IsPaid == wantPaid {
				filtered = append(filtered, invoice)
			}
		}
		merged = filtered
		total = int64(len(merged))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": merged, "pagination": makePagination(page, limit, total)})
}

func GetInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var invoice Models.Invoice
	err := getDB(c).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_date desc")
		}).
		Preload("Session.Patient").Preload("Session.Therapist").Preload("Session.Procedure").
		Where("id = ?", id).First(&invoice).Error
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": invoiceWithBalance{Invoice: invoice, Balance: Billing.GetBalance(&invoice)}})
}

func CreateInvoice(c *gin.Context) {
	var input struct {
		SessionID uint             `json:"session_id" binding:"required"`
		Amount    *decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	invoice, err := Billing.CreateInvoice(getDB(c), input.SessionID, input.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Invoice created", "data": invoice})
}

// UpdateInvoice changes the billed amount only; payments stay untouched.
func UpdateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input struct {
		Amount *decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	db := getDB(c)
	var invoice Models.Invoice
	if err := db.Preload("Payments").Where("id = ?", id).First(&invoice).Error; err != nil {
		respondError(c, err)
		return
	}
	if input.Amount != nil {
		if input.Amount.IsNegative() {
			respondError(c, Money.ErrInvalidAmount)
			return
		}
		invoice.Amount = *input.Amount
	}
	if err := db.Save(&invoice).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice updated", "data": invoice})
}

func DeleteInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := getDB(c)
	var invoice Models.Invoice
	if err := db.Where("id = ?", id).First(&invoice).Error; err != nil {
		respondError(c, err)
		return
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&Models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice deleted"})
}
