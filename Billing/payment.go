package Billing

import (
	"errors"
	"time"

	"RehabCenter/Models"
	"RehabCenter/Utils/Money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentInput struct {
	InvoiceID   uint            `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	PaymentDate string          `json:"payment_date"`
}

// AdmitPayment records a payment against an invoice after checking it does not
// exceed the remaining balance. The read-check-insert sequence runs in one
// transaction with the invoice row locked, so two concurrent payments cannot
// both pass the check against a stale balance.
func AdmitPayment(db *gorm.DB, input PaymentInput) (Models.Payment, error) {
	var payment Models.Payment

	if !input.Amount.IsPositive() {
		return payment, Money.ErrInvalidAmount
	}
	if input.Method == "" {
		input.Method = Models.PaymentCash
	}
	if !Models.ValidPaymentMethod(input.Method) {
		return payment, ErrInvalidMethod
	}
	if input.PaymentDate == "" {
		input.PaymentDate = time.Now().Format("2006-01-02 15:04:05")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var invoice Models.Invoice
		if err := lockForUpdate(tx).Where("id = ?", input.InvoiceID).First(&invoice).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		if err := tx.Where("invoice_id = ?", invoice.ID).Find(&invoice.Payments).Error; err != nil {
			return err
		}

		balance := GetBalance(&invoice)
		if input.Amount.GreaterThan(balance.Remaining) {
			return &OverpaymentError{Remaining: balance.Remaining}
		}

		payment = Models.Payment{
			InvoiceID:   invoice.ID,
			Amount:      input.Amount,
			Method:      input.Method,
			PaymentDate: input.PaymentDate,
		}
		return tx.Create(&payment).Error
	})
	return payment, err
}
