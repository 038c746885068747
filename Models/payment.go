package Models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentCash         = "Cash"
	PaymentCard         = "Card"
	PaymentBankTransfer = "BankTransfer"
)

type Payment struct {
	gorm.Model
	InvoiceID   uint            `json:"invoice_id"`
	Invoice     *Invoice        `json:"invoice,omitempty"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Method      string          `json:"method" gorm:"default:'Cash'"`
	PaymentDate string          `json:"payment_date"`
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCard, PaymentBankTransfer:
		return true
	}
	return false
}
