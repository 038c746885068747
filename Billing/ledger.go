package Billing

import (
	"errors"
	"time"

	"RehabCenter/Models"
	"RehabCenter/Utils/Money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Balance is the derived payment state of an invoice. It is computed on read
// and never persisted.
type Balance struct {
	TotalPaid decimal.Decimal `json:"totalPaid"`
	Remaining decimal.Decimal `json:"remaining"`
	IsPaid    bool            `json:"isPaid"`
}

func GetBalance(invoice *Models.Invoice) Balance {
	amounts := make([]decimal.Decimal, 0, len(invoice.Payments))
	for _, payment := range invoice.Payments {
		amounts = append(amounts, payment.Amount)
	}
	remaining := Money.Remaining(invoice.Amount, amounts)
	return Balance{
		TotalPaid: Money.Sum(amounts),
		Remaining: remaining,
		IsPaid:    !remaining.IsPositive(),
	}
}

// EnsureInvoiceForSession returns the session's invoice, creating one with the
// given amount if none exists yet. Idempotent: a concurrent caller losing the
// unique-index race reads back the winner's row instead of failing. Must run
// inside the caller's transaction.
func EnsureInvoiceForSession(tx *gorm.DB, sessionID uint, defaultAmount decimal.Decimal) (Models.Invoice, error) {
	var invoice Models.Invoice
	err := tx.Preload("Payments").Where("session_id = ?", sessionID).First(&invoice).Error
	if err == nil {
		return invoice, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return invoice, err
	}

	invoice = Models.Invoice{
		SessionID: sessionID,
		Amount:    defaultAmount,
		IssueDate: time.Now().Format("2006-01-02"),
		Payments:  []Models.Payment{},
	}
	if createErr := tx.Create(&invoice).Error; createErr != nil {
		var existing Models.Invoice
		if readErr := tx.Preload("Payments").Where("session_id = ?", sessionID).First(&existing).Error; readErr == nil {
			return existing, nil
		}
		return invoice, createErr
	}
	return invoice, nil
}

// lockForUpdate takes a row lock on dialects that support it. SQLite allows a
// single writer at a time, so the plain read is already serialized there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
