package Billing

import (
	"errors"

	"RehabCenter/Models"
	"RehabCenter/Utils/Money"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompleteSession marks a session completed and guarantees an invoice exists
// for it, defaulting the amount to the procedure cost when none was issued
// before. Status flip and invoice creation happen in one transaction: a crash
// between the two cannot leave a completed session without an invoice.
func CompleteSession(db *gorm.DB, sessionID uint) (Models.Session, Models.Invoice, error) {
	var session Models.Session
	var invoice Models.Invoice

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("id = ?", sessionID).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}
		if session.Status == Models.SessionCompleted {
			return ErrAlreadyCompleted
		}

		var procedure Models.Procedure
		if err := tx.Where("id = ?", session.ProcedureID).First(&procedure).Error; err != nil {
			return err
		}

		if err := tx.Model(&session).Update("status", Models.SessionCompleted).Error; err != nil {
			return err
		}
		session.Procedure = &procedure

		created, err := EnsureInvoiceForSession(tx, session.ID, procedure.Cost)
		if err != nil {
			return err
		}
		invoice = created
		return nil
	})
	return session, invoice, err
}

// CreateInvoice is the explicit creation path (POST /invoices). Unlike the
// ensure path it treats a pre-existing invoice as an error. A nil amount
// defaults to the session's procedure cost.
func CreateInvoice(db *gorm.DB, sessionID uint, amount *decimal.Decimal) (Models.Invoice, error) {
	var invoice Models.Invoice

	if amount != nil && amount.IsNegative() {
		return invoice, Money.ErrInvalidAmount
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var session Models.Session
		if err := tx.Where("id = ?", sessionID).First(&session).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&Models.Invoice{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateInvoice
		}

		invoiceAmount := decimal.Zero
		if amount != nil {
			invoiceAmount = *amount
		} else {
			var procedure Models.Procedure
			if err := tx.Where("id = ?", session.ProcedureID).First(&procedure).Error; err != nil {
				return err
			}
			invoiceAmount = procedure.Cost
		}

		created, err := EnsureInvoiceForSession(tx, sessionID, invoiceAmount)
		if err != nil {
			return err
		}
		invoice = created
		return nil
	})
	return invoice, err
}

// ChangeStatus applies the only status transition permitted outside the
// completion workflow: Scheduled to Cancelled. Completed is reachable solely
// through CompleteSession, and terminal states stay terminal.
func ChangeStatus(session *Models.Session, newStatus string) error {
	if newStatus == session.Status {
		return nil
	}
	if session.Status == Models.SessionScheduled && newStatus == Models.SessionCancelled {
		session.Status = newStatus
		return nil
	}
	return ErrInvalidTransition
}
