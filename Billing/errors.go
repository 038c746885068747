package Billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrAlreadyCompleted  = errors.New("session is already completed")
	ErrDuplicateInvoice  = errors.New("an invoice for this session already exists")
	ErrInvalidMethod     = errors.New("unknown payment method")
	ErrInvalidTransition = errors.New("invalid session status transition")
)

// OverpaymentError carries the remaining balance the rejected payment was
// checked against so the caller can report it.
type OverpaymentError struct {
	Remaining decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment amount exceeds the remaining balance. Remaining: %s", e.Remaining.StringFixed(2))
}
