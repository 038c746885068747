package Models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice bills exactly one session. The unique index on SessionID is what
// keeps concurrent completions from producing a second invoice.
type Invoice struct {
	gorm.Model
	SessionID uint            `json:"session_id" gorm:"uniqueIndex"`
	Session   *Session        `json:"session,omitempty"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	IssueDate string          `json:"issue_date"`
	Payments  []Payment       `json:"payments"`
}
