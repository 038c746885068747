package Models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Procedure struct {
	gorm.Model
	Title           string          `json:"title"`
	Cost            decimal.Decimal `json:"cost" gorm:"type:decimal(10,2)"`
	DurationMinutes int             `json:"duration_minutes"`
	Sessions        []Session       `json:"sessions,omitempty"`
}
