package Models

import "gorm.io/gorm"

const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

type Diagnosis struct {
	gorm.Model
	Title         string    `json:"title" gorm:"unique"`
	SeverityLevel string    `json:"severity_level"`
	Description   string    `json:"description"`
	Patients      []Patient `json:"patients,omitempty"`
}

func ValidSeverityLevel(level string) bool {
	switch level {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}
