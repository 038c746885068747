package Models

import (
	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	Name          string         `json:"name"`
	BirthDate     string         `json:"birth_date"`
	Phone         string         `json:"phone"`
	DiagnosisID   *uint          `json:"diagnosis_id" gorm:"default:null"`
	Diagnosis     *Diagnosis     `json:"diagnosis,omitempty"`
	MedicalRecord *MedicalRecord `json:"medical_record,omitempty"`
	Sessions      []Session      `json:"sessions,omitempty"`
}

type MedicalRecord struct {
	gorm.Model
	PatientID uint   `json:"patient_id" gorm:"uniqueIndex"`
	Notes     string `json:"notes"`
	Photo     string `json:"photo"`
}
