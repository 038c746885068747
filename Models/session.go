package Models

import (
	"gorm.io/gorm"
)

const (
	SessionScheduled = "Scheduled"
	SessionCompleted = "Completed"
	SessionCancelled = "Cancelled"
)

// Session is one scheduled visit of a patient to a therapist for a procedure.
// It owns at most one Invoice, created when the session is completed.
type Session struct {
	gorm.Model
	PatientID       uint       `json:"patient_id"`
	Patient         *Patient   `json:"patient,omitempty"`
	TherapistID     uint       `json:"therapist_id"`
	Therapist       *Therapist `json:"therapist,omitempty"`
	ProcedureID     uint       `json:"procedure_id"`
	Procedure       *Procedure `json:"procedure,omitempty"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status" gorm:"default:'Scheduled'"`
	RoomNumber      *string    `json:"room_number" gorm:"default:null"`
	Invoice         *Invoice   `json:"invoice,omitempty"`
}
