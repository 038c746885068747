package Models

import (
	"gorm.io/gorm"
)

type Therapist struct {
	gorm.Model
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone"`
	ScheduleID     *uint     `json:"schedule_id" gorm:"default:null"`
	Schedule       *Schedule `json:"schedule,omitempty"`
	Sessions       []Session `json:"sessions,omitempty"`
}

// Schedule is a working slot a therapist can be assigned to.
type Schedule struct {
	gorm.Model
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}
