package Scheduling

import (
	"errors"
	"time"

	"RehabCenter/Models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTherapistNotFound    = errors.New("therapist not found")
	ErrTherapistUnavailable = errors.New("therapist is already booked for this time")
	ErrInvalidTime          = errors.New("invalid time value")
)

// ParseClock converts "15:04" (or "15:04:05") into minutes since midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		t, err = time.Parse("15:04:05", value)
		if err != nil {
			return 0, ErrInvalidTime
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Overlaps reports whether two half-open intervals [start, start+duration)
// intersect. Touching endpoints, one session ending exactly when another
// starts, is not a conflict.
func Overlaps(startA, durationA, startB, durationB int) bool {
	return startA < startB+durationB && startA+durationA > startB
}

// CheckConflict reports whether the proposed slot collides with any of the
// therapist's non-cancelled sessions on that date.
func CheckConflict(db *gorm.DB, therapistID uint, date, startTime string, durationMinutes int) (bool, error) {
	newStart, err := ParseClock(startTime)
	if err != nil {
		return false, err
	}

	var sessions []Models.Session
	err = db.Where("therapist_id = ? AND date = ? AND status <> ?", therapistID, date, Models.SessionCancelled).
		Find(&sessions).Error
	if err != nil {
		return false, err
	}

	for _, session := range sessions {
		existingStart, err := ParseClock(session.StartTime)
		if err != nil {
			return false, err
		}
		if Overlaps(newStart, durationMinutes, existingStart, session.DurationMinutes) {
			return true, nil
		}
	}
	return false, nil
}

// BookSession creates a session after the conflict check, holding a lock on
// the therapist row so concurrent bookings for the same therapist cannot both
// pass the check against a pre-insert snapshot.
func BookSession(db *gorm.DB, session *Models.Session) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var therapist Models.Therapist
		if err := lockForUpdate(tx).Where("id = ?", session.TherapistID).First(&therapist).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTherapistNotFound
			}
			return err
		}

		conflict, err := CheckConflict(tx, session.TherapistID, session.Date, session.StartTime, session.DurationMinutes)
		if err != nil {
			return err
		}
		if conflict {
			return ErrTherapistUnavailable
		}

		session.Status = Models.SessionScheduled
		return tx.Create(session).Error
	})
}

// SQLite has no row locks and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
