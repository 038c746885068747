package Scheduling

import (
	"fmt"
	"testing"

	"RehabCenter/Models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Models.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBookingFixtures(t *testing.T, db *gorm.DB) (Models.Therapist, Models.Patient, Models.Procedure) {
	t.Helper()
	therapist := Models.Therapist{Name: "Oleksii Koval", Specialization: "General therapist", Phone: "+380501111111"}
	require.NoError(t, db.Create(&therapist).Error)
	patient := Models.Patient{Name: "Ivan Melnyk", BirthDate: "1985-03-12", Phone: "+380671111111"}
	require.NoError(t, db.Create(&patient).Error)
	procedure := Models.Procedure{Title: "Physiotherapy", Cost: decimal.RequireFromString("600.00"), DurationMinutes: 45}
	require.NoError(t, db.Create(&procedure).Error)
	return therapist, patient, procedure
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("10:30")
	require.NoError(t, err)
	require.Equal(t, 630, minutes)

	minutes, err = ParseClock("10:30:15")
	require.NoError(t, err)
	require.Equal(t, 630, minutes)

	_, err = ParseClock("25:00")
	require.ErrorIs(t, err, ErrInvalidTime)
	_, err = ParseClock("noon")
	require.ErrorIs(t, err, ErrInvalidTime)
}

func TestOverlaps(t *testing.T) {
	// 10:00-11:00 vs 10:30-11:00
	require.True(t, Overlaps(600, 60, 630, 30))
	// Touching boundary is not a conflict: 10:00-11:00 vs 11:00-11:30.
	require.False(t, Overlaps(600, 60, 660, 30))
	require.False(t, Overlaps(660, 30, 600, 60))
	// Containment.
	require.True(t, Overlaps(600, 120, 630, 30))
}

func TestOverlapsIsSymmetric(t *testing.T) {
	intervals := []struct{ start, duration int }{
		{600, 60}, {630, 30}, {660, 45}, {540, 120}, {700, 10},
	}
	for _, a := range intervals {
		for _, b := range intervals {
			require.Equal(t,
				Overlaps(a.start, a.duration, b.start, b.duration),
				Overlaps(b.start, b.duration, a.start, a.duration),
				"overlap of (%v,%v) and (%v,%v) must be symmetric", a.start, a.duration, b.start, b.duration)
		}
	}
}

func TestCheckConflict(t *testing.T) {
	db := setupTestDB(t)
	therapist, patient, procedure := seedBookingFixtures(t, db)

	existing := Models.Session{
		PatientID: patient.ID, TherapistID: therapist.ID, ProcedureID: procedure.ID,
		Date: "2025-12-20", StartTime: "10:00", DurationMinutes: 60, Status: Models.SessionScheduled,
	}
	require.NoError(t, db.Create(&existing).Error)

	conflict, err := CheckConflict(db, therapist.ID, "2025-12-20", "10:30", 30)
	require.NoError(t, err)
	require.True(t, conflict)

	// Touching boundary.
	conflict, err = CheckConflict(db, therapist.ID, "2025-12-20", "11:00", 30)
	require.NoError(t, err)
	require.False(t, conflict)

	// Other date, other therapist.
	conflict, err = CheckConflict(db, therapist.ID, "2025-12-21", "10:30", 30)
	require.NoError(t, err)
	require.False(t, conflict)
	conflict, err = CheckConflict(db, therapist.ID+1, "2025-12-20", "10:30", 30)
	require.NoError(t, err)
	require.False(t, conflict)

	_, err = CheckConflict(db, therapist.ID, "2025-12-20", "bad", 30)
	require.ErrorIs(t, err, ErrInvalidTime)
}

func TestCheckConflictIgnoresCancelledSessions(t *testing.T) {
	db := setupTestDB(t)
	therapist, patient, procedure := seedBookingFixtures(t, db)

	cancelled := Models.Session{
		PatientID: patient.ID, TherapistID: therapist.ID, ProcedureID: procedure.ID,
		Date: "2025-12-20", StartTime: "10:00", DurationMinutes: 60, Status: Models.SessionCancelled,
	}
	require.NoError(t, db.Create(&cancelled).Error)

	conflict, err := CheckConflict(db, therapist.ID, "2025-12-20", "10:30", 30)
	require.NoError(t, err)
	require.False(t, conflict)
}

func TestBookSession(t *testing.T) {
	db := setupTestDB(t)
	therapist, patient, procedure := seedBookingFixtures(t, db)

	first := Models.Session{
		PatientID: patient.ID, TherapistID: therapist.ID, ProcedureID: procedure.ID,
		Date: "2025-12-20", StartTime: "10:00", DurationMinutes: 60,
	}
	require.NoError(t, BookSession(db, &first))
	require.Equal(t, Models.SessionScheduled, first.Status)

	overlapping := Models.Session{
		PatientID: patient.ID, TherapistID: therapist.ID, ProcedureID: procedure.ID,
		Date: "2025-12-20", StartTime: "10:30", DurationMinutes: 30,
	}
	require.ErrorIs(t, BookSession(db, &overlapping), ErrTherapistUnavailable)

	adjacent := Models.Session{
		PatientID: patient.ID, TherapistID: therapist.ID, ProcedureID: procedure.ID,
		Date: "2025-12-20", StartTime: "11:00", DurationMinutes: 30,
	}
	require.NoError(t, BookSession(db, &adjacent))

	missingTherapist := Models.Session{
		PatientID: patient.ID, TherapistID: 9999, ProcedureID: procedure.ID,
		Date: "2025-12-20", StartTime: "13:00", DurationMinutes: 30,
	}
	require.ErrorIs(t, BookSession(db, &missingTherapist), ErrTherapistNotFound)
}
