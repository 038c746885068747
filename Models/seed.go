package Models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed wipes the store and loads the demo data set.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Children first, the FKs dictate the order.
		for _, model := range []interface{}{
			&Payment{}, &Invoice{}, &Session{}, &Therapist{},
			&MedicalRecord{}, &Patient{}, &Procedure{}, &Diagnosis{}, &Schedule{},
		} {
			if err := tx.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		diagnoses := []Diagnosis{
			{Title: "Influenza A", SeverityLevel: SeverityMedium, Description: "Seasonal virus"},
			{Title: "Bronchitis", SeverityLevel: SeverityMedium, Description: "Airway inflammation"},
			{Title: "Forearm fracture", SeverityLevel: SeverityHigh, Description: "Bone injury"},
			{Title: "Hypertension", SeverityLevel: SeverityHigh, Description: "Elevated blood pressure"},
			{Title: "Otitis", SeverityLevel: SeverityLow, Description: "Ear inflammation"},
			{Title: "Concussion", SeverityLevel: SeverityCritical, Description: "Traumatic brain injury"},
			{Title: "Gastritis", SeverityLevel: SeverityMedium, Description: "Stomach lining inflammation"},
			{Title: "Allergic rhinitis", SeverityLevel: SeverityLow, Description: "Pollen reaction"},
		}
		if err := tx.Create(&diagnoses).Error; err != nil {
			return err
		}

		procedures := []Procedure{
			{Title: "General examination", Cost: decimal.RequireFromString("450.00"), DurationMinutes: 20},
			{Title: "Specialist consultation", Cost: decimal.RequireFromString("800.00"), DurationMinutes: 40},
			{Title: "X-ray examination", Cost: decimal.RequireFromString("1200.00"), DurationMinutes: 30},
			{Title: "Physiotherapy", Cost: decimal.RequireFromString("600.00"), DurationMinutes: 45},
			{Title: "Surgical dressing", Cost: decimal.RequireFromString("500.00"), DurationMinutes: 25},
		}
		if err := tx.Create(&procedures).Error; err != nil {
			return err
		}

		schedules := []Schedule{
			{Date: "2025-12-20", StartTime: "08:00", EndTime: "16:00", IsAvailable: true},
			{Date: "2025-12-21", StartTime: "08:00", EndTime: "16:00", IsAvailable: true},
			{Date: "2025-12-22", StartTime: "08:00", EndTime: "16:00", IsAvailable: true},
			{Date: "2025-12-23", StartTime: "08:00", EndTime: "16:00", IsAvailable: false},
			{Date: "2025-12-24", StartTime: "08:00", EndTime: "14:00", IsAvailable: true},
		}
		if err := tx.Create(&schedules).Error; err != nil {
			return err
		}

		therapists := []Therapist{
			{Name: "Oleksii Koval", Specialization: "General therapist", Phone: "+380501111111", ScheduleID: &schedules[0].ID},
			{Name: "Maria Sydorenko", Specialization: "Traumatologist", Phone: "+380502222222", ScheduleID: &schedules[1].ID},
			{Name: "Serhii Bondar", Specialization: "Cardiologist", Phone: "+380503333333", ScheduleID: &schedules[2].ID},
			{Name: "Olena Tkachenko", Specialization: "ENT specialist", Phone: "+380504444444", ScheduleID: &schedules[3].ID},
			{Name: "Andrii Shevchenko", Specialization: "Surgeon", Phone: "+380505555555", ScheduleID: &schedules[4].ID},
		}
		if err := tx.Create(&therapists).Error; err != nil {
			return err
		}

		patients := []Patient{
			{Name: "Ivan Melnyk", BirthDate: "1985-03-12", Phone: "+380671111111", DiagnosisID: &diagnoses[0].ID},
			{Name: "Olha Kravchenko", BirthDate: "1992-07-24", Phone: "+380672222222", DiagnosisID: &diagnoses[2].ID},
			{Name: "Petro Boiko", BirthDate: "1978-11-02", Phone: "+380673333333", DiagnosisID: &diagnoses[3].ID},
			{Name: "Natalia Lysenko", BirthDate: "2001-01-30", Phone: "+380674444444", DiagnosisID: &diagnoses[5].ID},
		}
		if err := tx.Create(&patients).Error; err != nil {
			return err
		}
		for i := range patients {
			record := MedicalRecord{PatientID: patients[i].ID, Notes: "Initial intake"}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		sessions := []Session{
			{PatientID: patients[0].ID, TherapistID: therapists[0].ID, ProcedureID: procedures[0].ID,
				Date: "2025-12-20", StartTime: "09:00", DurationMinutes: 20, Status: SessionCompleted},
			{PatientID: patients[1].ID, TherapistID: therapists[1].ID, ProcedureID: procedures[2].ID,
				Date: "2025-12-20", StartTime: "10:00", DurationMinutes: 30, Status: SessionCompleted},
			{PatientID: patients[2].ID, TherapistID: therapists[2].ID, ProcedureID: procedures[1].ID,
				Date: "2025-12-21", StartTime: "11:00", DurationMinutes: 40, Status: SessionScheduled},
			{PatientID: patients[3].ID, TherapistID: therapists[4].ID, ProcedureID: procedures[3].ID,
				Date: "2025-12-22", StartTime: "09:30", DurationMinutes: 45, Status: SessionCancelled},
		}
		if err := tx.Create(&sessions).Error; err != nil {
			return err
		}

		invoices := []Invoice{
			{SessionID: sessions[0].ID, Amount: procedures[0].Cost, IssueDate: "2025-12-20"},
			{SessionID: sessions[1].ID, Amount: procedures[2].Cost, IssueDate: "2025-12-20"},
		}
		if err := tx.Create(&invoices).Error; err != nil {
			return err
		}

		payments := []Payment{
			{InvoiceID: invoices[0].ID, Amount: decimal.RequireFromString("450.00"), Method: PaymentCash, PaymentDate: "2025-12-20 12:00:00"},
			{InvoiceID: invoices[1].ID, Amount: decimal.RequireFromString("700.00"), Method: PaymentCard, PaymentDate: "2025-12-20 13:00:00"},
			{InvoiceID: invoices[1].ID, Amount: decimal.RequireFromString("300.00"), Method: PaymentBankTransfer, PaymentDate: "2025-12-21 10:00:00"},
		}
		return tx.Create(&payments).Error
	})
}
